// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/geo"
	"github.com/dharohar-project/dharohar/internal/logging"
)

// respondGeoJSON writes a FeatureCollection directly, outside the usual
// envelope, so map libraries can consume the body as-is.
func respondGeoJSON(w http.ResponseWriter, r *http.Request, fc *geojson.FeatureCollection) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(fc)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal GeoJSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write GeoJSON response")
	}
}

// GeoStates handles state boundary layer requests
//
// @Summary Get state boundaries with catalog counts
// @Description Returns the state boundary GeoJSON enriched with per-state counts of sites, art forms and gems, plus the state's region
// @Tags Geo
// @Produce json
// @Success 200 {object} geojson.FeatureCollection "Enriched state boundaries"
// @Failure 503 {object} models.APIResponse "Boundary layer not loaded"
// @Router /geo/states [get]
func (h *Handler) GeoStates(w http.ResponseWriter, r *http.Request) {
	if h.geoLayer == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "State boundary layer not available", nil)
		return
	}
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	counts := make(map[string]geo.StateCounts)
	bump := func(state string, f func(*geo.StateCounts)) {
		key := strings.ToLower(state)
		c := counts[key]
		if c.Region == "" {
			if region, ok := catalog.RegionForState(state); ok {
				c.Region = region
			}
		}
		f(&c)
		counts[key] = c
	}

	for _, site := range snap.Sites {
		bump(site.State, func(c *geo.StateCounts) { c.Sites++ })
	}
	for _, af := range snap.ArtForms {
		bump(af.State, func(c *geo.StateCounts) { c.ArtForms++ })
	}
	for _, gem := range snap.Gems {
		bump(gem.State, func(c *geo.StateCounts) { c.Gems++ })
	}

	respondGeoJSON(w, r, h.geoLayer.Enriched(counts))
}

// GeoSites handles site marker layer requests
//
// @Summary Get heritage sites as GeoJSON
// @Description Returns heritage sites as a GeoJSON point layer, optionally filtered by region or state
// @Tags Geo
// @Produce json
// @Param region query string false "Region filter"
// @Param state query string false "State filter"
// @Success 200 {object} geojson.FeatureCollection "Site point layer"
// @Router /geo/sites [get]
func (h *Handler) GeoSites(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	filter := catalog.SiteFilter{
		Region: r.URL.Query().Get("region"),
		State:  r.URL.Query().Get("state"),
	}
	respondGeoJSON(w, r, geo.SiteCollection(snap.FilterSites(filter)))
}

// GeoGems handles gem marker layer requests
//
// @Summary Get hidden gems as GeoJSON
// @Description Returns hidden gems as a GeoJSON point layer, optionally filtered by state
// @Tags Geo
// @Produce json
// @Param state query string false "State filter"
// @Success 200 {object} geojson.FeatureCollection "Gem point layer"
// @Router /geo/gems [get]
func (h *Handler) GeoGems(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	filter := catalog.GemFilter{
		State: r.URL.Query().Get("state"),
	}
	respondGeoJSON(w, r, geo.GemCollection(snap.FilterGems(filter)))
}
