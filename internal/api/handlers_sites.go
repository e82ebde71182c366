// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/models"
)

// snapshot returns the current catalog snapshot, or nil with a 503 sent
// when the catalog has never loaded.
func (h *Handler) snapshot(w http.ResponseWriter) *catalog.Snapshot {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog not available", nil)
		return nil
	}
	snap := h.store.Snapshot()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog not loaded", nil)
		return nil
	}
	return snap
}

// Sites handles site listing requests
//
// @Summary List heritage sites
// @Description Returns heritage sites matching the given filters, paginated in catalog order
// @Tags Sites
// @Produce json
// @Param region query string false "Region filter (north, south, east, west, northeast, central)"
// @Param state query string false "State filter (exact name, case-insensitive)"
// @Param category query string false "Category filter (monument, temple, fort, palace, cave, heritage_city)"
// @Param cost_tier query string false "Entry cost tier (low, medium, high)"
// @Param min_popularity query number false "Minimum popularity score (0-100)"
// @Param max_crowd query int false "Maximum crowd level (0-100)"
// @Param unesco query bool false "UNESCO World Heritage status"
// @Param q query string false "Substring search across name, state and description"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.APIResponse{data=models.SitesResponse} "Sites retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Router /sites [get]
func (h *Handler) Sites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	filter := catalog.SiteFilter{
		Region:   q.Get("region"),
		State:    q.Get("state"),
		Category: q.Get("category"),
		CostTier: q.Get("cost_tier"),
		Query:    q.Get("q"),
	}

	if filter.Region != "" && !catalog.IsKnownRegion(filter.Region) {
		respondError(w, http.StatusBadRequest, "INVALID_REGION", "Unknown region: "+sanitizeLogValue(filter.Region), nil)
		return
	}
	if v, ok := getFloatParam(r, "min_popularity"); ok {
		filter.MinPopularity = v
	}
	if v := q.Get("max_crowd"); v != "" {
		maxCrowd, err := strconv.Atoi(v)
		if err != nil || maxCrowd < 0 || maxCrowd > 100 {
			respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "max_crowd must be an integer between 0 and 100", err)
			return
		}
		filter.MaxCrowd = &maxCrowd
	}
	if v := q.Get("unesco"); v != "" {
		unesco, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "unesco must be a boolean", err)
			return
		}
		filter.UNESCO = &unesco
	}

	matched := snap.FilterSites(filter)
	limit, offset := h.pagination(r)
	lo, hi := pageBounds(len(matched), limit, offset)

	respondSuccess(w, r, models.SitesResponse{
		Sites:  matched[lo:hi],
		Total:  len(matched),
		Count:  hi - lo,
		Offset: offset,
		Limit:  limit,
	}, start, false)
}

// SiteByID handles single site lookups
//
// @Summary Get a heritage site
// @Description Returns a single heritage site by its identifier
// @Tags Sites
// @Produce json
// @Param id path string true "Site identifier (slug)"
// @Success 200 {object} models.APIResponse{data=models.Site} "Site retrieved successfully"
// @Failure 404 {object} models.APIResponse "Site not found"
// @Router /sites/{id} [get]
func (h *Handler) SiteByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	id := chi.URLParam(r, "id")
	site, ok := snap.SiteByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Site not found: "+sanitizeLogValue(id), nil)
		return
	}

	respondSuccess(w, r, site, start, false)
}

// SiteStats handles catalog statistics requests
//
// @Summary Get site catalog statistics
// @Description Returns aggregate statistics over the site catalog: counts by region, category and cost tier, UNESCO count and popularity averages
// @Tags Sites
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStats} "Statistics retrieved successfully"
// @Router /sites/stats [get]
func (h *Handler) SiteStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	respondSuccess(w, r, snap.Stats(), start, false)
}
