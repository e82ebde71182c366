// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/geo"
	"github.com/dharohar-project/dharohar/internal/models"
	"github.com/dharohar-project/dharohar/internal/ranking"
)

// Gems handles hidden gem listing requests
//
// @Summary List hidden gems
// @Description Returns lesser-known destinations matching the given filters
// @Tags Gems
// @Produce json
// @Param state query string false "State filter (exact name, case-insensitive)"
// @Param art_form query string false "Associated art form filter"
// @Param accessibility query string false "Accessibility level (Easy, Moderate, Difficult)"
// @Param max_visitors query int false "Maximum annual visitors"
// @Param q query string false "Substring search across name, state and description"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.APIResponse{data=models.GemsResponse} "Gems retrieved successfully"
// @Router /gems [get]
func (h *Handler) Gems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	filter := catalog.GemFilter{
		State:         q.Get("state"),
		ArtForm:       q.Get("art_form"),
		Accessibility: q.Get("accessibility"),
		MaxVisitors:   getIntParam(r, "max_visitors", 0),
		Query:         q.Get("q"),
	}

	matched := snap.FilterGems(filter)
	limit, offset := h.pagination(r)
	lo, hi := pageBounds(len(matched), limit, offset)

	respondSuccess(w, r, models.GemsResponse{
		Gems:   matched[lo:hi],
		Total:  len(matched),
		Count:  hi - lo,
		Offset: offset,
		Limit:  limit,
	}, start, false)
}

// GemsNearby handles gem proximity searches
//
// @Summary Find hidden gems near a point
// @Description Returns the hidden gems closest to the given coordinates, ordered by great-circle distance
// @Tags Gems
// @Produce json
// @Param lat query number true "Latitude in decimal degrees"
// @Param lon query number true "Longitude in decimal degrees"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} models.APIResponse{data=models.NearbyGemsResponse} "Nearby gems retrieved successfully"
// @Failure 400 {object} models.APIResponse "Missing or invalid coordinates"
// @Router /gems/nearby [get]
func (h *Handler) GemsNearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	lat, latOK := getFloatParam(r, "lat")
	lon, lonOK := getFloatParam(r, "lon")
	if !latOK || !lonOK {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "lat and lon query parameters are required", nil)
		return
	}
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_COORDINATES", err.Error(), err)
		return
	}

	limit := getIntParam(r, "limit", 5)
	if limit < 1 {
		limit = 5
	}

	respondSuccess(w, r, models.NearbyGemsResponse{
		Latitude:  lat,
		Longitude: lon,
		Gems:      geo.NearestGems(snap.Gems, lat, lon, limit),
	}, start, false)
}

// GemsMatch handles gem preference matching requests
//
// @Summary Match hidden gems to visitor preferences
// @Description Scores hidden gems against art form interests, accessibility needs and crowd tolerance, returning the best matches with reasons
// @Tags Gems
// @Accept json
// @Produce json
// @Param preferences body models.GemPreferences true "Gem preferences"
// @Success 200 {object} models.APIResponse{data=models.GemMatchesResponse} "Matches computed successfully"
// @Failure 400 {object} models.APIResponse "Invalid preferences payload"
// @Router /gems/match [post]
func (h *Handler) GemsMatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	var prefs models.GemPreferences
	if err := decodeJSONBody(r, &prefs); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}
	if prefs.CrowdTolerance == 0 {
		prefs.CrowdTolerance = 5
	}
	if apiErr := validateRequest(&prefs); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	limit := getIntParam(r, "limit", ranking.DefaultGemMatches)
	matches := ranking.MatchGems(snap.Gems, prefs, limit)

	respondSuccess(w, r, models.GemMatchesResponse{
		Matches: matches,
		Total:   len(matches),
	}, start, false)
}
