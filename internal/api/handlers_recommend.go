// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/middleware"
	"github.com/dharohar-project/dharohar/internal/models"
	"github.com/dharohar-project/dharohar/internal/ranking"
)

// RecommendRequest is the POST /recommendations body.
//
// MaxCrowdLevel and CostSensitivity are pointers so an explicit zero can
// be told apart from an absent field: {"max_crowd_level": 0} means "no
// crowds at all", while omitting the field means "any crowd is fine".
type RecommendRequest struct {
	MaxCrowdLevel   *int     `json:"max_crowd_level,omitempty" validate:"omitempty,gte=0,lte=100"`
	CostSensitivity *float64 `json:"cost_sensitivity,omitempty" validate:"omitempty,gte=0"`
	Regions         []string `json:"regions,omitempty" validate:"dive,indianregion"`
	Categories      []string `json:"categories,omitempty" validate:"dive,min=1,max=100"`
	ProfileID       string   `json:"profile_id,omitempty"`
	Limit           int      `json:"limit,omitempty" validate:"gte=0"`
}

// toPreference resolves the request into a concrete preference, starting
// from the permissive default and overriding whatever was supplied.
func (req *RecommendRequest) toPreference(base models.Preference) models.Preference {
	pref := base
	if req.MaxCrowdLevel != nil {
		pref.MaxCrowdLevel = *req.MaxCrowdLevel
	}
	if req.CostSensitivity != nil {
		pref.CostSensitivity = *req.CostSensitivity
	}
	if req.Regions != nil {
		pref.Regions = req.Regions
	}
	if req.Categories != nil {
		pref.Categories = req.Categories
	}
	return pref
}

// Recommend handles recommendation requests
//
// @Summary Rank heritage sites for a visitor
// @Description Filters the catalog by the visitor's constraints and ranks the remainder by popularity adjusted for cost sensitivity. A stored profile may be referenced by profile_id; explicit fields override the profile's values.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param preference body RecommendRequest true "Visitor preference"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResult} "Recommendations computed successfully"
// @Failure 400 {object} models.APIResponse "Invalid preference payload"
// @Failure 404 {object} models.APIResponse "Referenced profile not found"
// @Router /recommendations [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Recommendation engine not available", nil)
		return
	}

	var req RecommendRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	base := models.DefaultPreference()
	if req.ProfileID != "" {
		if h.profileStore == nil {
			respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Profile store not available", nil)
			return
		}
		profile, err := h.profileStore.Get(r.Context(), req.ProfileID)
		if err != nil {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found: "+sanitizeLogValue(req.ProfileID), err)
			return
		}
		base = profile.Preference
	}

	result, err := h.engine.Recommend(r.Context(), snap.Sites, snap.LoadedAt, ranking.Request{
		Preference: req.toPreference(base),
		Limit:      req.Limit,
		RequestID:  middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PREFERENCE", err.Error(), err)
		return
	}

	respondSuccess(w, r, result, start, false)
}

// PopularSites handles popularity-only recommendation requests
//
// @Summary List most popular sites
// @Description Returns the catalog ranked purely by popularity score, ignoring preferences
// @Tags Recommendations
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.Recommendation} "Popular sites retrieved successfully"
// @Router /recommendations/popular [get]
func (h *Handler) PopularSites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Recommendation engine not available", nil)
		return
	}

	limit := getIntParam(r, "limit", 0)
	respondSuccess(w, r, h.engine.Popular(snap.Sites, limit), start, false)
}
