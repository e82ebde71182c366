// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/models"
)

// Initiatives handles preservation initiative listing requests
//
// @Summary List preservation initiatives
// @Description Returns government and NGO heritage preservation initiatives matching the given filters
// @Tags Initiatives
// @Produce json
// @Param state query string false "State filter (exact name, case-insensitive)"
// @Param focus_area query string false "Focus area filter"
// @Param min_impact query number false "Minimum impact score (0-5)"
// @Param q query string false "Substring search across name, state and description"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.APIResponse{data=models.InitiativesResponse} "Initiatives retrieved successfully"
// @Router /initiatives [get]
func (h *Handler) Initiatives(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	filter := catalog.InitiativeFilter{
		State:     q.Get("state"),
		FocusArea: q.Get("focus_area"),
		Query:     q.Get("q"),
	}
	if v, ok := getFloatParam(r, "min_impact"); ok {
		filter.MinImpact = v
	}

	matched := snap.FilterInitiatives(filter)
	limit, offset := h.pagination(r)
	lo, hi := pageBounds(len(matched), limit, offset)

	respondSuccess(w, r, models.InitiativesResponse{
		Initiatives: matched[lo:hi],
		Total:       len(matched),
		Count:       hi - lo,
		Offset:      offset,
		Limit:       limit,
	}, start, false)
}

// InitiativeSummary handles initiative summary requests
//
// @Summary Get initiative summary
// @Description Returns aggregate statistics over preservation initiatives: counts by focus area, total beneficiaries and average impact
// @Tags Initiatives
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.InitiativeSummary} "Summary retrieved successfully"
// @Router /initiatives/summary [get]
func (h *Handler) InitiativeSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	respondSuccess(w, r, snap.InitiativeSummary(), start, false)
}
