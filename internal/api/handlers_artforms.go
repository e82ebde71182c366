// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/models"
)

// ArtForms handles art form listing requests
//
// @Summary List traditional art forms
// @Description Returns traditional art forms matching the given filters. A region filter expands to the member states of that region.
// @Tags ArtForms
// @Produce json
// @Param state query string false "State filter (exact name, case-insensitive)"
// @Param region query string false "Region filter (expands to member states)"
// @Param type query string false "Art form type (dance, music, craft, painting, theatre)"
// @Param significance query string false "Cultural significance (High, Very High)"
// @Param q query string false "Substring search across name, state and description"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.APIResponse{data=models.ArtFormsResponse} "Art forms retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Router /artforms [get]
func (h *Handler) ArtForms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	filter := catalog.ArtFormFilter{
		State:        q.Get("state"),
		Type:         q.Get("type"),
		Significance: q.Get("significance"),
		Query:        q.Get("q"),
	}

	var matched []models.ArtForm
	if region := q.Get("region"); region != "" {
		if !catalog.IsKnownRegion(region) {
			respondError(w, http.StatusBadRequest, "INVALID_REGION", "Unknown region: "+sanitizeLogValue(region), nil)
			return
		}
		// Art forms carry no region column; expand the region into its
		// member states and take the union of per-state matches.
		for _, state := range catalog.StatesInRegion(region) {
			if filter.State != "" && !strings.EqualFold(filter.State, state) {
				continue
			}
			f := filter
			f.State = state
			matched = append(matched, snap.FilterArtForms(f)...)
		}
	} else {
		matched = snap.FilterArtForms(filter)
	}
	if matched == nil {
		matched = []models.ArtForm{}
	}

	limit, offset := h.pagination(r)
	lo, hi := pageBounds(len(matched), limit, offset)

	respondSuccess(w, r, models.ArtFormsResponse{
		ArtForms: matched[lo:hi],
		Total:    len(matched),
		Count:    hi - lo,
		Offset:   offset,
		Limit:    limit,
	}, start, false)
}

// ArtFormStats handles art form statistics requests
//
// @Summary Get art form statistics
// @Description Returns aggregate statistics over the art form dataset: counts by type and state, total annual visitors
// @Tags ArtForms
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ArtFormStats} "Statistics retrieved successfully"
// @Router /artforms/stats [get]
func (h *Handler) ArtFormStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.snapshot(w)
	if snap == nil {
		return
	}

	respondSuccess(w, r, snap.ArtFormStats(), start, false)
}
