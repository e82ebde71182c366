// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/metrics"
)

// Export handles CSV dataset export requests
//
// @Summary Export a dataset as CSV
// @Description Streams one of the catalog datasets (sites, artforms, gems, initiatives) or the tourism statistics table as CSV
// @Tags Export
// @Produce text/csv
// @Param dataset path string true "Dataset name" Enums(sites, artforms, gems, initiatives, tourism)
// @Success 200 {string} string "CSV data"
// @Failure 404 {object} models.APIResponse "Unknown dataset"
// @Router /export/{dataset}.csv [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	dataset := strings.ToLower(chi.URLParam(r, "dataset"))

	var rows [][]string
	var err error
	switch dataset {
	case "sites":
		rows, err = h.exportSites(w)
	case "artforms":
		rows, err = h.exportArtForms(w)
	case "gems":
		rows, err = h.exportGems(w)
	case "initiatives":
		rows, err = h.exportInitiatives(w)
	case "tourism":
		rows, err = h.exportTourism(w, r)
	default:
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown dataset: "+sanitizeLogValue(dataset), nil)
		return
	}
	if err != nil || rows == nil {
		// error response already sent
		return
	}

	metrics.RecordExport(dataset)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+dataset+`.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		logging.Error().Err(err).Str("dataset", dataset).Msg("Failed to write CSV export")
	}
}

func (h *Handler) exportSites(w http.ResponseWriter) ([][]string, error) {
	snap := h.snapshot(w)
	if snap == nil {
		return nil, nil
	}

	rows := [][]string{{"id", "name", "state", "region", "category", "popularity_score",
		"crowd_level", "cost_tier", "latitude", "longitude", "unesco", "art_forms"}}
	for _, s := range snap.Sites {
		rows = append(rows, []string{
			s.ID, s.Name, s.State, s.Region, s.Category,
			formatFloat(s.PopularityScore),
			strconv.Itoa(s.CrowdLevel),
			string(s.CostTier),
			formatFloat(s.Latitude),
			formatFloat(s.Longitude),
			strconv.FormatBool(s.UNESCO),
			strings.Join(s.ArtForms, ";"),
		})
	}
	return rows, nil
}

func (h *Handler) exportArtForms(w http.ResponseWriter) ([][]string, error) {
	snap := h.snapshot(w)
	if snap == nil {
		return nil, nil
	}

	rows := [][]string{{"state", "art_form", "type", "latitude", "longitude",
		"visitors_annual", "cultural_significance"}}
	for _, a := range snap.ArtForms {
		rows = append(rows, []string{
			a.State, a.Name, a.Type,
			formatFloat(a.Latitude),
			formatFloat(a.Longitude),
			strconv.Itoa(a.AnnualVisitors),
			a.CulturalSignificance,
		})
	}
	return rows, nil
}

func (h *Handler) exportGems(w http.ResponseWriter) ([][]string, error) {
	snap := h.snapshot(w)
	if snap == nil {
		return nil, nil
	}

	rows := [][]string{{"name", "state", "art_form", "latitude", "longitude",
		"visitors_annual", "accessibility", "best_time_to_visit"}}
	for _, g := range snap.Gems {
		rows = append(rows, []string{
			g.Name, g.State, g.ArtForm,
			formatFloat(g.Latitude),
			formatFloat(g.Longitude),
			strconv.Itoa(g.AnnualVisitors),
			g.Accessibility,
			g.BestTimeToVisit,
		})
	}
	return rows, nil
}

func (h *Handler) exportInitiatives(w http.ResponseWriter) ([][]string, error) {
	snap := h.snapshot(w)
	if snap == nil {
		return nil, nil
	}

	rows := [][]string{{"initiative_name", "state", "focus_area", "impact_score",
		"year_started", "beneficiaries_thousands", "website"}}
	for _, i := range snap.Initiatives {
		rows = append(rows, []string{
			i.Name, i.State, i.FocusArea,
			formatFloat(i.ImpactScore),
			strconv.Itoa(i.YearStarted),
			strconv.Itoa(i.Beneficiaries),
			i.Website,
		})
	}
	return rows, nil
}

func (h *Handler) exportTourism(w http.ResponseWriter, r *http.Request) ([][]string, error) {
	if !h.requireDB(w) {
		return nil, nil
	}

	records, err := h.db.GetRecords(r.Context(), trendsFilter(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Tourism export query failed", err)
		return nil, nil
	}

	rows := [][]string{{"year", "state", "domestic_tourists", "international_tourists",
		"cultural_site_visits", "revenue_millions_inr"}}
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Year),
			rec.State,
			strconv.FormatInt(rec.DomesticTourists, 10),
			strconv.FormatInt(rec.InternationalTourists, 10),
			strconv.FormatInt(rec.CulturalSiteVisits, 10),
			formatFloat(rec.RevenueMillionsINR),
		})
	}
	return rows, nil
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
