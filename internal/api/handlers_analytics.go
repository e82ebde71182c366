// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/cache"
	"github.com/dharohar-project/dharohar/internal/database"
	"github.com/dharohar-project/dharohar/internal/models"
)

// requireDB sends a 503 and returns false when DuckDB is not wired.
func (h *Handler) requireDB(w http.ResponseWriter) bool {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Analytics database not available", nil)
		return false
	}
	return true
}

// trendsFilter builds the common year-range and state filter from query
// parameters.
func trendsFilter(r *http.Request) database.TrendsFilter {
	return database.TrendsFilter{
		StartYear: getIntParam(r, "start_year", 0),
		EndYear:   getIntParam(r, "end_year", 0),
		States:    parseCommaSeparated(r.URL.Query().Get("states")),
	}
}

// cachedAnalytics serves a cached response if present, otherwise computes
// it via fetch and stores the result. The cache key mixes the endpoint
// name with its parameters.
func (h *Handler) cachedAnalytics(w http.ResponseWriter, r *http.Request, endpoint string, params interface{}, fetch func() (interface{}, error)) {
	start := time.Now()

	var key string
	if h.cacheEnabled() {
		key = cache.GenerateKey(endpoint, params)
		if cached, ok := h.cache.Get(key); ok {
			respondSuccess(w, r, cached, start, true)
			return
		}
	}

	data, err := fetch()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Analytics query failed", err)
		return
	}

	if h.cacheEnabled() {
		h.cache.Set(key, data)
	}
	respondSuccess(w, r, data, start, false)
}

// resolveYear defaults a missing year parameter to the latest year in
// the tourism table.
func (h *Handler) resolveYear(r *http.Request) (int, error) {
	year := getIntParam(r, "year", 0)
	if year > 0 {
		return year, nil
	}
	_, maxYear, err := h.db.YearRange(r.Context())
	return maxYear, err
}

// resolveMetric validates the metric parameter, defaulting to domestic
// tourist counts.
func resolveMetric(w http.ResponseWriter, r *http.Request) (string, bool) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = models.MetricDomestic
	}
	if !models.IsValidMetric(metric) {
		respondError(w, http.StatusBadRequest, "INVALID_METRIC", "Unknown metric: "+sanitizeLogValue(metric), nil)
		return "", false
	}
	return metric, true
}

// NationalTrends handles national trend requests
//
// @Summary Get national tourism trends
// @Description Returns yearly national totals for all tourism metrics, with year-over-year growth in cultural site visits
// @Tags Analytics
// @Produce json
// @Param start_year query int false "First year to include"
// @Param end_year query int false "Last year to include"
// @Param states query string false "Comma-separated state names to sum over"
// @Success 200 {object} models.APIResponse{data=models.NationalTrendsResponse} "Trends retrieved successfully"
// @Router /analytics/trends/national [get]
func (h *Handler) NationalTrends(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	filter := trendsFilter(r)
	h.cachedAnalytics(w, r, "national_trends", filter, func() (interface{}, error) {
		return h.db.GetNationalTrends(r.Context(), filter)
	})
}

// StateTrends handles per-state trend requests
//
// @Summary Get per-state tourism trends
// @Description Returns the yearly metric series for each state, alphabetically ordered
// @Tags Analytics
// @Produce json
// @Param start_year query int false "First year to include"
// @Param end_year query int false "Last year to include"
// @Param states query string false "Comma-separated state names"
// @Success 200 {object} models.APIResponse{data=models.StateTrendsResponse} "Trends retrieved successfully"
// @Router /analytics/trends/states [get]
func (h *Handler) StateTrends(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	filter := trendsFilter(r)
	h.cachedAnalytics(w, r, "state_trends", filter, func() (interface{}, error) {
		return h.db.GetStateTrends(r.Context(), filter)
	})
}

// CompareStates handles state comparison requests
//
// @Summary Compare states on a metric
// @Description Ranks states by the chosen metric for one year. Year defaults to the latest available.
// @Tags Analytics
// @Produce json
// @Param year query int false "Year to compare (default: latest)"
// @Param metric query string false "Metric name" default(domestic_tourists)
// @Param states query string false "Comma-separated state names (default: all)"
// @Success 200 {object} models.APIResponse{data=models.ComparisonResponse} "Comparison retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unknown metric"
// @Router /analytics/states/compare [get]
func (h *Handler) CompareStates(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	metric, ok := resolveMetric(w, r)
	if !ok {
		return
	}
	year, err := h.resolveYear(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to resolve year", err)
		return
	}
	states := parseCommaSeparated(r.URL.Query().Get("states"))

	params := struct {
		Year   int      `json:"year"`
		Metric string   `json:"metric"`
		States []string `json:"states"`
	}{year, metric, states}

	h.cachedAnalytics(w, r, "compare_states", params, func() (interface{}, error) {
		return h.db.CompareStates(r.Context(), year, metric, states)
	})
}

// VisitorShares handles visitor share requests
//
// @Summary Get state shares of total visitors
// @Description Returns each state's share of combined domestic and international visitors over the filtered range
// @Tags Analytics
// @Produce json
// @Param start_year query int false "First year to include"
// @Param end_year query int false "Last year to include"
// @Param states query string false "Comma-separated state names"
// @Success 200 {object} models.APIResponse{data=models.VisitorSharesResponse} "Shares retrieved successfully"
// @Router /analytics/states/shares [get]
func (h *Handler) VisitorShares(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	filter := trendsFilter(r)
	h.cachedAnalytics(w, r, "visitor_shares", filter, func() (interface{}, error) {
		return h.db.GetVisitorShares(r.Context(), filter)
	})
}

// Growth handles metric growth requests
//
// @Summary Get metric growth between two years
// @Description Returns per-state growth of the chosen metric between the start and end year
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(domestic_tourists)
// @Param start_year query int false "Base year (default: earliest)"
// @Param end_year query int false "Comparison year (default: latest)"
// @Param states query string false "Comma-separated state names (default: all)"
// @Success 200 {object} models.APIResponse{data=models.GrowthResponse} "Growth retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unknown metric"
// @Router /analytics/growth [get]
func (h *Handler) Growth(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	metric, ok := resolveMetric(w, r)
	if !ok {
		return
	}

	startYear := getIntParam(r, "start_year", 0)
	endYear := getIntParam(r, "end_year", 0)
	if startYear == 0 || endYear == 0 {
		minYear, maxYear, err := h.db.YearRange(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to resolve year range", err)
			return
		}
		if startYear == 0 {
			startYear = minYear
		}
		if endYear == 0 {
			endYear = maxYear
		}
	}
	states := parseCommaSeparated(r.URL.Query().Get("states"))

	params := struct {
		Metric    string   `json:"metric"`
		StartYear int      `json:"start_year"`
		EndYear   int      `json:"end_year"`
		States    []string `json:"states"`
	}{metric, startYear, endYear, states}

	h.cachedAnalytics(w, r, "growth", params, func() (interface{}, error) {
		return h.db.GetGrowth(r.Context(), metric, startYear, endYear, states)
	})
}

// Shares handles metric share requests
//
// @Summary Get state shares of a metric
// @Description Returns each state's percentage share of the chosen metric for one year
// @Tags Analytics
// @Produce json
// @Param year query int false "Year (default: latest)"
// @Param metric query string false "Metric name" default(domestic_tourists)
// @Success 200 {object} models.APIResponse{data=models.SharesResponse} "Shares retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unknown metric"
// @Router /analytics/shares [get]
func (h *Handler) Shares(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	metric, ok := resolveMetric(w, r)
	if !ok {
		return
	}
	year, err := h.resolveYear(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to resolve year", err)
		return
	}

	params := struct {
		Year   int    `json:"year"`
		Metric string `json:"metric"`
	}{year, metric}

	h.cachedAnalytics(w, r, "shares", params, func() (interface{}, error) {
		return h.db.GetShares(r.Context(), year, metric)
	})
}

// RevenuePerVisit handles revenue efficiency requests
//
// @Summary Get revenue per cultural site visit
// @Description Returns tourism revenue divided by cultural site visits for each state in one year
// @Tags Analytics
// @Produce json
// @Param year query int false "Year (default: latest)"
// @Success 200 {object} models.APIResponse{data=models.RevenuePerVisitResponse} "Revenue efficiency retrieved successfully"
// @Router /analytics/revenue [get]
func (h *Handler) RevenuePerVisit(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	year, err := h.resolveYear(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to resolve year", err)
		return
	}

	params := struct {
		Year int `json:"year"`
	}{year}

	h.cachedAnalytics(w, r, "revenue_per_visit", params, func() (interface{}, error) {
		return h.db.GetRevenuePerVisit(r.Context(), year)
	})
}

// AnalyticsSummary handles analytics summary requests
//
// @Summary Get analytics summary
// @Description Returns headline tourism figures: totals across all years, best and worst years, top states
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.AnalyticsSummary} "Summary retrieved successfully"
// @Router /analytics/summary [get]
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	h.cachedAnalytics(w, r, "analytics_summary", nil, func() (interface{}, error) {
		return h.db.GetSummary(r.Context())
	})
}
