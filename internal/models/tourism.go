// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

// Tourism metric names accepted by the analytics endpoints.
const (
	MetricDomestic       = "domestic_tourists"
	MetricInternational  = "international_tourists"
	MetricCulturalVisits = "cultural_site_visits"
	MetricRevenue        = "revenue_millions_inr"
)

// ValidMetrics contains all valid tourism metric names for validation.
var ValidMetrics = []string{
	MetricDomestic, MetricInternational, MetricCulturalVisits, MetricRevenue,
}

// IsValidMetric checks if a metric name is valid.
func IsValidMetric(metric string) bool {
	for _, m := range ValidMetrics {
		if m == metric {
			return true
		}
	}
	return false
}

// TourismRecord is one row of the yearly per-state tourism statistics table.
type TourismRecord struct {
	Year                  int     `json:"year"`
	State                 string  `json:"state"`
	DomesticTourists      int64   `json:"domestic_tourists"`
	InternationalTourists int64   `json:"international_tourists"`
	CulturalSiteVisits    int64   `json:"cultural_site_visits"`
	RevenueMillionsINR    float64 `json:"revenue_millions_inr"`
}

// YearlyTrend is an aggregated data point for a single year. VisitsGrowthPct
// is the year-over-year change in cultural site visits; the first year of a
// series reports 0.
type YearlyTrend struct {
	Year                  int     `json:"year"`
	DomesticTourists      int64   `json:"domestic_tourists"`
	InternationalTourists int64   `json:"international_tourists"`
	CulturalSiteVisits    int64   `json:"cultural_site_visits"`
	RevenueMillionsINR    float64 `json:"revenue_millions_inr"`
	VisitsGrowthPct       float64 `json:"visits_growth_pct"`
}

// NationalTrendsResponse represents the national trends endpoint response.
type NationalTrendsResponse struct {
	Trends    []YearlyTrend `json:"trends"`
	StartYear int           `json:"start_year"`
	EndYear   int           `json:"end_year"`
}

// StateTrend is the yearly series for a single state.
type StateTrend struct {
	State  string        `json:"state"`
	Points []YearlyTrend `json:"points"`
}

// StateTrendsResponse represents the per-state trends endpoint response.
type StateTrendsResponse struct {
	States []StateTrend `json:"states"`
}

// StateMetricValue is one state's value for a chosen metric and year.
type StateMetricValue struct {
	State string  `json:"state"`
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
}

// ComparisonResponse represents the state comparison endpoint response.
type ComparisonResponse struct {
	Year   int                `json:"year"`
	Metric string             `json:"metric"`
	States []StateMetricValue `json:"states"`
}

// GrowthStat describes how a state's metric changed between two years.
type GrowthStat struct {
	State         string  `json:"state"`
	StartValue    float64 `json:"start_value"`
	EndValue      float64 `json:"end_value"`
	GrowthPercent float64 `json:"growth_percent"`
}

// GrowthResponse represents the growth endpoint response.
type GrowthResponse struct {
	Metric    string       `json:"metric"`
	StartYear int          `json:"start_year"`
	EndYear   int          `json:"end_year"`
	States    []GrowthStat `json:"states"`
}

// ShareStat is one state's share of the national total for a metric.
type ShareStat struct {
	State        string  `json:"state"`
	Value        float64 `json:"value"`
	SharePercent float64 `json:"share_percent"`
}

// SharesResponse represents the per-state market share endpoint response.
type SharesResponse struct {
	Year   int         `json:"year"`
	Metric string      `json:"metric"`
	Total  float64     `json:"total"`
	States []ShareStat `json:"states"`
}

// VisitorShare splits one year's tourist volume into domestic and
// international portions.
type VisitorShare struct {
	Year             int     `json:"year"`
	Domestic         int64   `json:"domestic_tourists"`
	International    int64   `json:"international_tourists"`
	DomesticPct      float64 `json:"domestic_pct"`
	InternationalPct float64 `json:"international_pct"`
}

// VisitorSharesResponse represents the domestic vs international shares
// endpoint response.
type VisitorSharesResponse struct {
	Years []VisitorShare `json:"years"`
}

// RevenueEfficiency is one state's revenue yield per cultural site visit.
type RevenueEfficiency struct {
	State              string  `json:"state"`
	CulturalSiteVisits int64   `json:"cultural_site_visits"`
	RevenueMillionsINR float64 `json:"revenue_millions_inr"`
	RevenuePerVisitINR float64 `json:"revenue_per_visit_inr"`
}

// RevenuePerVisitResponse represents the revenue efficiency endpoint response.
type RevenuePerVisitResponse struct {
	Year   int                 `json:"year"`
	States []RevenueEfficiency `json:"states"`
}

// AnalyticsSummary represents headline figures over the whole dataset.
type AnalyticsSummary struct {
	StartYear             int     `json:"start_year"`
	EndYear               int     `json:"end_year"`
	StateCount            int     `json:"state_count"`
	TotalDomestic         int64   `json:"total_domestic_tourists"`
	TotalInternational    int64   `json:"total_international_tourists"`
	TotalCulturalVisits   int64   `json:"total_cultural_site_visits"`
	TotalRevenueMillions  float64 `json:"total_revenue_millions_inr"`
	PeakYear              int     `json:"peak_year"`
	PeakYearVisits        int64   `json:"peak_year_visits"`
	TroughYear            int     `json:"trough_year"`
	TroughYearVisits      int64   `json:"trough_year_visits"`
	TopStateByVisits      string  `json:"top_state_by_visits"`
	TopStateVisits        int64   `json:"top_state_visits"`
	LatestYearGrowthPct   float64 `json:"latest_year_growth_pct"`
	LatestYearTotalVisits int64   `json:"latest_year_total_visits"`
	RevenuePerVisitINR    float64 `json:"revenue_per_visit_inr"`
}
