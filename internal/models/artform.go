// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

// Cultural significance levels for art forms.
const (
	SignificanceHigh   = "High"
	SignificanceMedium = "Medium"
	SignificanceLow    = "Low"
)

// ArtForm represents a traditional Indian art form and where it is practiced.
//
// Fields:
//   - State: Indian state the art form is primarily associated with
//   - Name: Art form name (e.g., "Kathputli", "Madhubani")
//   - Type: Art form type (Puppetry, Painting, Dance, Textile, ...)
//   - AnnualVisitors: Estimated yearly visitors drawn by the art form
//   - CulturalSignificance: High, Medium, or Low
type ArtForm struct {
	State                string  `json:"state" validate:"required"`
	Name                 string  `json:"art_form" validate:"required"`
	Type                 string  `json:"type" validate:"required"`
	Description          string  `json:"description,omitempty"`
	Latitude             float64 `json:"latitude" validate:"latitude"`
	Longitude            float64 `json:"longitude" validate:"longitude"`
	AnnualVisitors       int     `json:"visitors_annual" validate:"gte=0"`
	CulturalSignificance string  `json:"cultural_significance" validate:"oneof=High Medium Low"`
}

// ArtFormStats represents aggregate statistics over the art form dataset.
type ArtFormStats struct {
	TotalForms          int            `json:"total_forms"`
	ByType              map[string]int `json:"by_type"`
	ByState             map[string]int `json:"by_state"`
	BySignificance      map[string]int `json:"by_significance"`
	TotalAnnualVisitors int            `json:"total_annual_visitors"`
}

// HiddenGem represents a lesser-known cultural destination.
//
// Accessibility is one of Easy, Moderate, Difficult. AnnualVisitors for
// gems is typically one to two orders of magnitude below headline sites,
// which is what the gem matcher's crowd axis keys on.
type HiddenGem struct {
	Name            string  `json:"name" validate:"required"`
	State           string  `json:"state" validate:"required"`
	ArtForm         string  `json:"art_form,omitempty"`
	Latitude        float64 `json:"latitude" validate:"latitude"`
	Longitude       float64 `json:"longitude" validate:"longitude"`
	Description     string  `json:"description,omitempty"`
	AnnualVisitors  int     `json:"visitors_annual" validate:"gte=0"`
	Accessibility   string  `json:"accessibility" validate:"oneof=Easy Moderate Difficult"`
	BestTimeToVisit string  `json:"best_time_to_visit,omitempty"`
}

// NearbyGem pairs a hidden gem with its great-circle distance from a
// query point, for proximity searches.
type NearbyGem struct {
	HiddenGem
	DistanceKM float64 `json:"distance_km"`
}

// Initiative represents a heritage preservation program.
//
// Beneficiaries is recorded in thousands of people reached.
type Initiative struct {
	Name          string  `json:"initiative_name" validate:"required"`
	State         string  `json:"state" validate:"required"`
	FocusArea     string  `json:"focus_area" validate:"required"`
	Description   string  `json:"description,omitempty"`
	ImpactScore   float64 `json:"impact_score" validate:"gte=0,lte=5"`
	YearStarted   int     `json:"year_started" validate:"gte=1947,lte=2100"`
	Beneficiaries int     `json:"beneficiaries_thousands" validate:"gte=0"`
	Website       string  `json:"website,omitempty"`
}

// InitiativeSummary represents aggregate statistics over initiatives.
type InitiativeSummary struct {
	TotalInitiatives   int            `json:"total_initiatives"`
	ByFocusArea        map[string]int `json:"by_focus_area"`
	StatesCovered      int            `json:"states_covered"`
	AvgImpactScore     float64        `json:"avg_impact_score"`
	TotalBeneficiaries int            `json:"total_beneficiaries_thousands"`
	EarliestYear       int            `json:"earliest_year"`
}
