// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

// Recommendation pairs a site with the score the ranking engine computed
// for it under a specific preference.
type Recommendation struct {
	Site  Site    `json:"site"`
	Score float64 `json:"score"`
}

// RecommendationResult is the ranked output of a recommendation request.
//
// Fields:
//   - Recommendations: Sites ordered by descending score
//   - TotalCandidates: Catalog size before preference filtering
//   - Excluded: Number of sites removed by filters
//   - Fallback: True when preference-based ranking failed and the result
//     was produced by the popularity-only fallback
//   - Warning: Human-readable note when Fallback is true
type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalCandidates int              `json:"total_candidates"`
	Excluded        int              `json:"excluded"`
	Fallback        bool             `json:"fallback,omitempty"`
	Warning         string           `json:"warning,omitempty"`
}

// GemMatch pairs a hidden gem with its match score against a visitor's
// gem preferences.
type GemMatch struct {
	Gem        HiddenGem `json:"gem"`
	MatchScore float64   `json:"match_score"`
	Reasons    []string  `json:"reasons,omitempty"`
}
