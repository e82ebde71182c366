// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

import "time"

// Preference captures a visitor's constraints and sensitivities for ranking.
//
// Fields:
//   - MaxCrowdLevel: Hard ceiling on acceptable crowding (0-100).
//     Sites with crowd_level strictly above this value are excluded.
//   - CostSensitivity: Non-negative multiplier applied to the site's cost
//     weight. Zero means cost does not matter.
//   - Regions: Optional region allowlist (case-insensitive). Empty means
//     any region is acceptable.
//   - Categories: Optional category allowlist (case-insensitive). Empty
//     means any category is acceptable.
//
// Example:
//
//	{
//	  "max_crowd_level": 50,
//	  "cost_sensitivity": 1,
//	  "regions": ["south"],
//	  "categories": ["monument", "temple"]
//	}
type Preference struct {
	MaxCrowdLevel   int      `json:"max_crowd_level" validate:"gte=0,lte=100"`
	CostSensitivity float64  `json:"cost_sensitivity" validate:"gte=0"`
	Regions         []string `json:"regions,omitempty" validate:"dive,indianregion"`
	Categories      []string `json:"categories,omitempty" validate:"dive,min=1,max=100"`
}

// DefaultPreference returns the permissive preference used when a visitor
// supplies no constraints: all crowds tolerated, cost ignored, no filters.
func DefaultPreference() Preference {
	return Preference{
		MaxCrowdLevel:   100,
		CostSensitivity: 0,
		Regions:         nil,
		Categories:      nil,
	}
}

// Profile is a named, persisted preference set.
// Profiles are stored in BadgerDB and referenced by UUID.
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name" validate:"required,min=1,max=100"`
	Preference Preference `json:"preference"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// GemPreferences captures what a visitor wants from an off-beat destination.
// It feeds the hidden gem matcher, which uses a different scoring model
// than the main site recommender.
//
// Fields:
//   - ArtForms: Preferred traditional art forms (exact names, case-insensitive)
//   - Accessibility: Desired accessibility level (Easy, Moderate, Difficult)
//   - CrowdTolerance: 1 (seeks solitude) to 10 (crowds are fine)
type GemPreferences struct {
	ArtForms       []string `json:"art_forms,omitempty"`
	Accessibility  string   `json:"accessibility,omitempty" validate:"omitempty,oneof=Easy Moderate Difficult"`
	CrowdTolerance int      `json:"crowd_tolerance" validate:"gte=1,lte=10"`
}
