// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/dharohar-project/dharohar/internal/models"
)

// DefaultGemMatches is how many gems MatchGems returns when the caller
// does not specify a limit.
const DefaultGemMatches = 5

// Gem match score contributions. The crowd axis contributes up to
// crowdAxisMax on top of these.
const (
	artFormMatchPoints       = 3.0
	accessibilityMatchPoints = 2.0
	crowdAxisMax             = 5.0
)

// MatchGems scores every hidden gem against the visitor's preferences
// and returns the best matches, strongest first.
//
// The additive model has three components:
//
//   - Art form: +3 when the gem's art form is one the visitor asked for
//   - Accessibility: +2 on an exact (case-insensitive) level match
//   - Crowd axis: up to +5 for gems whose relative visitor volume sits
//     closest to the visitor's crowd tolerance, where volume is scaled
//     to 0-10 against the busiest gem in the set
//
// Ties are broken toward the quieter gem, then case-insensitive name.
// A non-positive limit means DefaultGemMatches.
func MatchGems(gems []models.HiddenGem, prefs models.GemPreferences, limit int) []models.GemMatch {
	if len(gems) == 0 {
		return []models.GemMatch{}
	}
	if limit <= 0 {
		limit = DefaultGemMatches
	}

	maxVisitors := 0
	for _, gem := range gems {
		if gem.AnnualVisitors > maxVisitors {
			maxVisitors = gem.AnnualVisitors
		}
	}

	matches := make([]models.GemMatch, 0, len(gems))
	for _, gem := range gems {
		matches = append(matches, scoreGem(gem, prefs, maxVisitors))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		if matches[i].Gem.AnnualVisitors != matches[j].Gem.AnnualVisitors {
			return matches[i].Gem.AnnualVisitors < matches[j].Gem.AnnualVisitors
		}
		return strings.ToLower(matches[i].Gem.Name) < strings.ToLower(matches[j].Gem.Name)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// scoreGem computes one gem's match score and reasons.
func scoreGem(gem models.HiddenGem, prefs models.GemPreferences, maxVisitors int) models.GemMatch {
	var score float64
	var reasons []string

	if gem.ArtForm != "" && containsFold(prefs.ArtForms, gem.ArtForm) {
		score += artFormMatchPoints
		reasons = append(reasons, "features "+gem.ArtForm)
	}

	if prefs.Accessibility != "" && strings.EqualFold(gem.Accessibility, prefs.Accessibility) {
		score += accessibilityMatchPoints
		reasons = append(reasons, "accessibility is "+gem.Accessibility)
	}

	// Scale the gem's visitor volume onto the same 1-10 axis as the
	// visitor's crowd tolerance, then reward proximity. |diff| spans
	// 0-10, so the axis contributes 0 to crowdAxisMax points.
	volume := 0.0
	if maxVisitors > 0 {
		volume = float64(gem.AnnualVisitors) / float64(maxVisitors) * 10
	}
	axis := (10 - math.Abs(float64(prefs.CrowdTolerance)-volume)) / 2
	score += axis
	if axis >= crowdAxisMax-0.5 {
		reasons = append(reasons, "visitor volume fits your crowd tolerance")
	}

	return models.GemMatch{
		Gem:        gem,
		MatchScore: math.Round(score*100) / 100,
		Reasons:    reasons,
	}
}
