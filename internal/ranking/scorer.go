// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dharohar-project/dharohar/internal/models"
)

var (
	// ErrInvalidInput is returned when the catalog is empty or contains
	// a malformed site record.
	ErrInvalidInput = fmt.Errorf("invalid catalog input")

	// ErrInvalidPreference is returned when the preference is out of
	// range: crowd ceiling outside 0-100 or negative cost sensitivity.
	ErrInvalidPreference = fmt.Errorf("invalid preference")
)

// ValidatePreference checks preference bounds. Errors wrap
// ErrInvalidPreference so callers can classify with errors.Is.
func ValidatePreference(pref models.Preference) error {
	if pref.MaxCrowdLevel < 0 || pref.MaxCrowdLevel > 100 {
		return fmt.Errorf("max_crowd_level %d outside [0,100]: %w", pref.MaxCrowdLevel, ErrInvalidPreference)
	}
	if pref.CostSensitivity < 0 {
		return fmt.Errorf("cost_sensitivity %v is negative: %w", pref.CostSensitivity, ErrInvalidPreference)
	}
	return nil
}

// validateSite checks the fields the scorer depends on. Errors wrap
// ErrInvalidInput.
func validateSite(site models.Site) error {
	if strings.TrimSpace(site.Name) == "" {
		return fmt.Errorf("site with empty name: %w", ErrInvalidInput)
	}
	if site.PopularityScore < 0 || site.PopularityScore > 100 {
		return fmt.Errorf("site %q popularity_score %v outside [0,100]: %w", site.Name, site.PopularityScore, ErrInvalidInput)
	}
	if site.CrowdLevel < 0 || site.CrowdLevel > 100 {
		return fmt.Errorf("site %q crowd_level %d outside [0,100]: %w", site.Name, site.CrowdLevel, ErrInvalidInput)
	}
	if !site.CostTier.IsValid() {
		return fmt.Errorf("site %q has unknown cost_tier %q: %w", site.Name, site.CostTier, ErrInvalidInput)
	}
	return nil
}

// Score computes the preference score for a single site:
// popularity_score - cost_sensitivity * cost_weight. It assumes both
// arguments have already been validated.
func Score(site models.Site, pref models.Preference) float64 {
	return site.PopularityScore - pref.CostSensitivity*site.CostTier.Weight()
}

// Matches reports whether a site survives the preference filters:
// the crowd ceiling and the optional region and category allowlists.
func Matches(site models.Site, pref models.Preference) bool {
	if site.CrowdLevel > pref.MaxCrowdLevel {
		return false
	}
	if len(pref.Regions) > 0 && !containsFold(pref.Regions, site.Region) {
		return false
	}
	if len(pref.Categories) > 0 && !containsFold(pref.Categories, site.Category) {
		return false
	}
	return true
}

// Rank filters the catalog by the preference, scores every surviving
// site, and returns the full ranked list.
//
// Ordering is total and deterministic: descending score, then descending
// popularity, then case-insensitive ascending name. An empty result
// after filtering is returned as an empty non-nil slice, not an error.
func Rank(sites []models.Site, pref models.Preference) ([]models.Recommendation, error) {
	if err := ValidatePreference(pref); err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("empty catalog: %w", ErrInvalidInput)
	}

	ranked := make([]models.Recommendation, 0, len(sites))
	for _, site := range sites {
		if err := validateSite(site); err != nil {
			return nil, err
		}
		if !Matches(site, pref) {
			continue
		}
		ranked = append(ranked, models.Recommendation{
			Site:  site,
			Score: Score(site, pref),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Site.PopularityScore != ranked[j].Site.PopularityScore {
			return ranked[i].Site.PopularityScore > ranked[j].Site.PopularityScore
		}
		return strings.ToLower(ranked[i].Site.Name) < strings.ToLower(ranked[j].Site.Name)
	})
	return ranked, nil
}

// PopularityRank orders sites by raw popularity, ignoring preferences.
// It backs the popular-sites endpoint and the degraded fallback path,
// so it deliberately skips validation: it must still produce an
// ordering from the data that just failed preference ranking.
//
// Ties are broken by case-insensitive ascending name. A non-positive
// limit means no truncation.
func PopularityRank(sites []models.Site, limit int) []models.Recommendation {
	ranked := make([]models.Recommendation, 0, len(sites))
	for _, site := range sites {
		ranked = append(ranked, models.Recommendation{
			Site:  site,
			Score: site.PopularityScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Site.PopularityScore != ranked[j].Site.PopularityScore {
			return ranked[i].Site.PopularityScore > ranked[j].Site.PopularityScore
		}
		return strings.ToLower(ranked[i].Site.Name) < strings.ToLower(ranked[j].Site.Name)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// containsFold reports whether the list contains the value, ignoring
// case and surrounding whitespace in the list entries.
func containsFold(list []string, value string) bool {
	for _, entry := range list {
		if strings.EqualFold(strings.TrimSpace(entry), value) {
			return true
		}
	}
	return false
}
