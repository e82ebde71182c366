// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import (
	"math"

	"github.com/dharohar-project/dharohar/internal/models"
)

// Stats computes aggregate statistics over the site catalog.
func (s *Snapshot) Stats() models.CatalogStats {
	stats := models.CatalogStats{
		TotalSites: len(s.Sites),
		ByRegion:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByCostTier: make(map[string]int),
		ByState:    make(map[string]int),
	}

	var popSum, crowdSum float64
	for _, site := range s.Sites {
		stats.ByRegion[site.Region]++
		stats.ByCategory[site.Category]++
		stats.ByCostTier[string(site.CostTier)]++
		stats.ByState[site.State]++
		if site.UNESCO {
			stats.UNESCOCount++
		}
		popSum += site.PopularityScore
		crowdSum += float64(site.CrowdLevel)
	}
	if len(s.Sites) > 0 {
		stats.AvgPopularity = round2(popSum / float64(len(s.Sites)))
		stats.AvgCrowdLevel = round2(crowdSum / float64(len(s.Sites)))
	}
	return stats
}

// ArtFormStats computes aggregate statistics over the art form dataset.
func (s *Snapshot) ArtFormStats() models.ArtFormStats {
	stats := models.ArtFormStats{
		TotalForms:     len(s.ArtForms),
		ByType:         make(map[string]int),
		ByState:        make(map[string]int),
		BySignificance: make(map[string]int),
	}
	for _, form := range s.ArtForms {
		stats.ByType[form.Type]++
		stats.ByState[form.State]++
		stats.BySignificance[form.CulturalSignificance]++
		stats.TotalAnnualVisitors += form.AnnualVisitors
	}
	return stats
}

// InitiativeSummary computes aggregate statistics over the initiative
// dataset.
func (s *Snapshot) InitiativeSummary() models.InitiativeSummary {
	summary := models.InitiativeSummary{
		TotalInitiatives: len(s.Initiatives),
		ByFocusArea:      make(map[string]int),
	}

	states := make(map[string]struct{})
	var impactSum float64
	for _, ini := range s.Initiatives {
		summary.ByFocusArea[ini.FocusArea]++
		states[ini.State] = struct{}{}
		impactSum += ini.ImpactScore
		summary.TotalBeneficiaries += ini.Beneficiaries
		if summary.EarliestYear == 0 || ini.YearStarted < summary.EarliestYear {
			summary.EarliestYear = ini.YearStarted
		}
	}
	summary.StatesCovered = len(states)
	if len(s.Initiatives) > 0 {
		summary.AvgImpactScore = round2(impactSum / float64(len(s.Initiatives)))
	}
	return summary
}

// round2 rounds to two decimal places for stable JSON output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
