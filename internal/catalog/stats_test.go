// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import (
	"testing"

	"github.com/dharohar-project/dharohar/internal/models"
)

func TestSnapshot_Stats(t *testing.T) {
	t.Parallel()

	stats := testSnapshot().Stats()

	if stats.TotalSites != 4 {
		t.Errorf("TotalSites = %d, want 4", stats.TotalSites)
	}
	if stats.ByRegion["south"] != 2 {
		t.Errorf("ByRegion[south] = %d, want 2", stats.ByRegion["south"])
	}
	if stats.ByCategory["monument"] != 2 {
		t.Errorf("ByCategory[monument] = %d, want 2", stats.ByCategory["monument"])
	}
	if stats.ByCostTier["medium"] != 2 {
		t.Errorf("ByCostTier[medium] = %d, want 2", stats.ByCostTier["medium"])
	}
	if stats.ByState["Karnataka"] != 1 {
		t.Errorf("ByState[Karnataka] = %d, want 1", stats.ByState["Karnataka"])
	}
	if stats.UNESCOCount != 2 {
		t.Errorf("UNESCOCount = %d, want 2", stats.UNESCOCount)
	}

	// (95+70+80+55)/4 = 75, (80+30+65+25)/4 = 50
	if stats.AvgPopularity != 75 {
		t.Errorf("AvgPopularity = %v, want 75", stats.AvgPopularity)
	}
	if stats.AvgCrowdLevel != 50 {
		t.Errorf("AvgCrowdLevel = %v, want 50", stats.AvgCrowdLevel)
	}
}

func TestSnapshot_StatsEmpty(t *testing.T) {
	t.Parallel()

	stats := (&Snapshot{}).Stats()
	if stats.TotalSites != 0 || stats.AvgPopularity != 0 || stats.AvgCrowdLevel != 0 {
		t.Errorf("empty snapshot Stats() = %+v, want zeroes", stats)
	}
}

func TestSnapshot_ArtFormStats(t *testing.T) {
	t.Parallel()

	stats := testSnapshot().ArtFormStats()

	if stats.TotalForms != 3 {
		t.Errorf("TotalForms = %d, want 3", stats.TotalForms)
	}
	if stats.ByType["Puppetry"] != 1 {
		t.Errorf("ByType[Puppetry] = %d, want 1", stats.ByType["Puppetry"])
	}
	if stats.BySignificance["High"] != 2 {
		t.Errorf("BySignificance[High] = %d, want 2", stats.BySignificance["High"])
	}
	if want := 150000 + 200000 + 45000; stats.TotalAnnualVisitors != want {
		t.Errorf("TotalAnnualVisitors = %d, want %d", stats.TotalAnnualVisitors, want)
	}
}

func TestSnapshot_InitiativeSummary(t *testing.T) {
	t.Parallel()

	summary := testSnapshot().InitiativeSummary()

	if summary.TotalInitiatives != 3 {
		t.Errorf("TotalInitiatives = %d, want 3", summary.TotalInitiatives)
	}
	if summary.StatesCovered != 3 {
		t.Errorf("StatesCovered = %d, want 3", summary.StatesCovered)
	}
	if summary.EarliestYear != 2010 {
		t.Errorf("EarliestYear = %d, want 2010", summary.EarliestYear)
	}
	// (4.2+4.6+3.9)/3 = 4.2333... rounded to 4.23
	if summary.AvgImpactScore != 4.23 {
		t.Errorf("AvgImpactScore = %v, want 4.23", summary.AvgImpactScore)
	}
	if want := 120 + 85 + 60; summary.TotalBeneficiaries != want {
		t.Errorf("TotalBeneficiaries = %d, want %d", summary.TotalBeneficiaries, want)
	}
	if summary.ByFocusArea["Handicrafts"] != 1 {
		t.Errorf("ByFocusArea[Handicrafts] = %d, want 1", summary.ByFocusArea["Handicrafts"])
	}
}

func TestSnapshot_InitiativeSummaryStatesDeduplicated(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{
		Initiatives: []models.Initiative{
			{Name: "A", State: "Kerala", FocusArea: "Textiles", ImpactScore: 4, YearStarted: 2015},
			{Name: "B", State: "Kerala", FocusArea: "Dance", ImpactScore: 4, YearStarted: 2018},
		},
	}
	if got := snap.InitiativeSummary().StatesCovered; got != 1 {
		t.Errorf("StatesCovered = %d, want 1", got)
	}
}
