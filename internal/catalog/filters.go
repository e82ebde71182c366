// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import (
	"strings"

	"github.com/dharohar-project/dharohar/internal/models"
)

// SiteFilter selects sites from a snapshot. Zero-valued fields match
// everything; string matching is case-insensitive.
type SiteFilter struct {
	Region        string
	State         string
	Category      string
	CostTier      string
	MinPopularity float64
	MaxCrowd      *int
	UNESCO        *bool
	Query         string
}

// ArtFormFilter selects art forms from a snapshot.
type ArtFormFilter struct {
	State        string
	Type         string
	Significance string
	Query        string
}

// GemFilter selects hidden gems from a snapshot.
type GemFilter struct {
	State         string
	ArtForm       string
	Accessibility string
	MaxVisitors   int
	Query         string
}

// InitiativeFilter selects preservation initiatives from a snapshot.
type InitiativeFilter struct {
	State     string
	FocusArea string
	MinImpact float64
	Query     string
}

// FilterSites returns the sites matching the filter, in catalog order.
func (s *Snapshot) FilterSites(f SiteFilter) []models.Site {
	out := make([]models.Site, 0, len(s.Sites))
	for _, site := range s.Sites {
		if !equalFold(f.Region, site.Region) ||
			!equalFold(f.State, site.State) ||
			!equalFold(f.Category, site.Category) ||
			!equalFold(f.CostTier, string(site.CostTier)) {
			continue
		}
		if site.PopularityScore < f.MinPopularity {
			continue
		}
		if f.MaxCrowd != nil && site.CrowdLevel > *f.MaxCrowd {
			continue
		}
		if f.UNESCO != nil && site.UNESCO != *f.UNESCO {
			continue
		}
		if !matchesQuery(f.Query, site.Name, site.State, site.Description, site.Category) {
			continue
		}
		out = append(out, site)
	}
	return out
}

// FilterArtForms returns the art forms matching the filter.
func (s *Snapshot) FilterArtForms(f ArtFormFilter) []models.ArtForm {
	out := make([]models.ArtForm, 0, len(s.ArtForms))
	for _, form := range s.ArtForms {
		if !equalFold(f.State, form.State) ||
			!equalFold(f.Type, form.Type) ||
			!equalFold(f.Significance, form.CulturalSignificance) {
			continue
		}
		if !matchesQuery(f.Query, form.Name, form.Type, form.State, form.Description) {
			continue
		}
		out = append(out, form)
	}
	return out
}

// FilterGems returns the hidden gems matching the filter.
func (s *Snapshot) FilterGems(f GemFilter) []models.HiddenGem {
	out := make([]models.HiddenGem, 0, len(s.Gems))
	for _, gem := range s.Gems {
		if !equalFold(f.State, gem.State) ||
			!equalFold(f.ArtForm, gem.ArtForm) ||
			!equalFold(f.Accessibility, gem.Accessibility) {
			continue
		}
		if f.MaxVisitors > 0 && gem.AnnualVisitors > f.MaxVisitors {
			continue
		}
		if !matchesQuery(f.Query, gem.Name, gem.State, gem.Description, gem.ArtForm) {
			continue
		}
		out = append(out, gem)
	}
	return out
}

// FilterInitiatives returns the initiatives matching the filter.
func (s *Snapshot) FilterInitiatives(f InitiativeFilter) []models.Initiative {
	out := make([]models.Initiative, 0, len(s.Initiatives))
	for _, ini := range s.Initiatives {
		if !equalFold(f.State, ini.State) ||
			!equalFold(f.FocusArea, ini.FocusArea) {
			continue
		}
		if ini.ImpactScore < f.MinImpact {
			continue
		}
		if !matchesQuery(f.Query, ini.Name, ini.State, ini.FocusArea, ini.Description) {
			continue
		}
		out = append(out, ini)
	}
	return out
}

// equalFold reports whether want matches got, treating an empty want as
// a wildcard.
func equalFold(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// matchesQuery reports whether any of the fields contains the query as
// a case-insensitive substring. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
