// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

import (
	"fmt"
	"strings"
)

// CostTier classifies the typical entry and visit cost of a site.
type CostTier string

// Cost tier values, ordered from cheapest to most expensive.
const (
	CostTierLow    CostTier = "low"
	CostTierMedium CostTier = "medium"
	CostTierHigh   CostTier = "high"
)

// ValidCostTiers contains all valid cost tiers for validation.
var ValidCostTiers = []CostTier{CostTierLow, CostTierMedium, CostTierHigh}

// Weight returns the numeric cost weight used by the recommendation scorer.
// The mapping is fixed: low=0, medium=1, high=2.
func (t CostTier) Weight() float64 {
	switch t {
	case CostTierLow:
		return 0
	case CostTierMedium:
		return 1
	case CostTierHigh:
		return 2
	default:
		return 0
	}
}

// IsValid reports whether the tier is one of the known values.
func (t CostTier) IsValid() bool {
	switch t {
	case CostTierLow, CostTierMedium, CostTierHigh:
		return true
	default:
		return false
	}
}

// ParseCostTier converts a string to a CostTier, case-insensitively.
func ParseCostTier(s string) (CostTier, error) {
	tier := CostTier(strings.ToLower(strings.TrimSpace(s)))
	if !tier.IsValid() {
		return "", fmt.Errorf("unknown cost tier %q", s)
	}
	return tier, nil
}

// Region constants for the six conventional groupings of Indian states.
// Sites and preferences reference regions by these lowercase names.
const (
	RegionNorth     = "north"
	RegionSouth     = "south"
	RegionEast      = "east"
	RegionWest      = "west"
	RegionNortheast = "northeast"
	RegionCentral   = "central"
)

// ValidRegions contains all valid region names for validation.
var ValidRegions = []string{
	RegionNorth, RegionSouth, RegionEast,
	RegionWest, RegionNortheast, RegionCentral,
}

// IsValidRegion checks if a region name is valid (case-insensitive).
func IsValidRegion(region string) bool {
	lower := strings.ToLower(region)
	for _, r := range ValidRegions {
		if r == lower {
			return true
		}
	}
	return false
}

// Site represents a cultural heritage site in the catalog.
//
// Fields:
//   - ID: Stable identifier, unique within the catalog
//   - Name: Display name (e.g., "Taj Mahal")
//   - State: Indian state or union territory the site is in
//   - Region: Regional grouping (north, south, east, west, northeast, central)
//   - Category: Site category (monument, temple, fort, museum, heritage_village, ...)
//   - PopularityScore: Popularity on a 0-100 scale, higher is more popular
//   - CrowdLevel: Typical crowding on a 0-100 scale, higher is busier
//   - CostTier: Entry cost band (low, medium, high)
//   - Latitude/Longitude: WGS84 coordinates for map layers
//   - ArtForms: Traditional art forms associated with the site
//   - UNESCO: Whether the site is UNESCO World Heritage listed
//
// Example:
//
//	{
//	  "id": "hampi",
//	  "name": "Hampi",
//	  "state": "Karnataka",
//	  "region": "south",
//	  "category": "monument",
//	  "popularity_score": 70,
//	  "crowd_level": 30,
//	  "cost_tier": "low",
//	  "latitude": 15.335,
//	  "longitude": 76.46,
//	  "unesco": true
//	}
type Site struct {
	ID              string   `json:"id" validate:"required,min=1,max=100"`
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	State           string   `json:"state" validate:"required,min=1,max=100"`
	Region          string   `json:"region" validate:"required,indianregion"`
	Category        string   `json:"category" validate:"required,min=1,max=100"`
	PopularityScore float64  `json:"popularity_score" validate:"gte=0,lte=100"`
	CrowdLevel      int      `json:"crowd_level" validate:"gte=0,lte=100"`
	CostTier        CostTier `json:"cost_tier" validate:"required,costtier"`
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	Description     string   `json:"description,omitempty"`
	ArtForms        []string `json:"art_forms,omitempty"`
	UNESCO          bool     `json:"unesco,omitempty"`
}

// CatalogStats represents aggregate statistics over the loaded site catalog.
type CatalogStats struct {
	TotalSites    int            `json:"total_sites"`
	ByRegion      map[string]int `json:"by_region"`
	ByCategory    map[string]int `json:"by_category"`
	ByCostTier    map[string]int `json:"by_cost_tier"`
	ByState       map[string]int `json:"by_state"`
	UNESCOCount   int            `json:"unesco_count"`
	AvgPopularity float64        `json:"avg_popularity"`
	AvgCrowdLevel float64        `json:"avg_crowd_level"`
}
