// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import "strings"

// Canonical region names as they appear in API responses and the site
// dataset. Matching is case-insensitive everywhere.
const (
	RegionNorth     = "North"
	RegionSouth     = "South"
	RegionEast      = "East"
	RegionWest      = "West"
	RegionNortheast = "Northeast"
	RegionCentral   = "Central"
)

// regionStates maps each region to the states and union territories it
// covers. The grouping follows the conventional six-zone division used
// by Indian tourism boards.
var regionStates = map[string][]string{
	RegionNorth: {
		"Jammu and Kashmir", "Himachal Pradesh", "Punjab",
		"Uttarakhand", "Haryana", "Delhi", "Uttar Pradesh",
	},
	RegionSouth: {
		"Tamil Nadu", "Kerala", "Karnataka",
		"Andhra Pradesh", "Telangana",
	},
	RegionEast: {
		"West Bengal", "Odisha", "Bihar", "Jharkhand",
	},
	RegionWest: {
		"Rajasthan", "Gujarat", "Maharashtra", "Goa",
	},
	RegionNortheast: {
		"Assam", "Arunachal Pradesh", "Manipur", "Meghalaya",
		"Mizoram", "Nagaland", "Sikkim", "Tripura",
	},
	RegionCentral: {
		"Madhya Pradesh", "Chhattisgarh",
	},
}

// stateRegion is the inverse lookup, keyed by lowercased state name.
var stateRegion = func() map[string]string {
	m := make(map[string]string)
	for region, states := range regionStates {
		for _, s := range states {
			m[strings.ToLower(s)] = region
		}
	}
	return m
}()

// Regions returns the canonical region names in a stable display order.
func Regions() []string {
	return []string{
		RegionNorth, RegionSouth, RegionEast,
		RegionWest, RegionNortheast, RegionCentral,
	}
}

// RegionForState returns the canonical region a state belongs to.
// Lookup is case-insensitive. The second return value is false for
// states not covered by the regional grouping.
func RegionForState(state string) (string, bool) {
	region, ok := stateRegion[strings.ToLower(strings.TrimSpace(state))]
	return region, ok
}

// StatesInRegion returns the states covered by a region, or nil for an
// unknown region. Lookup is case-insensitive.
func StatesInRegion(region string) []string {
	want := strings.ToLower(strings.TrimSpace(region))
	for name, states := range regionStates {
		if strings.ToLower(name) == want {
			out := make([]string, len(states))
			copy(out, states)
			return out
		}
	}
	return nil
}

// IsKnownRegion reports whether the given name matches one of the six
// canonical regions, ignoring case.
func IsKnownRegion(region string) bool {
	return StatesInRegion(region) != nil
}
