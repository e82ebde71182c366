// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package models

// SitesResponse is the paginated payload for site listings.
//
// Total counts the sites that matched the filter before pagination;
// Count is the number actually returned in this page.
type SitesResponse struct {
	Sites  []Site `json:"sites"`
	Total  int    `json:"total"`
	Count  int    `json:"count"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// ArtFormsResponse is the paginated payload for art form listings.
type ArtFormsResponse struct {
	ArtForms []ArtForm `json:"art_forms"`
	Total    int       `json:"total"`
	Count    int       `json:"count"`
	Offset   int       `json:"offset"`
	Limit    int       `json:"limit"`
}

// GemsResponse is the paginated payload for hidden gem listings.
type GemsResponse struct {
	Gems   []HiddenGem `json:"gems"`
	Total  int         `json:"total"`
	Count  int         `json:"count"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

// InitiativesResponse is the paginated payload for initiative listings.
type InitiativesResponse struct {
	Initiatives []Initiative `json:"initiatives"`
	Total       int          `json:"total"`
	Count       int          `json:"count"`
	Offset      int          `json:"offset"`
	Limit       int          `json:"limit"`
}

// NearbyGemsResponse is the payload for gem proximity searches. The
// query point is echoed back so map frontends can center on it.
type NearbyGemsResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Gems      []NearbyGem `json:"gems"`
}

// GemMatchesResponse is the payload of the gem preference matcher.
type GemMatchesResponse struct {
	Matches []GemMatch `json:"matches"`
	Total   int        `json:"total"`
}

// ProfilesResponse is the payload for profile listings.
type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
	Count    int       `json:"count"`
}

// ReloadResult reports the outcome of an explicit catalog reload.
type ReloadResult struct {
	Reloaded   bool           `json:"reloaded"`
	Trigger    string         `json:"trigger"`
	Counts     map[string]int `json:"counts"`
	DurationMs int64          `json:"duration_ms"`
}

// VerifyResponse is the payload of a successful token verification.
type VerifyResponse struct {
	Valid     bool   `json:"valid"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
