// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/dharohar-project/dharohar/internal/models"
)

// SiteCollection renders heritage sites as point features for map
// markers.
func SiteCollection(sites []models.Site) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, site := range sites {
		f := geojson.NewFeature(orb.Point{site.Longitude, site.Latitude})
		f.ID = site.ID
		f.Properties["id"] = site.ID
		f.Properties["name"] = site.Name
		f.Properties["state"] = site.State
		f.Properties["region"] = site.Region
		f.Properties["category"] = site.Category
		f.Properties["popularity_score"] = site.PopularityScore
		f.Properties["crowd_level"] = site.CrowdLevel
		f.Properties["cost_tier"] = string(site.CostTier)
		f.Properties["unesco"] = site.UNESCO
		fc.Append(f)
	}
	return fc
}

// GemCollection renders hidden gems as point features for map markers.
func GemCollection(gems []models.HiddenGem) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, gem := range gems {
		f := geojson.NewFeature(orb.Point{gem.Longitude, gem.Latitude})
		f.Properties["name"] = gem.Name
		f.Properties["state"] = gem.State
		f.Properties["art_form"] = gem.ArtForm
		f.Properties["visitors_annual"] = gem.AnnualVisitors
		f.Properties["accessibility"] = gem.Accessibility
		fc.Append(f)
	}
	return fc
}
