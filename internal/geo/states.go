// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package geo

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// StateCounts carries the per-state figures merged into the boundary
// layer for choropleth rendering.
type StateCounts struct {
	Sites    int
	ArtForms int
	Gems     int
	Region   string
}

// StatesLayer holds the parsed state boundary polygons and their
// precomputed centroids. Immutable after load.
type StatesLayer struct {
	fc        *geojson.FeatureCollection
	centroids map[string]orb.Point
	names     []string
}

// LoadStates parses a GeoJSON FeatureCollection of state polygons.
// Every feature must carry a properties.state name.
func LoadStates(path string) (*StatesLayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read states file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse states file %s: %w", path, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("states file %s contains no features", path)
	}

	layer := &StatesLayer{
		fc:        fc,
		centroids: make(map[string]orb.Point, len(fc.Features)),
		names:     make([]string, 0, len(fc.Features)),
	}

	for i, feature := range fc.Features {
		name := featureStateName(feature)
		if name == "" {
			return nil, fmt.Errorf("states file %s: feature %d has no state property", path, i)
		}
		key := strings.ToLower(name)
		if _, exists := layer.centroids[key]; exists {
			return nil, fmt.Errorf("states file %s: duplicate state %q", path, name)
		}

		centroid, _ := planar.CentroidArea(feature.Geometry)
		layer.centroids[key] = centroid
		layer.names = append(layer.names, name)
	}
	sort.Strings(layer.names)

	return layer, nil
}

func featureStateName(feature *geojson.Feature) string {
	name, _ := feature.Properties["state"].(string)
	return strings.TrimSpace(name)
}

// StateCount returns how many state polygons the layer holds.
func (l *StatesLayer) StateCount() int {
	return len(l.fc.Features)
}

// States returns the state names in alphabetical order.
func (l *StatesLayer) States() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Centroid returns the polygon centroid for a state, matched
// case-insensitively. Used for map label placement.
func (l *StatesLayer) Centroid(state string) (orb.Point, bool) {
	point, ok := l.centroids[strings.ToLower(strings.TrimSpace(state))]
	return point, ok
}

// Enriched returns a new FeatureCollection with per-state counts,
// region, and centroid merged into each feature's properties. Counts
// are keyed by lowercased state name. The loaded layer is never
// mutated; geometries are shared, properties are copied.
func (l *StatesLayer) Enriched(counts map[string]StateCounts) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, feature := range l.fc.Features {
		name := featureStateName(feature)
		key := strings.ToLower(name)

		enriched := geojson.NewFeature(feature.Geometry)
		enriched.ID = feature.ID
		for k, v := range feature.Properties {
			enriched.Properties[k] = v
		}

		c := counts[key]
		enriched.Properties["site_count"] = c.Sites
		enriched.Properties["artform_count"] = c.ArtForms
		enriched.Properties["gem_count"] = c.Gems
		if c.Region != "" {
			enriched.Properties["region"] = c.Region
		}
		if centroid, ok := l.centroids[key]; ok {
			enriched.Properties["centroid_lon"] = centroid[0]
			enriched.Properties["centroid_lat"] = centroid[1]
		}

		out.Append(enriched)
	}
	return out
}
