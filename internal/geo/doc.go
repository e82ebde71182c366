// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package geo builds the GeoJSON layers behind the atlas map and
// answers proximity queries over hidden gems.
//
// The state boundary layer is loaded once from a GeoJSON file of
// simplified polygons. Enrichment never mutates the loaded features:
// each request gets fresh feature copies carrying per-state counts,
// so the layer can be served concurrently without locking.
//
// Distances use the haversine great-circle approximation with a
// spherical earth radius of 6371 km, which is accurate to within
// about 0.5% and more than enough for sorting destinations.
package geo
