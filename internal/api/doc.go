// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package api implements the HTTP surface of the heritage atlas.
//
// Routing uses Chi with middleware from the Chi ecosystem (go-chi/cors,
// go-chi/httprate). Handlers are split by domain:
//
//   - handlers.go: Handler struct, constructor, WebSocket origin checks
//   - handlers_helpers.go: shared response and parameter helpers
//   - handlers_health.go: health endpoint
//   - handlers_sites.go: heritage site catalog endpoints
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_artforms.go: traditional art form endpoints
//   - handlers_gems.go: hidden gem endpoints
//   - handlers_initiatives.go: preservation initiative endpoints
//   - handlers_analytics.go: DuckDB-backed tourism analytics endpoints
//   - handlers_geo.go: GeoJSON layer endpoints
//   - handlers_export.go: CSV dataset exports
//   - handlers_profiles.go: persisted preference profiles
//   - handlers_auth.go: login and token verification
//   - handlers_admin.go: catalog reload
//
// Every JSON endpoint responds with the models.APIResponse envelope and
// carries an FNV-1a ETag so dashboards can revalidate cheaply.
package api
