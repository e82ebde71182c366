// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package middleware provides HTTP middleware shared across API route
// groups.
//
// Middleware here uses the http.HandlerFunc wrapping style; the API
// router bridges it into chi's func(http.Handler) http.Handler form
// where needed. Authentication and security-header middleware live in
// the auth package because they carry authenticator state.
//
//   - RequestID: X-Request-ID passthrough/generation plus logging
//     context propagation (request_id, correlation_id)
//   - PrometheusMetrics: per-request counters and latency histograms
//     labeled by chi route pattern
//   - Compression: pooled gzip for JSON, GeoJSON, and CSV responses
package middleware
