// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package metrics provides Prometheus instrumentation for the server.
//
// All metrics are registered via promauto at package load and exposed
// on /metrics by the API router. Helpers wrap the common recording
// patterns so call sites stay one-liners:
//
//	start := time.Now()
//	rows, err := db.QueryContext(ctx, query)
//	metrics.RecordDBQuery("SELECT", "tourism_stats", time.Since(start), err)
//
// Label cardinality is kept bounded: endpoints use chi route patterns
// (not raw URLs), database errors are bucketed into coarse categories,
// and ranking outcomes form a small fixed set ("ok", "fallback",
// "invalid_input", "invalid_preference").
//
// Metric groups:
//
//   - api_*        request counts, latency, active requests, rate limiting
//   - ranking_*    recommendation outcomes, duration, candidate counts
//   - catalog_*    dataset record counts, load duration, reload outcomes
//   - duckdb_*     analytics query latency and errors
//   - cache_*      response cache hits/misses/evictions/size
//   - websocket_*  live update connections and message counts
//   - profile_*    preference profile store operations
//   - export_*     CSV download counts
//   - app_*        version info and uptime
package metrics
