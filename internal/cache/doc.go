// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package cache provides a thread-safe in-memory TTL cache for API
// responses.
//
// The dashboard's analytics endpoints aggregate eight years of tourism
// statistics per request; the recommendation endpoint re-ranks the full
// site catalog. Both are pure functions of (dataset snapshot, request
// parameters), which makes them ideal cache candidates: entries are
// keyed by a hash of the request shape (see GenerateKey) and the whole
// cache is cleared when an admin reloads the datasets.
//
// Usage:
//
//	c := cache.New(60 * time.Second)
//	key := cache.GenerateKey("analytics:growth", req)
//	if data, ok := c.Get(key); ok {
//	    respondCached(w, data)
//	    return
//	}
//	result := computeGrowth(req)
//	c.Set(key, result)
//
// Statistics (hits, misses, evictions) are exported to Prometheus by
// the metrics package.
package cache
