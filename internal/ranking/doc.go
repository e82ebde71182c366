// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package ranking implements the preference-based site recommender and
// the hidden gem matcher.
//
// # Scoring Model
//
// Site recommendations use a filter-then-score pipeline over the whole
// catalog:
//
//  1. Filter: sites whose crowd level exceeds the visitor's ceiling are
//     excluded, then optional region and category allowlists are applied
//     (both case-insensitive).
//  2. Score: score = popularity_score - cost_sensitivity * cost_weight,
//     where cost weight is fixed at low=0, medium=1, high=2.
//  3. Order: descending score, with ties broken by descending popularity
//     and then case-insensitive ascending name.
//
// Rank is a pure function: the same catalog and preference always produce
// the same ordering, no matter the call site or call count. An empty
// result after filtering is a valid outcome, not an error.
//
// The hidden gem matcher uses a separate additive model (art form match,
// accessibility match, and a crowd-tolerance axis scaled by relative
// visitor volume) and returns the top matches with human-readable reasons.
//
// # Errors
//
// Two sentinel errors separate caller mistakes from data problems:
//
//   - ErrInvalidPreference: the preference itself is out of range
//     (crowd ceiling outside 0-100, negative cost sensitivity)
//   - ErrInvalidInput: the catalog is empty or contains a malformed site
//
// # Engine
//
// Engine wraps the pure functions with the service concerns: limit
// clamping, response caching keyed on the dataset version, Prometheus
// outcome metrics, structured logging, and the popularity-only fallback.
// When preference-based ranking fails on a data problem and fallback is
// enabled, the engine degrades to a popularity ordering and flags the
// response with a warning instead of failing the request.
//
// # Usage
//
//	engine := ranking.NewEngine(ranking.Config{
//	    DefaultLimit:    10,
//	    MaxLimit:        100,
//	    FallbackEnabled: true,
//	    CacheTTL:        time.Minute,
//	}, logger)
//
//	result, err := engine.Recommend(ctx, snap.Sites, snap.LoadedAt, ranking.Request{
//	    Preference: pref,
//	    Limit:      10,
//	})
//
// # Thread Safety
//
// Rank, PopularityRank, and MatchGems are pure and safe for concurrent
// use by construction. Engine is safe for concurrent use; its only
// mutable state is the response cache and atomic counters.
package ranking
