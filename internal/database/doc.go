// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package database provides the DuckDB-backed analytical store for
// state-level tourism statistics.
//
// The store holds a single table, tourism_stats, with one row per
// (state, year) pair covering domestic arrivals, international
// arrivals, cultural site visits, and tourism revenue. Data is
// ingested from CSV using DuckDB's native read_csv scanner and
// replaced atomically inside a transaction, so analytics queries
// never observe a half-loaded dataset.
//
// Query methods aggregate with SQL rather than in Go: national
// trends, state-by-state series, single-year comparisons, growth
// between two years, and share-of-total breakdowns are all single
// round trips. Metric names arriving from the API layer are mapped
// through an allowlist before they are interpolated into SQL.
//
// All public methods accept a context and apply a default timeout
// when the caller did not set a deadline.
package database
