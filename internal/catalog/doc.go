// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package catalog loads the heritage datasets from disk and serves them
// to the rest of the application as immutable in-memory snapshots.
//
// # Datasets
//
// Four files make up the catalog:
//
//   - sites.json: heritage sites (the recommendation candidate pool)
//   - artforms.csv: traditional art forms by state
//   - hidden_gems.csv: lesser-known destinations
//   - initiatives.csv: preservation programs
//
// CSV files are parsed by header name rather than column position, so
// reordering columns in the source data does not break loading. A UTF-8
// byte order mark on the first header cell is tolerated.
//
// # Snapshots
//
// Store holds the current datasets behind an atomic.Value. Readers get a
// consistent *Snapshot with a single atomic load and no locking; a reload
// builds a complete new snapshot off to the side and swaps it in only
// after every file parsed and validated. A failed reload therefore never
// leaves readers with partial data.
//
// Snapshot records the modification time of each source file, which lets
// the refresh service cheaply detect on-disk changes with stat calls
// before committing to a full reload.
package catalog
