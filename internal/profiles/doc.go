// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package profiles persists saved visitor preference profiles in
// BadgerDB so travellers can reuse a tuned preference without
// re-entering it.
//
// Profiles are stored as JSON values under a "profile:" key prefix
// with generated UUID identifiers. An empty store path opens Badger
// in memory, which is what the tests and stateless deployments use.
// The value log GC hook is a no-op for in-memory stores.
package profiles
