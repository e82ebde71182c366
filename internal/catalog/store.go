// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/metrics"
	"github.com/dharohar-project/dharohar/internal/models"
)

// Reload triggers, recorded as the trigger label on catalog load metrics.
const (
	TriggerStartup = "startup"
	TriggerAdmin   = "admin"
	TriggerRefresh = "refresh"
)

// Paths names the four dataset files a Store loads.
type Paths struct {
	Sites       string
	ArtForms    string
	Gems        string
	Initiatives string
}

// Snapshot is an immutable view of all four datasets as of one load.
// Snapshots must never be mutated after Load publishes them; handlers
// and the ranking engine share them across goroutines without locks.
type Snapshot struct {
	Sites       []models.Site
	ArtForms    []models.ArtForm
	Gems        []models.HiddenGem
	Initiatives []models.Initiative
	LoadedAt    time.Time

	siteIndex map[string]int
	mtimes    map[string]time.Time
}

// SiteByID returns the site with the given ID. The second return value
// is false when no site has that ID.
func (s *Snapshot) SiteByID(id string) (models.Site, bool) {
	i, ok := s.siteIndex[id]
	if !ok {
		return models.Site{}, false
	}
	return s.Sites[i], true
}

// Store holds the current Snapshot and swaps in replacements atomically.
//
// Readers call Snapshot with no locking. Reloads are serialized by a
// mutex so that two concurrent triggers (admin endpoint plus refresh
// timer) cannot interleave their file reads.
type Store struct {
	paths    Paths
	current  atomic.Value // stores *Snapshot
	reloadMu sync.Mutex
}

// NewStore creates a Store for the given dataset paths. No data is read
// until the first Load call.
func NewStore(paths Paths) *Store {
	return &Store{paths: paths}
}

// Snapshot returns the current dataset snapshot, or nil when no load
// has succeeded yet. The server refuses to start without an initial
// load, so request handlers always observe a non-nil snapshot.
func (s *Store) Snapshot() *Snapshot {
	snap, _ := s.current.Load().(*Snapshot)
	return snap
}

// Load reads all four dataset files, validates every record, and swaps
// the assembled snapshot in as the current one. On any error the
// previous snapshot stays current.
//
// The trigger is recorded on metrics and logs so reload sources can be
// told apart (startup, admin endpoint, refresh timer).
func (s *Store) Load(ctx context.Context, trigger string) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	snap, err := s.buildSnapshot()
	duration := time.Since(start)

	counts := map[string]int{}
	if snap != nil {
		counts["sites"] = len(snap.Sites)
		counts["artforms"] = len(snap.ArtForms)
		counts["gems"] = len(snap.Gems)
		counts["initiatives"] = len(snap.Initiatives)
	}
	metrics.RecordCatalogLoad(trigger, duration, counts, err)

	if err != nil {
		logging.Ctx(ctx).Error().
			Err(err).
			Str("trigger", trigger).
			Dur("duration", duration).
			Msg("Catalog load failed")
		return err
	}

	s.current.Store(snap)
	logging.Ctx(ctx).Info().
		Str("trigger", trigger).
		Int("sites", len(snap.Sites)).
		Int("artforms", len(snap.ArtForms)).
		Int("gems", len(snap.Gems)).
		Int("initiatives", len(snap.Initiatives)).
		Dur("duration", duration).
		Msg("Catalog loaded")
	return nil
}

// buildSnapshot loads and validates all datasets without touching the
// published snapshot.
func (s *Store) buildSnapshot() (*Snapshot, error) {
	mtimes := make(map[string]time.Time, 4)
	for _, path := range []string{s.paths.Sites, s.paths.ArtForms, s.paths.Gems, s.paths.Initiatives} {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat dataset file: %w", err)
		}
		mtimes[path] = info.ModTime()
	}

	sites, err := LoadSites(s.paths.Sites)
	if err != nil {
		return nil, err
	}
	forms, err := LoadArtForms(s.paths.ArtForms)
	if err != nil {
		return nil, err
	}
	gems, err := LoadGems(s.paths.Gems)
	if err != nil {
		return nil, err
	}
	initiatives, err := LoadInitiatives(s.paths.Initiatives)
	if err != nil {
		return nil, err
	}

	siteIndex := make(map[string]int, len(sites))
	for i := range sites {
		siteIndex[sites[i].ID] = i
	}

	return &Snapshot{
		Sites:       sites,
		ArtForms:    forms,
		Gems:        gems,
		Initiatives: initiatives,
		LoadedAt:    time.Now().UTC(),
		siteIndex:   siteIndex,
		mtimes:      mtimes,
	}, nil
}

// Modified reports whether any dataset file changed on disk since the
// current snapshot was loaded. It costs four stat calls, which lets the
// refresh service poll cheaply and only pay for a full reload when
// something actually changed.
func (s *Store) Modified() (bool, error) {
	snap := s.Snapshot()
	if snap == nil {
		return true, nil
	}
	for path, loaded := range snap.mtimes {
		info, err := os.Stat(path)
		if err != nil {
			return false, fmt.Errorf("failed to stat dataset file: %w", err)
		}
		if !info.ModTime().Equal(loaded) {
			return true, nil
		}
	}
	return false, nil
}
