// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package services

import (
	"context"
	"time"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/logging"
)

// CatalogStore interface matches the catalog.Store methods the refresh
// poller needs. Using an interface keeps the wrapper testable without
// dataset files on disk.
//
// Satisfied by *catalog.Store from internal/catalog/store.go.
type CatalogStore interface {
	Modified() (bool, error)
	Load(ctx context.Context, trigger string) error
	Snapshot() *catalog.Snapshot
}

// ReloadBroadcaster receives a notification after a successful reload.
//
// Satisfied by *websocket.Hub. May be left unset when no hub is wired.
type ReloadBroadcaster interface {
	BroadcastCatalogReloaded(trigger string, counts map[string]int, durationMs int64)
}

// CatalogRefreshService polls the dataset files and reloads the catalog
// when any of them changed on disk.
//
// The poll is cheap (four stat calls via Store.Modified), so curators can
// edit dataset files in place and have them picked up without restarting
// the server or hitting the admin reload endpoint.
//
// Transient failures are logged and polling continues: a restart would
// not fix a malformed dataset file, and the previous snapshot keeps
// serving until a load succeeds.
//
// Example usage:
//
//	svc := services.NewCatalogRefreshService(store, cfg.Catalog.RefreshInterval)
//	svc.SetBroadcaster(hub)
//	tree.AddMessagingService(svc)
type CatalogRefreshService struct {
	store       CatalogStore
	interval    time.Duration
	broadcaster ReloadBroadcaster
	name        string
}

// NewCatalogRefreshService creates a new catalog refresh poller.
//
// An interval of zero disables polling: Serve blocks until the context
// is canceled without ever touching the store. This lets main.go add
// the service unconditionally and leave the decision to configuration.
func NewCatalogRefreshService(store CatalogStore, interval time.Duration) *CatalogRefreshService {
	return &CatalogRefreshService{
		store:    store,
		interval: interval,
		name:     "catalog-refresh",
	}
}

// SetBroadcaster wires the WebSocket hub for catalog_reloaded events.
// Must be called before Serve.
func (s *CatalogRefreshService) SetBroadcaster(b ReloadBroadcaster) {
	s.broadcaster = b
}

// Serve implements suture.Service.
//
// This method:
//  1. Returns immediately to idle-block when polling is disabled
//  2. Checks Modified() on every tick
//  3. Reloads via Load(TriggerRefresh) when files changed
//  4. Broadcasts catalog_reloaded on successful reloads
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh performs one poll-and-reload cycle.
func (s *CatalogRefreshService) refresh(ctx context.Context) {
	modified, err := s.store.Modified()
	if err != nil {
		logging.Warn().Err(err).Msg("Catalog refresh poll failed")
		return
	}
	if !modified {
		return
	}

	start := time.Now()
	if err := s.store.Load(ctx, catalog.TriggerRefresh); err != nil {
		// Load already logged the failure with full context; the
		// previous snapshot stays current.
		return
	}

	if s.broadcaster == nil {
		return
	}
	snap := s.store.Snapshot()
	if snap == nil {
		return
	}
	counts := map[string]int{
		"sites":       len(snap.Sites),
		"artforms":    len(snap.ArtForms),
		"gems":        len(snap.Gems),
		"initiatives": len(snap.Initiatives),
	}
	s.broadcaster.BroadcastCatalogReloaded(catalog.TriggerRefresh, counts, time.Since(start).Milliseconds())
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (s *CatalogRefreshService) String() string {
	return s.name
}
