// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package services

import (
	"context"
	"time"

	"github.com/dharohar-project/dharohar/internal/logging"
)

// ValueLogGC interface matches the profile store's garbage collection
// entry point.
//
// Satisfied by *profiles.Store from internal/profiles/store.go.
type ValueLogGC interface {
	RunGC() error
}

// ProfileGCService runs periodic Badger value log garbage collection on
// the profile store.
//
// Badger never reclaims value log space on its own; the application must
// call RunValueLogGC periodically. The store's RunGC wraps that call and
// treats ErrNoRewrite as success, so every error surfacing here is a
// real one worth logging.
//
// Example usage:
//
//	svc := services.NewProfileGCService(profileStore, cfg.Profiles.GCInterval)
//	tree.AddDataService(svc)
type ProfileGCService struct {
	store    ValueLogGC
	interval time.Duration
	name     string
}

// NewProfileGCService creates a new profile GC service.
//
// An interval of zero disables collection: Serve blocks until the
// context is canceled without ever touching the store.
func NewProfileGCService(store ValueLogGC, interval time.Duration) *ProfileGCService {
	return &ProfileGCService{
		store:    store,
		interval: interval,
		name:     "profile-gc",
	}
}

// Serve implements suture.Service.
//
// GC failures are logged and the loop continues. A failed GC round only
// delays space reclamation; restarting the service would not help.
func (s *ProfileGCService) Serve(ctx context.Context) error {
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
			if err := s.store.RunGC(); err != nil {
				logging.Warn().Err(err).Msg("Profile value log GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (s *ProfileGCService) String() string {
	return s.name
}
