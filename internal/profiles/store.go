// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package profiles

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dharohar-project/dharohar/internal/metrics"
	"github.com/dharohar-project/dharohar/internal/models"
)

// profileKeyPrefix namespaces profile entries in BadgerDB.
const profileKeyPrefix = "profile:"

var (
	// ErrProfileNotFound is returned when no profile exists for an ID.
	ErrProfileNotFound = fmt.Errorf("profile not found")
)

// Store is a BadgerDB-backed preference profile store.
type Store struct {
	db       *badger.DB
	inMemory bool
}

// New opens a profile store at the given directory. An empty path
// opens an in-memory store with no persistence.
func New(path string) (*Store, error) {
	inMemory := path == ""

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB internal logs
	if inMemory {
		opts = opts.WithInMemory(true)
	} else {
		// Profiles are tiny; keep value log files small.
		opts.ValueLogFileSize = 16 << 20
		opts.SyncWrites = true
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for profiles: %w", err)
	}

	return &Store{db: db, inMemory: inMemory}, nil
}

// Close closes the underlying BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new profile with a generated ID and returns it.
func (s *Store) Create(ctx context.Context, name string, pref models.Preference) (*models.Profile, error) {
	now := time.Now().UTC()
	profile := &models.Profile{
		ID:         uuid.NewString(),
		Name:       name,
		Preference: pref,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	data, err := json.Marshal(profile)
	if err != nil {
		metrics.RecordProfileOperation("create", false)
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+profile.ID), data)
	})
	metrics.RecordProfileOperation("create", err == nil)
	if err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	s.publishCount(ctx)
	return profile, nil
}

// Get retrieves a profile by ID.
func (s *Store) Get(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	metrics.RecordProfileOperation("get", err == nil)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Delete removes a profile by ID. Returns ErrProfileNotFound when the
// profile does not exist, so the API layer can answer 404.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(profileKeyPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrProfileNotFound
		} else if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return txn.Delete(key)
	})
	metrics.RecordProfileOperation("delete", err == nil)
	if err != nil {
		return err
	}

	s.publishCount(ctx)
	return nil
}

// List returns all stored profiles ordered by creation time, oldest
// first, with name as the tie-break.
func (s *Store) List(ctx context.Context) ([]models.Profile, error) {
	out := []models.Profile{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(profileKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var profile models.Profile
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &profile)
			})
			if err != nil {
				return fmt.Errorf("unmarshal profile: %w", err)
			}
			out = append(out, profile)
		}
		return nil
	})
	metrics.RecordProfileOperation("list", err == nil)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// Count returns the number of stored profiles without reading values.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(profileKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}

// RunGC runs one round of Badger value log garbage collection.
// ErrNoRewrite means nothing needed collecting and is not an error.
// In-memory stores have no value log, so this is a no-op for them.
func (s *Store) RunGC() error {
	if s.inMemory {
		return nil
	}
	err := s.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}

// publishCount refreshes the stored-profiles gauge. Failures only cost
// metric freshness, never the operation itself.
func (s *Store) publishCount(ctx context.Context) {
	if count, err := s.Count(ctx); err == nil {
		metrics.SetProfilesStored(int64(count))
	}
}
