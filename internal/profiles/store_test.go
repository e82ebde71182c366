// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dharohar-project/dharohar/internal/models"
)

// ============================================================================
// Test Fixtures
// ============================================================================

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func quietPreference() models.Preference {
	return models.Preference{
		MaxCrowdLevel:   40,
		CostSensitivity: 2,
		Regions:         []string{"south"},
		Categories:      []string{"monument", "temple"},
	}
}

// ============================================================================
// CRUD Tests
// ============================================================================

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "Quiet South Trip", quietPreference())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("Create() ID = %q, want a UUID", created.ID)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("timestamps = %v/%v, want equal non-zero", created.CreatedAt, created.UpdatedAt)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Quiet South Trip" {
		t.Errorf("Get() name = %q, want Quiet South Trip", got.Name)
	}
	if got.Preference.MaxCrowdLevel != 40 || got.Preference.CostSensitivity != 2 {
		t.Errorf("Get() preference = %+v, want stored values", got.Preference)
	}
	if len(got.Preference.Regions) != 1 || got.Preference.Regions[0] != "south" {
		t.Errorf("Get() regions = %v, want [south]", got.Preference.Regions)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	store := testStore(t)

	_, err := store.Get(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Get() error = %v, want ErrProfileNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "Doomed", quietPreference())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrProfileNotFound", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("second Delete() error = %v, want ErrProfileNotFound", err)
	}
}

func TestList_OrderedByCreation(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	names := []string{"third", "second", "first"}
	for _, name := range names {
		if _, err := store.Create(ctx, name, quietPreference()); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	profiles, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("List() returned %d profiles, want 3", len(profiles))
	}
	for i, want := range names {
		if profiles[i].Name != want {
			t.Errorf("List()[%d] = %s, want %s (creation order)", i, profiles[i].Name, want)
		}
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	store := testStore(t)

	profiles, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if profiles == nil {
		t.Error("List() = nil, want empty slice")
	}
	if len(profiles) != 0 {
		t.Errorf("List() returned %d profiles, want 0", len(profiles))
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := store.Create(ctx, "profile", quietPreference()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 4 {
		t.Errorf("Count() = %d, want 4", count)
	}
}

// ============================================================================
// Persistence and GC Tests
// ============================================================================

func TestPersistenceAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	created, err := store.Create(ctx, "Durable", quietPreference())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("New() reopen error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.Name != "Durable" {
		t.Errorf("Get() after reopen name = %q, want Durable", got.Name)
	}
}

func TestRunGC_InMemoryIsNoop(t *testing.T) {
	t.Parallel()

	store := testStore(t)

	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v, want nil for in-memory store", err)
	}
}
