// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dharohar-project/dharohar/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testConfig() Config {
	return Config{
		DefaultLimit:    10,
		MaxLimit:        100,
		FallbackEnabled: true,
	}
}

func testCatalog() []models.Site {
	return []models.Site{
		site("Taj Mahal", 95, 80, models.CostTierHigh),
		site("Hampi", 70, 30, models.CostTierLow),
		site("Konark", 65, 40, models.CostTierLow),
		site("Khajuraho", 72, 35, models.CostTierMedium),
	}
}

// ============================================================================
// Construction
// ============================================================================

func TestNewEngine_ValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{DefaultLimit: 10, MaxLimit: 100}, false},
		{"zero default limit", Config{DefaultLimit: 0, MaxLimit: 100}, true},
		{"max below default", Config{DefaultLimit: 10, MaxLimit: 5}, true},
		{"equal limits", Config{DefaultLimit: 10, MaxLimit: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEngine(tt.cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ============================================================================
// Recommend
// ============================================================================

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	sites := testCatalog()
	result, err := engine.Recommend(context.Background(), sites, time.Now(), Request{
		Preference: models.Preference{MaxCrowdLevel: 50, CostSensitivity: 1},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// Taj Mahal (80) is over the crowd ceiling; the rest qualify.
	if result.TotalCandidates != 4 {
		t.Errorf("TotalCandidates = %d, want 4", result.TotalCandidates)
	}
	if result.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", result.Excluded)
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("Recommendations = %d, want 3", len(result.Recommendations))
	}
	if result.Fallback {
		t.Error("Fallback = true on the healthy path")
	}
	// Khajuraho 72-1=71 ranks above Hampi 70.
	if result.Recommendations[0].Site.Name != "Khajuraho" {
		t.Errorf("top recommendation = %q, want Khajuraho", result.Recommendations[0].Site.Name)
	}
}

func TestEngine_RecommendLimits(t *testing.T) {
	t.Parallel()

	cfg := Config{DefaultLimit: 2, MaxLimit: 3, FallbackEnabled: false}
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	sites := testCatalog()
	permissive := models.Preference{MaxCrowdLevel: 100}

	tests := []struct {
		name      string
		limit     int
		wantCount int
	}{
		{"zero limit uses default", 0, 2},
		{"explicit limit", 3, 3},
		{"limit clamped to max", 50, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := engine.Recommend(context.Background(), sites, time.Now(), Request{
				Preference: permissive,
				Limit:      tt.limit,
			})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(result.Recommendations) != tt.wantCount {
				t.Errorf("Recommendations = %d, want %d", len(result.Recommendations), tt.wantCount)
			}
			// Truncation must not distort the filter accounting.
			if result.Excluded != 0 {
				t.Errorf("Excluded = %d, want 0 (limit truncation is not exclusion)", result.Excluded)
			}
		})
	}
}

func TestEngine_RecommendInvalidPreference(t *testing.T) {
	t.Parallel()

	// Fallback enabled must NOT rescue a caller error.
	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	_, err = engine.Recommend(context.Background(), testCatalog(), time.Now(), Request{
		Preference: models.Preference{MaxCrowdLevel: 200},
	})
	if !errors.Is(err, ErrInvalidPreference) {
		t.Errorf("Recommend() error = %v, want ErrInvalidPreference", err)
	}

	stats := engine.Stats()
	if stats.Errors != 1 {
		t.Errorf("Stats().Errors = %d, want 1", stats.Errors)
	}
	if stats.Fallbacks != 0 {
		t.Errorf("Stats().Fallbacks = %d, want 0", stats.Fallbacks)
	}
}

func TestEngine_RecommendFallback(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	// A malformed record poisons preference ranking; the engine must
	// degrade to popularity order with a warning.
	sites := []models.Site{
		site("Broken", 150, 10, models.CostTierLow),
		site("Hampi", 70, 30, models.CostTierLow),
		site("Taj Mahal", 95, 80, models.CostTierHigh),
	}
	result, err := engine.Recommend(context.Background(), sites, time.Now(), Request{
		Preference: models.Preference{MaxCrowdLevel: 50},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v, want fallback result", err)
	}
	if !result.Fallback {
		t.Fatal("Fallback = false, want true")
	}
	if result.Warning == "" {
		t.Error("Warning is empty on fallback result")
	}
	// Popularity order ignores the preference entirely.
	if result.Recommendations[0].Site.Name != "Broken" {
		t.Errorf("fallback top = %q, want Broken (highest popularity)", result.Recommendations[0].Site.Name)
	}

	if got := engine.Stats().Fallbacks; got != 1 {
		t.Errorf("Stats().Fallbacks = %d, want 1", got)
	}
}

func TestEngine_RecommendFallbackDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.FallbackEnabled = false
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	_, err = engine.Recommend(context.Background(), nil, time.Now(), Request{
		Preference: models.Preference{MaxCrowdLevel: 50},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Recommend() error = %v, want ErrInvalidInput with fallback disabled", err)
	}
}

func TestEngine_RecommendEmptyResult(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	result, err := engine.Recommend(context.Background(), testCatalog(), time.Now(), Request{
		Preference: models.Preference{MaxCrowdLevel: 5},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v, want empty result without error", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0", len(result.Recommendations))
	}
	if result.Excluded != 4 {
		t.Errorf("Excluded = %d, want 4", result.Excluded)
	}
	if result.Fallback {
		t.Error("empty result must not be a fallback")
	}
}

// ============================================================================
// Caching
// ============================================================================

func TestEngine_RecommendCaching(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	sites := testCatalog()
	version := time.Now()
	req := Request{Preference: models.Preference{MaxCrowdLevel: 50, CostSensitivity: 1}}

	first, err := engine.Recommend(context.Background(), sites, version, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := engine.Recommend(context.Background(), sites, version, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if first != second {
		t.Error("identical request and version did not hit the cache")
	}

	stats := engine.Stats()
	if stats.CacheHits != 1 {
		t.Errorf("Stats().CacheHits = %d, want 1", stats.CacheHits)
	}

	// A new dataset version must bypass stale entries.
	third, err := engine.Recommend(context.Background(), sites, version.Add(time.Second), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if third == first {
		t.Error("new dataset version served the old cached result")
	}
}

func TestEngine_InvalidateCache(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CacheTTL = time.Minute
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	sites := testCatalog()
	version := time.Now()
	req := Request{Preference: models.Preference{MaxCrowdLevel: 50}}

	first, err := engine.Recommend(context.Background(), sites, version, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	engine.InvalidateCache()

	again, err := engine.Recommend(context.Background(), sites, version, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if again == first {
		t.Error("InvalidateCache() did not evict the cached result")
	}
}

func TestEngine_CacheDisabled(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if engine.Stats().CacheEnabled {
		t.Error("Stats().CacheEnabled = true with zero CacheTTL")
	}

	// Two calls must both rank without touching a cache.
	sites := testCatalog()
	req := Request{Preference: models.Preference{MaxCrowdLevel: 50}}
	first, _ := engine.Recommend(context.Background(), sites, time.Now(), req)
	second, _ := engine.Recommend(context.Background(), sites, time.Now(), req)
	if first == second {
		t.Error("cache-disabled engine returned a shared result pointer")
	}
}

// ============================================================================
// Popular
// ============================================================================

func TestEngine_Popular(t *testing.T) {
	t.Parallel()

	cfg := Config{DefaultLimit: 2, MaxLimit: 3}
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	popular := engine.Popular(testCatalog(), 0)
	if len(popular) != 2 {
		t.Fatalf("Popular(limit=0) = %d results, want default 2", len(popular))
	}
	if popular[0].Site.Name != "Taj Mahal" {
		t.Errorf("Popular()[0] = %q, want Taj Mahal", popular[0].Site.Name)
	}

	if got := engine.Popular(testCatalog(), 99); len(got) != 3 {
		t.Errorf("Popular(limit=99) = %d results, want clamped 3", len(got))
	}
}

// ============================================================================
// Stats
// ============================================================================

func TestEngine_StatsCounters(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	sites := testCatalog()
	ctx := context.Background()

	_, _ = engine.Recommend(ctx, sites, time.Now(), Request{Preference: models.Preference{MaxCrowdLevel: 50}})
	_, _ = engine.Recommend(ctx, sites, time.Now(), Request{Preference: models.Preference{MaxCrowdLevel: -2}})
	_, _ = engine.Recommend(ctx, nil, time.Now(), Request{Preference: models.Preference{MaxCrowdLevel: 50}})

	stats := engine.Stats()
	if stats.Requests != 3 {
		t.Errorf("Stats().Requests = %d, want 3", stats.Requests)
	}
	if stats.Errors != 1 {
		t.Errorf("Stats().Errors = %d, want 1 (invalid preference)", stats.Errors)
	}
	if stats.Fallbacks != 1 {
		t.Errorf("Stats().Fallbacks = %d, want 1 (empty catalog)", stats.Fallbacks)
	}
}
