// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package ranking

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dharohar-project/dharohar/internal/cache"
	"github.com/dharohar-project/dharohar/internal/metrics"
	"github.com/dharohar-project/dharohar/internal/models"
)

// FallbackWarning is attached to responses produced by the degraded
// popularity-only path.
const FallbackWarning = "preference ranking unavailable, showing most popular sites"

// Config controls engine behavior.
type Config struct {
	// DefaultLimit is applied when a request does not specify a limit.
	DefaultLimit int

	// MaxLimit caps the number of recommendations per response.
	MaxLimit int

	// FallbackEnabled degrades catalog data errors to a popularity-only
	// ordering with a warning instead of failing the request. Invalid
	// preferences are never degraded; they are the caller's error.
	FallbackEnabled bool

	// CacheTTL bounds how long a ranked response may be served from
	// cache. Zero disables response caching.
	CacheTTL time.Duration
}

// Validate checks config invariants.
func (c Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit %d is below default limit %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

// Request is a single recommendation request.
type Request struct {
	// Preference holds the visitor's constraints.
	Preference models.Preference

	// Limit is the maximum number of recommendations to return.
	// Zero means the configured default.
	Limit int

	// RequestID correlates engine logs with the HTTP request. A new ID
	// is generated when empty.
	RequestID string
}

// Stats is a point-in-time view of engine counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	Fallbacks    int64 `json:"fallbacks"`
	Errors       int64 `json:"errors"`
	CacheEnabled bool  `json:"cache_enabled"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheKeys    int64 `json:"cache_keys"`
}

// Engine wraps the pure ranking functions with limit clamping, response
// caching, outcome metrics, logging, and the popularity fallback.
// It is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	cache *cache.Cache

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
	errorCount    atomic.Int64
}

// NewEngine creates a recommendation engine.
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranking config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "ranking").Logger(),
	}
	if cfg.CacheTTL > 0 {
		e.cache = cache.New(cfg.CacheTTL)
	}
	return e, nil
}

// cacheKeyPayload is the canonical cache key input. The dataset version
// guarantees entries from before a reload can never be served after it.
type cacheKeyPayload struct {
	Version    int64             `json:"version"`
	Preference models.Preference `json:"preference"`
	Limit      int               `json:"limit"`
}

// Recommend ranks the given sites under the request's preference.
//
// The sites slice and version come from one catalog snapshot; version
// keys the response cache so a dataset reload implicitly invalidates
// all cached rankings for the old data.
func (e *Engine) Recommend(ctx context.Context, sites []models.Site, version time.Time, req Request) (*models.RecommendationResult, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req.Limit = e.clampLimit(req.Limit)
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	logger := e.logger.With().Str("request_id", req.RequestID).Logger()

	if err := ValidatePreference(req.Preference); err != nil {
		e.errorCount.Add(1)
		metrics.RecordRanking("invalid_preference", time.Since(start), -1)
		logger.Debug().Err(err).Msg("Rejected invalid preference")
		return nil, err
	}

	cacheKey := ""
	if e.cache != nil {
		cacheKey = cache.GenerateKey("recommend", cacheKeyPayload{
			Version:    version.UnixNano(),
			Preference: req.Preference,
			Limit:      req.Limit,
		})
		if cached, ok := e.cache.Get(cacheKey); ok {
			if result, ok := cached.(*models.RecommendationResult); ok {
				metrics.RecordCacheHit("recommendations")
				logger.Debug().Msg("Recommendation served from cache")
				return result, nil
			}
		}
		metrics.RecordCacheMiss("recommendations")
	}

	ranked, err := Rank(sites, req.Preference)
	if err != nil {
		return e.recoverFromRankError(ctx, sites, req, err, start, logger)
	}

	result := buildResult(ranked, len(sites), req.Limit)
	if e.cache != nil {
		e.cache.Set(cacheKey, result)
		metrics.SetCacheSize("recommendations", e.cache.GetStats().TotalKeys)
	}

	metrics.RecordRanking("ok", time.Since(start), len(ranked))
	logger.Debug().
		Int("candidates", len(sites)).
		Int("matched", len(ranked)).
		Int("returned", len(result.Recommendations)).
		Msg("Recommendation complete")
	return result, nil
}

// recoverFromRankError applies the popularity fallback to catalog data
// errors when enabled. Preference errors never reach this path; they
// are rejected before ranking.
func (e *Engine) recoverFromRankError(_ context.Context, sites []models.Site, req Request, rankErr error, start time.Time, logger zerolog.Logger) (*models.RecommendationResult, error) {
	if !e.cfg.FallbackEnabled || !errors.Is(rankErr, ErrInvalidInput) {
		e.errorCount.Add(1)
		metrics.RecordRanking("invalid_input", time.Since(start), -1)
		logger.Error().Err(rankErr).Msg("Ranking failed")
		return nil, rankErr
	}

	e.fallbackCount.Add(1)
	ranked := PopularityRank(sites, req.Limit)
	result := &models.RecommendationResult{
		Recommendations: ranked,
		TotalCandidates: len(sites),
		Excluded:        0,
		Fallback:        true,
		Warning:         FallbackWarning,
	}

	metrics.RecordRanking("fallback", time.Since(start), len(sites))
	logger.Warn().
		Err(rankErr).
		Int("returned", len(ranked)).
		Msg("Preference ranking failed, served popularity fallback")
	return result, nil
}

// Popular returns the most popular sites regardless of preferences.
// Limit semantics match Recommend.
func (e *Engine) Popular(sites []models.Site, limit int) []models.Recommendation {
	return PopularityRank(sites, e.clampLimit(limit))
}

// InvalidateCache drops all cached responses. Called on dataset reload;
// version-keyed entries would expire anyway, this just frees them early.
func (e *Engine) InvalidateCache() {
	if e.cache != nil {
		e.cache.Clear()
		metrics.SetCacheSize("recommendations", 0)
	}
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:     e.requestCount.Load(),
		Fallbacks:    e.fallbackCount.Load(),
		Errors:       e.errorCount.Load(),
		CacheEnabled: e.cache != nil,
	}
	if e.cache != nil {
		cs := e.cache.GetStats()
		s.CacheHits = cs.Hits
		s.CacheMisses = cs.Misses
		s.CacheKeys = cs.TotalKeys
	}
	return s
}

func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.cfg.DefaultLimit
	}
	if limit > e.cfg.MaxLimit {
		return e.cfg.MaxLimit
	}
	return limit
}

// buildResult assembles the response envelope from a full ranked list.
func buildResult(ranked []models.Recommendation, total, limit int) *models.RecommendationResult {
	excluded := total - len(ranked)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return &models.RecommendationResult{
		Recommendations: ranked,
		TotalCandidates: total,
		Excluded:        excluded,
	}
}
