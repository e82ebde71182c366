// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation ranking outcomes
// - Catalog dataset loads and reloads
// - DuckDB analytics query performance
// - Response cache efficiency
// - WebSocket connections
// - Profile store operations

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Ranking Metrics
	RankingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_requests_total",
			Help: "Total number of ranking requests by outcome",
		},
		[]string{"outcome"}, // "ok", "fallback", "invalid_input", "invalid_preference"
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_duration_seconds",
			Help:    "Duration of catalog ranking in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	RankingCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_candidates",
			Help:    "Number of sites surviving preference filters per request",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20, 30, 50, 100},
		},
	)

	RankingFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ranking_fallbacks_total",
			Help: "Total number of popularity-only fallback rankings served",
		},
	)

	// Catalog Dataset Metrics
	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Current number of records per dataset",
		},
		[]string{"dataset"}, // "sites", "artforms", "gems", "initiatives", "tourism_stats"
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of full dataset loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of dataset reloads",
		},
		[]string{"trigger", "status"}, // trigger: "startup", "admin", "periodic"; status: "success", "failure"
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_load_timestamp",
			Help: "Unix timestamp of last successful dataset load",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBConnectionPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duckdb_connection_pool_size",
			Help: "Current number of database connections in use",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "analytics", "recommendations"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry and invalidation)",
		},
		[]string{"cache_type"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSMessagesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Profile Store Metrics
	ProfileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_operations_total",
			Help: "Total number of profile store operations",
		},
		[]string{"operation", "success"}, // operation: "create", "get", "list", "delete"
	)

	ProfilesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profiles_stored",
			Help: "Current number of saved preference profiles",
		},
	)

	// Export Metrics
	ExportDownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_downloads_total",
			Help: "Total number of CSV dataset downloads",
		},
		[]string{"dataset"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection for an endpoint
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRanking records a ranking request outcome. Candidates is the
// number of sites that survived the preference filters; pass -1 when
// the request never reached filtering.
func RecordRanking(outcome string, duration time.Duration, candidates int) {
	RankingRequestsTotal.WithLabelValues(outcome).Inc()
	RankingDuration.Observe(duration.Seconds())
	if candidates >= 0 {
		RankingCandidates.Observe(float64(candidates))
	}
	if outcome == "fallback" {
		RankingFallbacksTotal.Inc()
	}
}

// RecordCatalogLoad records a dataset load with per-dataset record counts
func RecordCatalogLoad(trigger string, duration time.Duration, counts map[string]int, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	CatalogReloadsTotal.WithLabelValues(trigger, status).Inc()
	if err != nil {
		return
	}

	CatalogLoadDuration.Observe(duration.Seconds())
	CatalogLastLoad.Set(float64(time.Now().Unix()))
	for dataset, count := range counts {
		CatalogRecords.WithLabelValues(dataset).Set(float64(count))
	}
}

// RecordDBQuery records a database query metric. Errors are bucketed
// into coarse categories to keep label cardinality bounded.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, classifyDBError(err)).Inc()
	}
}

// classifyDBError maps a query error to a bounded label value
func classifyDBError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "context deadline") || strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "context canceled"):
		return "canceled"
	case strings.Contains(msg, "no rows"):
		return "no_rows"
	case strings.Contains(msg, "syntax"):
		return "syntax"
	default:
		return "other"
	}
}

// RecordCacheHit records a cache hit for the given cache type
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// SetCacheSize sets the current entry count for the given cache type
func SetCacheSize(cacheType string, totalKeys int64) {
	CacheSize.WithLabelValues(cacheType).Set(float64(totalKeys))
}

// RecordCacheEviction records cache evictions for the given cache type
func RecordCacheEviction(cacheType string, count int64) {
	if count > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(count))
	}
}

// RecordWSMessageSent records an outbound WebSocket message
func RecordWSMessageSent() {
	WSMessagesSent.Inc()
}

// RecordWSMessageReceived records an inbound WebSocket message
func RecordWSMessageReceived() {
	WSMessagesReceived.Inc()
}

// RecordWSError records a WebSocket error by type
func RecordWSError(errorType string) {
	WSErrors.WithLabelValues(errorType).Inc()
}

// RecordProfileOperation records a profile store operation
func RecordProfileOperation(operation string, success bool) {
	successStr := "true"
	if !success {
		successStr = "false"
	}
	ProfileOperationsTotal.WithLabelValues(operation, successStr).Inc()
}

// SetProfilesStored sets the current count of saved profiles
func SetProfilesStored(count int64) {
	ProfilesStored.Set(float64(count))
}

// RecordExport records a CSV dataset download
func RecordExport(dataset string) {
	ExportDownloadsTotal.WithLabelValues(dataset).Inc()
}

// SetAppInfo sets the application version info metric
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
