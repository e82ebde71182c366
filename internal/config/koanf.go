// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are the locations checked for a config file,
// in order, when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/dharohar/config.yaml",
	"/etc/dharohar/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the
// config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

var (
	globalKoanf *koanf.Koanf
	koanfMu     sync.RWMutex
)

// defaultConfig returns the baseline configuration. Every value here can
// be overridden by the config file or environment variables.
func defaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			SitesPath:       "data/sites.json",
			ArtFormsPath:    "data/artforms.csv",
			GemsPath:        "data/hidden_gems.csv",
			InitiativesPath: "data/initiatives.csv",
			GeoJSONPath:     "data/india_states.geojson",
			RefreshInterval: 0,
		},
		Database: DatabaseConfig{
			Path:                   "",
			MaxMemory:              "2GB",
			Threads:                0,
			TourismStatsPath:       "data/tourism_stats.csv",
			PreserveInsertionOrder: false,
		},
		Profiles: ProfilesConfig{
			StorePath:  "",
			GCInterval: 10 * time.Minute,
		},
		Server: ServerConfig{
			Port:        4326,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			CacheEnabled:    true,
			CacheTTL:        60 * time.Second,
		},
		Recommend: RecommendConfig{
			DefaultLimit:    10,
			MaxLimit:        100,
			FallbackEnabled: true,
		},
		Security: SecurityConfig{
			AuthMode:          "none",
			JWTSecret:         "",
			SessionTimeout:    24 * time.Hour,
			AdminUsername:     "",
			AdminPassword:     "",
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		WebSocket: WebSocketConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//
//  1. Struct defaults (lowest precedence)
//  2. YAML config file, if one is found
//  3. Environment variables (highest precedence)
//
// The merged result is unmarshaled into Config and validated before
// being returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Environment variables deliver slices as comma-separated strings
	processSliceFields(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	koanfMu.Lock()
	globalKoanf = k
	koanfMu.Unlock()

	return &cfg, nil
}

// findConfigFile returns the path of the config file to load, or ""
// if none exists. CONFIG_PATH wins over the default search paths.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists the config keys that hold string slices and may
// arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields converts comma-separated string values into string
// slices for the keys in sliceConfigPaths. Values that are already
// slices (from the defaults or the YAML file) are left untouched.
func processSliceFields(k *koanf.Koanf) {
	for _, path := range sliceConfigPaths {
		raw := k.Get(path)
		if raw == nil {
			continue
		}

		// Already a slice from the struct or file provider
		switch raw.(type) {
		case []interface{}, []string:
			continue
		}

		str, ok := raw.(string)
		if !ok {
			continue
		}

		parts := strings.Split(str, ",")
		values := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}

		_ = k.Set(path, values)
	}
}

// envKeyMap maps environment variable names to config paths. Only the
// variables listed here are consulted; this prevents unrelated
// environment variables from polluting the configuration.
var envKeyMap = map[string]string{
	// Server
	"HTTP_PORT":    "server.port",
	"HTTP_HOST":    "server.host",
	"HTTP_TIMEOUT": "server.timeout",
	"ENVIRONMENT":  "server.environment",

	// Catalog datasets
	"SITES_PATH":               "catalog.sites_path",
	"ARTFORMS_PATH":            "catalog.artforms_path",
	"GEMS_PATH":                "catalog.gems_path",
	"INITIATIVES_PATH":         "catalog.initiatives_path",
	"GEOJSON_PATH":             "catalog.geojson_path",
	"CATALOG_REFRESH_INTERVAL": "catalog.refresh_interval",

	// DuckDB analytics
	"DUCKDB_PATH":              "database.path",
	"DUCKDB_MAX_MEMORY":        "database.max_memory",
	"DUCKDB_THREADS":           "database.threads",
	"TOURISM_STATS_PATH":       "database.tourism_stats_path",
	"PRESERVE_INSERTION_ORDER": "database.preserve_insertion_order",

	// Profiles store
	"PROFILES_PATH":        "profiles.store_path",
	"PROFILES_GC_INTERVAL": "profiles.gc_interval",

	// API
	"API_DEFAULT_PAGE_SIZE": "api.default_page_size",
	"API_MAX_PAGE_SIZE":     "api.max_page_size",
	"API_CACHE_ENABLED":     "api.cache_enabled",
	"API_CACHE_TTL":         "api.cache_ttl",

	// Recommendations
	"RECOMMEND_DEFAULT_LIMIT": "recommend.default_limit",
	"RECOMMEND_MAX_LIMIT":     "recommend.max_limit",
	"RECOMMEND_FALLBACK":      "recommend.fallback_enabled",

	// Security
	"AUTH_MODE":           "security.auth_mode",
	"JWT_SECRET":          "security.jwt_secret",
	"SESSION_TIMEOUT":     "security.session_timeout",
	"ADMIN_USERNAME":      "security.admin_username",
	"ADMIN_PASSWORD":      "security.admin_password",
	"RATE_LIMIT_REQUESTS": "security.rate_limit_requests",
	"RATE_LIMIT_WINDOW":   "security.rate_limit_window",
	"DISABLE_RATE_LIMIT":  "security.rate_limit_disabled",
	"CORS_ORIGINS":        "security.cors_origins",
	"TRUSTED_PROXIES":     "security.trusted_proxies",

	// WebSocket
	"WEBSOCKET_ENABLED": "websocket.enabled",

	// Logging
	"LOG_LEVEL":  "logging.level",
	"LOG_FORMAT": "logging.format",
	"LOG_CALLER": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unmapped variables return "" and are skipped by the env provider.
func envTransformFunc(key string) string {
	if path, ok := envKeyMap[key]; ok {
		return path
	}
	return ""
}

// GetKoanfInstance returns the Koanf instance from the last successful
// Load, for advanced inspection. Returns nil before the first Load.
func GetKoanfInstance() *koanf.Koanf {
	koanfMu.RLock()
	defer koanfMu.RUnlock()
	return globalKoanf
}

// WatchConfigFile invokes callback whenever the config file at path
// changes. The callback should re-run Load and apply the result.
func WatchConfigFile(path string, callback func()) error {
	f := file.Provider(path)
	return f.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
