// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package config manages application configuration via Koanf v2 with
// layered sources: defaults, optional YAML file, environment variables.
package config

import "time"

// Config holds all application configuration
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Database  DatabaseConfig  `koanf:"database"`
	Profiles  ProfilesConfig  `koanf:"profiles"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	WebSocket WebSocketConfig `koanf:"websocket"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig holds heritage dataset settings.
// The catalog is loaded from flat files at startup and held in memory;
// RefreshInterval optionally re-reads the files on a timer so curators
// can update datasets without restarting the server.
type CatalogConfig struct {
	SitesPath       string        `koanf:"sites_path"`       // JSON catalog of heritage sites
	ArtFormsPath    string        `koanf:"artforms_path"`    // CSV of traditional art forms
	GemsPath        string        `koanf:"gems_path"`        // CSV of hidden gem destinations
	InitiativesPath string        `koanf:"initiatives_path"` // CSV of preservation initiatives
	GeoJSONPath     string        `koanf:"geojson_path"`     // GeoJSON of state boundaries
	RefreshInterval time.Duration `koanf:"refresh_interval"` // 0 disables periodic reload
}

// DatabaseConfig holds DuckDB settings for tourism analytics
type DatabaseConfig struct {
	Path                   string `koanf:"path"`       // Database file path (empty = in-memory)
	MaxMemory              string `koanf:"max_memory"` // e.g. "2GB"
	Threads                int    `koanf:"threads"`    // 0 = use all available cores
	TourismStatsPath       string `koanf:"tourism_stats_path"`
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
}

// ProfilesConfig holds Badger settings for visitor preference profiles
type ProfilesConfig struct {
	StorePath  string        `koanf:"store_path"`  // Badger directory (empty = in-memory)
	GCInterval time.Duration `koanf:"gc_interval"` // Value log GC cadence
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, production
}

// APIConfig holds API behavior settings
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// RecommendConfig holds recommendation engine settings
type RecommendConfig struct {
	DefaultLimit    int  `koanf:"default_limit"` // Results returned when limit unspecified
	MaxLimit        int  `koanf:"max_limit"`
	FallbackEnabled bool `koanf:"fallback_enabled"` // Popularity-only fallback on invalid preferences
}

// SecurityConfig holds authentication and protection settings
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"` // none, basic, jwt
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// WebSocketConfig holds live update settings
type WebSocketConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"` // Include caller file:line in log output
}

// Load reads configuration from defaults, an optional YAML config file,
// and environment variables, in increasing order of precedence.
//
// The config file is looked up via the CONFIG_PATH environment variable
// first, then the well-known paths in DefaultConfigPaths. A missing file
// is not an error; environment variables alone are a complete source.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
