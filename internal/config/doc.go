// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package config manages application configuration using Koanf v2 with
// layered sources.
//
// # Configuration Sources
//
// Configuration is merged from three layers, each overriding the last:
//
//  1. Struct defaults (see defaultConfig)
//  2. YAML config file, found via CONFIG_PATH or the default paths
//     (config.yaml, config.yml, /etc/dharohar/config.yaml, /etc/dharohar/config.yml)
//  3. Environment variables
//
// A missing config file is not an error. Only the environment variables
// registered in envKeyMap are consulted, so unrelated variables cannot
// leak into the configuration.
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//		// Configuration errors name the offending environment variable
//		log.Fatal(err)
//	}
//
// # Environment Variables
//
// Server:
//
//	HTTP_PORT      HTTP listen port (default 4326)
//	HTTP_HOST      HTTP listen address (default 0.0.0.0)
//	HTTP_TIMEOUT   Request timeout (default 30s)
//	ENVIRONMENT    development or production (default development)
//
// Datasets:
//
//	SITES_PATH                 Heritage site catalog JSON (default data/sites.json)
//	ARTFORMS_PATH              Art forms CSV (default data/artforms.csv)
//	GEMS_PATH                  Hidden gems CSV (default data/hidden_gems.csv)
//	INITIATIVES_PATH           Initiatives CSV (default data/initiatives.csv)
//	GEOJSON_PATH               State boundaries GeoJSON (default data/india_states.geojson)
//	TOURISM_STATS_PATH         Tourism statistics CSV (default data/tourism_stats.csv)
//	CATALOG_REFRESH_INTERVAL   Periodic dataset reload, 0 disables (default 0)
//
// Storage:
//
//	DUCKDB_PATH            Analytics database file, empty for in-memory
//	DUCKDB_MAX_MEMORY      DuckDB memory budget (default 2GB)
//	DUCKDB_THREADS         DuckDB thread count, 0 for all cores
//	PROFILES_PATH          Badger profile store directory, empty for in-memory
//	PROFILES_GC_INTERVAL   Badger value log GC cadence (default 10m)
//
// Security:
//
//	AUTH_MODE             none, basic, or jwt (default none)
//	JWT_SECRET            Required when AUTH_MODE=jwt, 32+ characters
//	ADMIN_USERNAME        Required when AUTH_MODE is basic or jwt
//	ADMIN_PASSWORD        Required when AUTH_MODE is basic or jwt, 12+ characters
//	SESSION_TIMEOUT       JWT token lifetime (default 24h)
//	RATE_LIMIT_REQUESTS   Requests per window per client (default 100)
//	RATE_LIMIT_WINDOW     Rate limit window (default 1m)
//	DISABLE_RATE_LIMIT    Disable rate limiting entirely
//	CORS_ORIGINS          Comma-separated allowed origins (default *)
//	TRUSTED_PROXIES       Comma-separated proxy CIDRs for client IP extraction
//
// Validation fails fast at startup with an error naming the offending
// variable, so misconfiguration never survives past boot.
package config
