// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

/*
Package main is the entry point for the Dharohar server application.

Dharohar is a self-hosted cultural heritage atlas for India. It serves a
curated catalog of heritage sites, traditional art forms, hidden gem
destinations, and preservation initiatives, along with preference-based
site recommendations and DuckDB-backed tourism analytics.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("dharohar")
	├── DataSupervisor ("data-layer")
	│   └── Profile GC (Badger value log maintenance)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket Hub (real-time updates)
	│   └── Catalog Refresh (dataset file polling)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + Swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: dataset files loaded and validated into an immutable snapshot
 4. Database: DuckDB with tourism statistics ingested from CSV
 5. Geo layer: state boundary GeoJSON for map endpoints
 6. Ranking engine: preference-based recommendation scoring
 7. Profile store: Badger-backed visitor preference profiles
 8. Authentication: JWT, Basic Auth, or no-auth mode
 9. Supervisor Tree: Suture v4 process supervision
 10. HTTP Server: Chi router with middleware stack

The server refuses to start when the initial catalog load fails: serving
an empty catalog would make every downstream endpoint silently useless.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=4326               # HTTP server port (EPSG:4326 reference)
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Datasets
	SITES_PATH=data/sites.json
	ARTFORMS_PATH=data/artforms.csv
	GEMS_PATH=data/hidden_gems.csv
	INITIATIVES_PATH=data/initiatives.csv
	GEOJSON_PATH=data/india_states.geojson
	TOURISM_STATS_PATH=data/tourism_stats.csv

	# Authentication (choose one mode)
	AUTH_MODE=jwt                # jwt, basic, or none
	JWT_SECRET=<32+ chars>       # Required for JWT mode
	ADMIN_USERNAME=admin
	ADMIN_PASSWORD=<password>

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Broadcasts shutdown to WebSocket clients
 3. Waits for in-flight requests (10s timeout)
 4. Closes the profile store and database
 5. Reports any services that failed to stop

# Usage Examples

Development (no auth):

	export AUTH_MODE=none
	go run ./cmd/server

Production (JWT):

	export AUTH_MODE=jwt
	export JWT_SECRET=$(openssl rand -base64 32)
	export ADMIN_USERNAME=admin
	export ADMIN_PASSWORD=secure-password
	./dharohar

# Port 4326

The default port 4326 references EPSG:4326 (WGS 84), the coordinate
system all dataset coordinates are expressed in.

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. The API is organized into categories:

  - Core: Health checks, catalog statistics
  - Sites: Heritage site catalog with filtering
  - Recommendations: Preference-based ranking
  - Culture: Art forms, hidden gems, initiatives
  - Analytics: Tourism statistics from DuckDB
  - Geo: GeoJSON layers for maps
  - Export: CSV dataset exports
  - Profiles: Stored visitor preferences
  - Auth: Login and token verification
  - Admin: Catalog reload

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/catalog: Dataset loading and snapshots
*/
package main
