// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dharohar-project/dharohar/docs" // Import generated swagger docs
	"github.com/dharohar-project/dharohar/internal/api"
	"github.com/dharohar-project/dharohar/internal/auth"
	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/config"
	"github.com/dharohar-project/dharohar/internal/database"
	"github.com/dharohar-project/dharohar/internal/geo"
	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/profiles"
	"github.com/dharohar-project/dharohar/internal/ranking"
	"github.com/dharohar-project/dharohar/internal/supervisor"
	"github.com/dharohar-project/dharohar/internal/supervisor/services"
	ws "github.com/dharohar-project/dharohar/internal/websocket"
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Dharohar with supervisor tree")
	logging.Info().
		Str("sites_path", cfg.Catalog.SitesPath).
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalog before anything else. A server without a catalog
	// would answer every endpoint with an empty dataset, so a failed
	// initial load is fatal rather than degraded.
	store := catalog.NewStore(catalog.Paths{
		Sites:       cfg.Catalog.SitesPath,
		ArtForms:    cfg.Catalog.ArtFormsPath,
		Gems:        cfg.Catalog.GemsPath,
		Initiatives: cfg.Catalog.InitiativesPath,
	})
	if err := store.Load(ctx, catalog.TriggerStartup); err != nil {
		logging.Fatal().Err(err).Msg("Failed to load heritage catalog")
	}

	// Initialize DuckDB for tourism analytics
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Ingest tourism statistics. A missing or malformed CSV degrades the
	// analytics endpoints to 503 but leaves the catalog fully usable.
	if rows, err := db.LoadTourismStats(ctx, cfg.Database.TourismStatsPath); err != nil {
		logging.Warn().Err(err).
			Str("path", cfg.Database.TourismStatsPath).
			Msg("Failed to ingest tourism statistics, analytics degraded")
	} else {
		logging.Info().Int("rows", rows).Msg("Tourism statistics ingested")
	}

	// Load state boundaries for the geo layer endpoints
	var geoLayer *geo.StatesLayer
	if layer, err := geo.LoadStates(cfg.Catalog.GeoJSONPath); err != nil {
		logging.Warn().Err(err).
			Str("path", cfg.Catalog.GeoJSONPath).
			Msg("Failed to load state boundaries, geo layers degraded")
	} else {
		geoLayer = layer
	}

	// Recommendation engine
	engine, err := ranking.NewEngine(ranking.Config{
		DefaultLimit:    cfg.Recommend.DefaultLimit,
		MaxLimit:        cfg.Recommend.MaxLimit,
		FallbackEnabled: cfg.Recommend.FallbackEnabled,
		CacheTTL:        cfg.API.CacheTTL,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	// Badger-backed preference profiles. An empty path opts into the
	// in-memory store, which still serves the profile endpoints but
	// loses profiles on restart.
	profileStore, err := profiles.New(cfg.Profiles.StorePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open profile store")
	}
	defer func() {
		if err := profileStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing profile store")
		}
	}()
	if cfg.Profiles.StorePath == "" {
		logging.Info().Msg("Profile store running in-memory (PROFILES_PATH not set)")
	}

	var jwtManager *auth.JWTManager
	var basicAuthManager *auth.BasicAuthManager

	switch cfg.Security.AuthMode {
	case auth.AuthModeJWT:
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		// The login endpoint verifies credentials against the bcrypt
		// hash even in JWT mode.
		basicAuthManager, err = auth.NewBasicAuthManager(
			cfg.Security.AdminUsername,
			cfg.Security.AdminPassword,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize credential verification")
		}
		logging.Info().Msg("JWT authentication enabled")
	case auth.AuthModeBasic:
		basicAuthManager, err = auth.NewBasicAuthManager(
			cfg.Security.AdminUsername,
			cfg.Security.AdminPassword,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize Basic Auth manager")
		}
		logging.Info().Msg("Basic authentication enabled")
		logging.Warn().Msg("Basic Auth transmits credentials with each request. Use HTTPS in production!")
	case auth.AuthModeNone:
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none); all endpoints are publicly accessible")
	}

	middleware := auth.NewMiddleware(&cfg.Security, jwtManager, basicAuthManager)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*) with authentication enabled; " +
			"set specific origins in production")
	}
	if cfg.ShouldWarnAboutOpenAdmin() {
		logging.Warn().Msg("Admin endpoints are unprotected in a production deployment (AUTH_MODE=none)")
	}

	// WebSocket hub for catalog reload notifications
	var wsHub *ws.Hub
	if cfg.WebSocket.Enabled {
		wsHub = ws.NewHub()
	} else {
		logging.Info().Msg("WebSocket notifications disabled (WEBSOCKET_ENABLED=false)")
	}

	handler := api.NewHandler(store, db, geoLayer, engine, cfg, wsHub)
	handler.SetProfileStore(profileStore)
	handler.SetAuthManagers(jwtManager, basicAuthManager)

	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, middleware, chiMW)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Data layer services
	tree.AddDataService(services.NewProfileGCService(profileStore, cfg.Profiles.GCInterval))

	// Messaging layer services
	if wsHub != nil {
		tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	}
	refreshSvc := services.NewCatalogRefreshService(store, cfg.Catalog.RefreshInterval)
	if wsHub != nil {
		refreshSvc.SetBroadcaster(wsHub)
	}
	tree.AddMessagingService(refreshSvc)
	if cfg.Catalog.RefreshInterval > 0 {
		logging.Info().Dur("interval", cfg.Catalog.RefreshInterval).Msg("Catalog refresh poller enabled")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
