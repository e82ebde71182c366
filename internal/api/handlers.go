// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dharohar-project/dharohar/internal/auth"
	"github.com/dharohar-project/dharohar/internal/cache"
	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/config"
	"github.com/dharohar-project/dharohar/internal/database"
	"github.com/dharohar-project/dharohar/internal/geo"
	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/profiles"
	"github.com/dharohar-project/dharohar/internal/ranking"
	ws "github.com/dharohar-project/dharohar/internal/websocket"
)

// Version is the reported application version. Overridden at build time
// via -ldflags "-X github.com/dharohar-project/dharohar/internal/api.Version=...".
var Version = "1.0.0"

// Handler contains dependencies for API handlers.
//
// The in-memory catalog (sites, art forms, gems, initiatives) is read
// through immutable snapshots, so handlers never block reloads. Tourism
// analytics queries go to DuckDB; preference profiles live in Badger.
type Handler struct {
	store    *catalog.Store
	db       *database.DB
	geoLayer *geo.StatesLayer
	engine   *ranking.Engine
	config   *config.Config
	wsHub    *ws.Hub
	cache    *cache.Cache

	profileStore *profiles.Store
	jwtManager   *auth.JWTManager
	basicAuth    *auth.BasicAuthManager

	startTime time.Time
}

// NewHandler creates a new API handler with the core dependencies.
//
// Optional dependencies (profile store, auth managers) are attached after
// construction via SetProfileStore and SetAuthManagers, since they depend
// on configuration that may disable them entirely.
func NewHandler(store *catalog.Store, db *database.DB, geoLayer *geo.StatesLayer, engine *ranking.Engine, cfg *config.Config, wsHub *ws.Hub) *Handler {
	var c *cache.Cache
	if cfg != nil && cfg.API.CacheEnabled {
		c = cache.New(cfg.API.CacheTTL)
	}

	return &Handler{
		store:     store,
		db:        db,
		geoLayer:  geoLayer,
		engine:    engine,
		config:    cfg,
		wsHub:     wsHub,
		cache:     c,
		startTime: time.Now(),
	}
}

// SetProfileStore attaches the Badger-backed profile store.
//
// Allows late initialization after the handler is created. Should be
// called once during startup; profile endpoints return 503 until set.
func (h *Handler) SetProfileStore(store *profiles.Store) {
	h.profileStore = store
}

// SetAuthManagers attaches the token managers matching the configured
// auth mode. Either may be nil when the corresponding mode is not in use.
func (h *Handler) SetAuthManagers(jwtManager *auth.JWTManager, basicAuth *auth.BasicAuthManager) {
	h.jwtManager = jwtManager
	h.basicAuth = basicAuth
}

// ClearCache invalidates all cached analytics responses. Called after a
// catalog reload or tourism data re-ingest so clients see fresh data.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Analytics cache cleared")
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout against slow clients.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins.
// Browser WebSockets always include Origin; an empty header is rejected
// because allowing it would bypass CORS entirely.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	// Fail open when no config is wired (tests)
	if h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket handles WebSocket upgrade requests
//
// @Summary Establish WebSocket connection
// @Description Establishes a WebSocket connection for catalog reload notifications and profile statistics updates
// @Tags Realtime
// @Produce json
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {string} string "Bad Request"
// @Failure 503 {object} models.APIResponse "WebSocket hub not available"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register <- client
	client.Start()
}
