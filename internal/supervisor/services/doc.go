// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

/*
Package services provides suture.Service wrappers for Dharohar components.

This package adapts existing application components to the suture v4 supervision
model, translating various lifecycle patterns (ListenAndServe, RunWithContext,
periodic polling) into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation to the Serve pattern
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

WebSocket Hub (WebSocketHubService):
  - Wraps websocket.Hub with context support
  - Handles client connection cleanup on shutdown
  - Broadcasts shutdown notification to connected clients

Catalog Refresh (CatalogRefreshService):
  - Polls the dataset files for on-disk changes
  - Reloads the catalog snapshot when something changed
  - Broadcasts catalog_reloaded to WebSocket clients
  - Disabled when the refresh interval is zero

Profile GC (ProfileGCService):
  - Runs periodic Badger value log garbage collection
  - Keeps the profile store's disk footprint bounded
  - Disabled when the GC interval is zero

# Usage Example

Creating and registering services:

	import (
	    "net/http"
	    "time"

	    "github.com/dharohar-project/dharohar/internal/supervisor"
	    "github.com/dharohar-project/dharohar/internal/supervisor/services"
	)

	func setupSupervisor(server *http.Server, hub *websocket.Hub, store *catalog.Store) {
	    tree, _ := supervisor.NewSupervisorTree(logger, config)

	    // HTTP server with 30s shutdown timeout
	    httpSvc := services.NewHTTPServerService(server, 30*time.Second)
	    tree.AddAPIService(httpSvc)

	    // WebSocket hub
	    wsSvc := services.NewWebSocketHubService(hub)
	    tree.AddMessagingService(wsSvc)

	    // Catalog refresh poller
	    refreshSvc := services.NewCatalogRefreshService(store, time.Hour)
	    refreshSvc.SetBroadcaster(hub)
	    tree.AddMessagingService(refreshSvc)

	    // Start supervision
	    tree.Serve(ctx)
	}

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

The periodic services (refresh, GC) log transient failures and keep
polling instead of returning an error. A restart would not fix a bad
dataset file or a busy value log, so crashing the service would only
produce restart churn.

# Service Identification

All services implement fmt.Stringer for logging:

	func (s *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Thread Safety

All service wrappers are safe for concurrent use:
  - Context cancellation is handled atomically
  - Multiple Serve calls are not supported (undefined behavior)

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - github.com/thejerf/suture/v4: Underlying supervision library
  - internal/websocket: WebSocket hub implementation
  - internal/catalog: Catalog store implementation
*/
package services
