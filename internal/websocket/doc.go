// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

/*
Package websocket provides real-time push notifications for dashboard clients.

This package implements WebSocket support for broadcasting catalog reload
events and profile statistics updates to connected frontend clients. It uses
the gorilla/websocket library with a hub-client architecture for efficient
message broadcasting.

Key Components:

  - Hub: Central message broker that manages client connections and broadcasts
  - Client: Represents a single WebSocket connection with read/write goroutines
  - Message: Typed message structure for different event types

Architecture:

The package implements a hub-and-spoke pattern:

	┌──────────┐
	│   Hub    │ ← Broadcasts to all clients
	└────┬─────┘
	     │
	┌────┴─────┬─────────┬─────────┐
	│          │         │         │
	│ Client1  │ Client2 │ Client3 │ Client4
	│          │         │         │
	└──────────┴─────────┴─────────┘

Each client has two goroutines:
  - readPump: Reads from WebSocket, handles pings
  - writePump: Writes to WebSocket, sends pongs and keepalive pings

Message Types:

  - catalog_reloaded: Catalog data files were reloaded (per-dataset counts)
  - stats_update: Stored profile count changed
  - ping / pong: Application-level keepalive initiated by clients

Connection Lifecycle:

 1. Client connects via HTTP upgrade (see internal/api)
 2. Hub registers client
 3. Client starts read/write goroutines
 4. Hub broadcasts messages to all clients
 5. Client disconnects (network error or explicit close)
 6. Hub unregisters client and cleans up

Thread Safety:

The Hub uses a mutex for client map access and channels for goroutine
coordination. Each client has separate read and write goroutines with no
shared mutable state between clients.

Timeouts:

  - writeWait: 10 seconds (time allowed to write a message)
  - pongWait: 60 seconds (time allowed to read the next pong)
  - pingPeriod: 54 seconds (ping interval, must be < pongWait)
  - maxMessageSize: 512 KB

See Also:

  - github.com/gorilla/websocket: Underlying WebSocket library
  - internal/api: WebSocket upgrade endpoint and origin checks
  - internal/supervisor: Catalog refresh service that triggers broadcasts
*/
package websocket
