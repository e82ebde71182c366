// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package main provides the Dharohar HTTP server
//
// Dharohar API serves India's cultural heritage catalog with
// preference-based recommendations and tourism analytics.
//
// @title Dharohar API
// @version 1.0
// @description Cultural heritage atlas and tourism analytics for India
// @description
// @description ## Features
// @description
// @description - **Heritage Catalog**: UNESCO sites, temples, forts, and monuments with rich filtering
// @description - **Recommendations**: Preference-based ranking over popularity, cost, and crowd levels
// @description - **Living Culture**: Traditional art forms, hidden gem destinations, preservation initiatives
// @description - **Tourism Analytics**: DuckDB-backed visitor trends, state comparisons, and growth metrics
// @description - **Geo Layers**: GeoJSON state boundaries, site and gem layers for maps
// @description - **Real-time Updates**: WebSocket notifications on catalog reloads
// @description - **Data Export**: CSV export for every dataset
// @description
// @description ## Authentication
// @description
// @description With AUTH_MODE=jwt, most endpoints require a JWT in an HTTP-only cookie.
// @description Use `/api/v1/auth/login` to obtain a token, which will be automatically included in subsequent requests.
// @description With AUTH_MODE=none (the default), all endpoints are open.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Analytics endpoints allow 1000 requests per minute; exports 10 per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-27T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/dharohar-project/dharohar/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:4326
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in cookie
// @name token
// @description JWT token stored in HTTP-only cookie. Obtain via /api/v1/auth/login endpoint.
//
// @tag.name Core
// @tag.description Health checks and catalog statistics
//
// @tag.name Sites
// @tag.description Heritage site catalog with region, category, cost, and crowd filters
//
// @tag.name Recommendations
// @tag.description Preference-based site ranking and popularity lists
//
// @tag.name Culture
// @tag.description Traditional art forms, hidden gem destinations, and preservation initiatives
//
// @tag.name Analytics
// @tag.description Tourism statistics: national and state trends, comparisons, growth, and revenue
//
// @tag.name Geo
// @tag.description GeoJSON layers for state boundaries, sites, and gems
//
// @tag.name Export
// @tag.description CSV exports for all datasets
//
// @tag.name Profiles
// @tag.description Stored visitor preference profiles
//
// @tag.name Auth
// @tag.description Authentication and session management endpoints
//
// @tag.name Realtime
// @tag.description Real-time WebSocket connection for catalog reload notifications
//
// @tag.name Admin
// @tag.description Administrative operations requiring the admin role
package main
