// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dharohar-project/dharohar/internal/auth"
	"github.com/dharohar-project/dharohar/internal/middleware"
	"github.com/dharohar-project/dharohar/internal/models"
)

// Router wires handlers to routes with the appropriate middleware per
// route group.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router from a handler and the auth middleware.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: chiMW,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler, so the auth and metrics middleware
// work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS must be
	// global to handle OPTIONS preflight.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health: permissive rate limiting for monitoring tools
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
	})

	// Authentication: strict limiting on login to slow brute force
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.With(
			router.chiMiddleware.RateLimit(),
			chiMiddleware(router.middleware.Authenticate),
		).Get("/verify", router.handler.Verify)
	})

	// Catalog and recommendation endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/sites", router.handler.Sites)
		r.Get("/sites/stats", router.handler.SiteStats)
		r.Get("/sites/{id}", router.handler.SiteByID)

		r.Post("/recommendations", router.handler.Recommend)
		r.Get("/recommendations/popular", router.handler.PopularSites)

		r.Get("/artforms", router.handler.ArtForms)
		r.Get("/artforms/stats", router.handler.ArtFormStats)

		r.Get("/gems", router.handler.Gems)
		r.Get("/gems/nearby", router.handler.GemsNearby)
		r.Post("/gems/match", router.handler.GemsMatch)

		r.Get("/initiatives", router.handler.Initiatives)
		r.Get("/initiatives/summary", router.handler.InitiativeSummary)

		r.Get("/ws", router.handler.WebSocket)
	})

	// Tourism analytics: read-heavy cached endpoints, permissive limit
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/trends/national", router.handler.NationalTrends)
		r.Get("/trends/states", router.handler.StateTrends)
		r.Get("/states/compare", router.handler.CompareStates)
		r.Get("/states/shares", router.handler.VisitorShares)
		r.Get("/growth", router.handler.Growth)
		r.Get("/shares", router.handler.Shares)
		r.Get("/revenue", router.handler.RevenuePerVisit)
		r.Get("/summary", router.handler.AnalyticsSummary)
	})

	// GeoJSON layers: boundary polygons compress well, so gzip here
	r.Route("/api/v1/geo", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/states", router.handler.GeoStates)
		r.Get("/sites", router.handler.GeoSites)
		r.Get("/gems", router.handler.GeoGems)
	})

	// CSV exports: resource intensive, strict limit
	r.Route("/api/v1/export", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitExport())
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/{dataset}.csv", router.handler.Export)
	})

	// Preference profiles
	r.Route("/api/v1/profiles", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/", router.handler.ProfileList)
		r.Post("/", router.handler.ProfileCreate)
		r.Get("/{id}", router.handler.ProfileGet)
		r.Delete("/{id}", router.handler.ProfileDelete)
	})

	// Admin: catalog reload requires the admin role
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Post("/reload", router.middleware.RequireRole(models.RoleAdmin, router.handler.Reload))
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
