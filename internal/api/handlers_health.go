// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns health status including catalog load state, DuckDB connectivity and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	var catalogLoaded bool
	var catalogSize int
	var loadedAt time.Time
	if h.store != nil {
		if snap := h.store.Snapshot(); snap != nil {
			catalogLoaded = len(snap.Sites) > 0
			catalogSize = len(snap.Sites)
			loadedAt = snap.LoadedAt
		}
	}

	status := "healthy"
	if !catalogLoaded || !dbConnected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           Version,
		CatalogLoaded:     catalogLoaded,
		CatalogSize:       catalogSize,
		DatabaseConnected: dbConnected,
		CatalogLoadedAt:   loadedAt,
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
