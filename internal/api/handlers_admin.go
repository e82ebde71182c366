// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/catalog"
	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/models"
)

// Reload handles explicit catalog reload requests
//
// @Summary Reload the heritage catalog
// @Description Re-reads all dataset files, atomically swaps the in-memory snapshot, re-ingests tourism statistics, and invalidates caches. Connected WebSocket clients are notified.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadResult} "Catalog reloaded"
// @Failure 500 {object} models.APIResponse "Reload failed; previous snapshot still serving"
// @Router /admin/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog not available", nil)
		return
	}

	if err := h.store.Load(r.Context(), catalog.TriggerAdmin); err != nil {
		// The previous snapshot keeps serving; reload is all-or-nothing.
		respondError(w, http.StatusInternalServerError, "RELOAD_FAILED", "Catalog reload failed", err)
		return
	}

	// Re-ingest tourism statistics alongside the flat files so one
	// reload refreshes everything curators can edit.
	if h.db != nil && h.config != nil && h.config.Database.TourismStatsPath != "" {
		if _, err := h.db.LoadTourismStats(r.Context(), h.config.Database.TourismStatsPath); err != nil {
			logging.Error().Err(err).Msg("Tourism stats re-ingest failed during reload")
		}
	}

	if h.engine != nil {
		h.engine.InvalidateCache()
	}
	h.ClearCache()

	snap := h.store.Snapshot()
	counts := map[string]int{
		"sites":       len(snap.Sites),
		"art_forms":   len(snap.ArtForms),
		"gems":        len(snap.Gems),
		"initiatives": len(snap.Initiatives),
	}
	durationMs := time.Since(start).Milliseconds()

	if h.wsHub != nil {
		h.wsHub.BroadcastCatalogReloaded(catalog.TriggerAdmin, counts, durationMs)
	}

	logging.Info().
		Int("sites", counts["sites"]).
		Int("art_forms", counts["art_forms"]).
		Int("gems", counts["gems"]).
		Int("initiatives", counts["initiatives"]).
		Int64("duration_ms", durationMs).
		Msg("Catalog reloaded by admin")

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ReloadResult{
			Reloaded:   true,
			Trigger:    catalog.TriggerAdmin,
			Counts:     counts,
			DurationMs: durationMs,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
