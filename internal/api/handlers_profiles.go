// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dharohar-project/dharohar/internal/models"
	"github.com/dharohar-project/dharohar/internal/profiles"
)

// requireProfiles sends a 503 and returns false when the profile store
// is not wired.
func (h *Handler) requireProfiles(w http.ResponseWriter) bool {
	if h.profileStore == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Profile store not available", nil)
		return false
	}
	return true
}

// CreateProfileRequest is the POST /profiles body.
type CreateProfileRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=100"`
	Preference models.Preference `json:"preference"`
}

// ProfileList handles profile listing requests
//
// @Summary List preference profiles
// @Description Returns all stored preference profiles, newest first
// @Tags Profiles
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ProfilesResponse} "Profiles retrieved successfully"
// @Router /profiles [get]
func (h *Handler) ProfileList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireProfiles(w) {
		return
	}

	list, err := h.profileStore.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to list profiles", err)
		return
	}

	respondSuccess(w, r, models.ProfilesResponse{
		Profiles: list,
		Count:    len(list),
	}, start, false)
}

// ProfileCreate handles profile creation requests
//
// @Summary Create a preference profile
// @Description Stores a named preference set and returns it with a generated identifier
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body CreateProfileRequest true "Profile name and preference"
// @Success 201 {object} models.APIResponse{data=models.Profile} "Profile created"
// @Failure 400 {object} models.APIResponse "Invalid profile payload"
// @Router /profiles [post]
func (h *Handler) ProfileCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireProfiles(w) {
		return
	}

	var req CreateProfileRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	profile, err := h.profileStore.Create(r.Context(), req.Name, req.Preference)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to create profile", err)
		return
	}

	respondJSON(w, r, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data:   profile,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ProfileGet handles single profile lookups
//
// @Summary Get a preference profile
// @Description Returns a single stored profile by its identifier
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile identifier (UUID)"
// @Success 200 {object} models.APIResponse{data=models.Profile} "Profile retrieved successfully"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /profiles/{id} [get]
func (h *Handler) ProfileGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireProfiles(w) {
		return
	}

	id := chi.URLParam(r, "id")
	profile, err := h.profileStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found: "+sanitizeLogValue(id), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load profile", err)
		return
	}

	respondSuccess(w, r, profile, start, false)
}

// ProfileDelete handles profile deletion requests
//
// @Summary Delete a preference profile
// @Description Removes a stored profile. Deletion is idempotent in effect but reports 404 for unknown identifiers.
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile identifier (UUID)"
// @Success 200 {object} models.APIResponse "Profile deleted"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /profiles/{id} [delete]
func (h *Handler) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireProfiles(w) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.profileStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found: "+sanitizeLogValue(id), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete profile", err)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]interface{}{"deleted": true, "id": id},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
