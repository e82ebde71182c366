// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"time"

	"github.com/dharohar-project/dharohar/internal/auth"
	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/models"
)

// tokenCookieName is the HTTP-only cookie carrying the JWT, read by the
// auth middleware as a fallback to the Authorization header.
const tokenCookieName = "token"

// Login handles user authentication requests
//
// @Summary Authenticate user
// @Description Authenticates with username and password and returns a JWT, also set as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Authentication successful"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Failure 403 {object} models.APIResponse "JWT authentication not enabled"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if h.config == nil || h.config.Security.AuthMode != auth.AuthModeJWT || h.jwtManager == nil {
		respondError(w, http.StatusForbidden, "AUTH_DISABLED", "JWT authentication is not enabled", nil)
		return
	}
	if h.basicAuth == nil || !h.basicAuth.CheckPassword(req.Username, req.Password) {
		logging.Warn().Str("username", sanitizeLogValue(req.Username)).Msg("Login failed: invalid credentials")
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return
	}

	// The single configured account is the administrator.
	role := models.RoleAdmin

	token, err := h.jwtManager.GenerateToken(req.Username, role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to generate token", err)
		return
	}

	expiresAt := time.Now().Add(h.jwtManager.Timeout())
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	}
	if req.RememberMe {
		cookie.Expires = expiresAt
	}
	http.SetCookie(w, cookie)

	logging.Info().Str("username", sanitizeLogValue(req.Username)).Msg("Login successful")

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			Username:  req.Username,
			Role:      role,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Verify handles token verification requests
//
// @Summary Verify authentication token
// @Description Reports whether the presented token or credentials are valid, and for whom
// @Tags Auth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.VerifyResponse} "Token is valid"
// @Failure 401 {object} models.APIResponse "Token is missing or invalid"
// @Router /auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	// The Authenticate middleware already rejected invalid tokens; in
	// auth mode "none" there are no claims to report.
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, r, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data: models.VerifyResponse{
				Valid: true,
			},
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
		})
		return
	}

	resp := models.VerifyResponse{
		Valid:    true,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Format(time.RFC3339)
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
