// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hash strength against per-request latency.
const bcryptCost = 12

// BasicAuthManager validates HTTP Basic credentials against a bcrypt
// hash computed once at startup.
type BasicAuthManager struct {
	username     string
	passwordHash []byte
}

// NewBasicAuthManager hashes the configured password and returns a
// manager. Passwords shorter than 8 characters are rejected outright.
func NewBasicAuthManager(username, password string) (*BasicAuthManager, error) {
	if username == "" {
		return nil, fmt.Errorf("admin_username is required for basic auth mode")
	}
	if password == "" {
		return nil, fmt.Errorf("admin_password is required for basic auth mode")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("admin_password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &BasicAuthManager{
		username:     username,
		passwordHash: hash,
	}, nil
}

// ValidateCredentials checks an Authorization header carrying Basic
// credentials. Returns the username on success.
func (m *BasicAuthManager) ValidateCredentials(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Basic ") {
		return "", fmt.Errorf("invalid authorization header format")
	}

	encoded := strings.TrimPrefix(authHeader, "Basic ")
	credentials, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode credentials")
	}

	parts := strings.SplitN(string(credentials), ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid credentials format")
	}

	if !m.checkUsernamePassword(parts[0], parts[1]) {
		return "", fmt.Errorf("invalid username or password")
	}

	return parts[0], nil
}

// CheckPassword validates a bare username/password pair, used by the
// JSON login endpoint.
func (m *BasicAuthManager) CheckPassword(username, password string) bool {
	return m.checkUsernamePassword(username, password)
}

// checkUsernamePassword compares both parts in constant time so a
// username mismatch is not observable through response latency.
func (m *BasicAuthManager) checkUsernamePassword(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}

// GetWWWAuthenticateHeader returns the challenge header for 401
// responses, as the HTTP spec requires.
func (m *BasicAuthManager) GetWWWAuthenticateHeader() string {
	return `Basic realm="Dharohar", charset="UTF-8"`
}
