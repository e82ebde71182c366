// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dharohar-project/dharohar/internal/config"
)

// ============================================================================
// Test Fixtures
// ============================================================================

func testSecurityConfig(mode string) *config.SecurityConfig {
	return &config.SecurityConfig{
		AuthMode:          mode,
		JWTSecret:         testJWTSecret,
		SessionTimeout:    time.Hour,
		AdminUsername:     "curator",
		RateLimitDisabled: true,
	}
}

func testMiddleware(t *testing.T, mode string) *Middleware {
	t.Helper()

	var jwtManager *JWTManager
	var basicManager *BasicAuthManager
	var err error

	if mode == AuthModeJWT {
		jwtManager = testJWTManager(t)
	}
	if mode == AuthModeBasic {
		basicManager, err = NewBasicAuthManager("curator", "heritage-pass-123")
		if err != nil {
			t.Fatalf("NewBasicAuthManager() error = %v", err)
		}
	}

	return NewMiddleware(testSecurityConfig(mode), jwtManager, basicManager)
}

// okHandler records the claims it saw and answers 200.
func okHandler(claims **Claims) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, ok := ClaimsFromContext(r.Context()); ok {
			*claims = c
		}
		w.WriteHeader(http.StatusOK)
	}
}

func doRequest(handler http.HandlerFunc, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reload", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// ============================================================================
// Authenticate Tests
// ============================================================================

func TestAuthenticate_NoneMode(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeNone)

	var claims *Claims
	rec := doRequest(m.Authenticate(okHandler(&claims)), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if claims != nil {
		t.Error("claims set in none mode, want nil")
	}
}

func TestAuthenticate_Basic(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeBasic)

	var claims *Claims
	rec := doRequest(m.Authenticate(okHandler(&claims)), func(r *http.Request) {
		r.Header.Set("Authorization", basicHeader("curator", "heritage-pass-123"))
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if claims == nil || claims.Username != "curator" || claims.Role != RoleAdmin {
		t.Errorf("claims = %+v, want curator with admin role", claims)
	}
}

func TestAuthenticate_BasicRejections(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeBasic)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong password", header: basicHeader("curator", "wrong")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(m.Authenticate(okHandler(new(*Claims))), func(r *http.Request) {
				if tt.header != "" {
					r.Header.Set("Authorization", tt.header)
				}
			})
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header missing from 401")
			}
		})
	}
}

func TestAuthenticate_BasicViewerRole(t *testing.T) {
	t.Parallel()

	basicManager, err := NewBasicAuthManager("guest", "guest-pass-123")
	if err != nil {
		t.Fatalf("NewBasicAuthManager() error = %v", err)
	}
	cfg := testSecurityConfig(AuthModeBasic) // admin username stays "curator"
	m := NewMiddleware(cfg, nil, basicManager)

	var claims *Claims
	rec := doRequest(m.Authenticate(okHandler(&claims)), func(r *http.Request) {
		r.Header.Set("Authorization", basicHeader("guest", "guest-pass-123"))
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if claims == nil || claims.Role != RoleViewer {
		t.Errorf("claims = %+v, want viewer role for non-admin user", claims)
	}
}

func TestAuthenticate_JWT(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeJWT)
	token, err := m.jwtManager.GenerateToken("curator", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		mutate     func(*http.Request)
		wantStatus int
	}{
		{
			name:       "bearer header",
			mutate:     func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie fallback",
			mutate:     func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: token}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			mutate:     nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed scheme",
			mutate:     func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "tampered token",
			mutate:     func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token+"x") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(m.Authenticate(okHandler(new(*Claims))), tt.mutate)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// ============================================================================
// RequireRole Tests
// ============================================================================

func TestRequireRole(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeJWT)

	adminToken, err := m.jwtManager.GenerateToken("curator", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	viewerToken, err := m.jwtManager.GenerateToken("guest", RoleViewer)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		role       string
		token      string
		wantStatus int
	}{
		{name: "admin on admin route", role: RoleAdmin, token: adminToken, wantStatus: http.StatusOK},
		{name: "viewer on admin route", role: RoleAdmin, token: viewerToken, wantStatus: http.StatusForbidden},
		{name: "admin satisfies viewer route", role: RoleViewer, token: adminToken, wantStatus: http.StatusOK},
		{name: "viewer on viewer route", role: RoleViewer, token: viewerToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(m.RequireRole(tt.role, okHandler(new(*Claims))), func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			})
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole_NoneModeSkipsCheck(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeNone)

	rec := doRequest(m.RequireRole(RoleAdmin, okHandler(new(*Claims))), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", rec.Code)
	}
}

// ============================================================================
// Rate Limit Tests
// ============================================================================

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := testSecurityConfig(AuthModeNone)
	cfg.RateLimitDisabled = false
	cfg.RateLimitReqs = 2
	cfg.RateLimitWindow = time.Minute
	m := NewMiddleware(cfg, nil, nil)

	handler := m.RateLimit(okHandler(new(*Claims)))
	fromSameIP := func(r *http.Request) { r.RemoteAddr = "10.1.2.3:5555" }

	for i := 0; i < 2; i++ {
		if rec := doRequest(handler, fromSameIP); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}
	if rec := doRequest(handler, fromSameIP); rec.Code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", rec.Code)
	}

	// A different IP still has a full budget.
	rec := doRequest(handler, func(r *http.Request) { r.RemoteAddr = "10.9.9.9:5555" })
	if rec.Code != http.StatusOK {
		t.Errorf("other IP status = %d, want 200", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeNone)
	handler := m.RateLimit(okHandler(new(*Claims)))

	for i := 0; i < 50; i++ {
		if rec := doRequest(handler, nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200 with limiting disabled", i+1, rec.Code)
		}
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, time.Minute)
	rl.Allow("192.0.2.1")
	rl.Allow("192.0.2.2")

	rl.mu.Lock()
	rl.limiters["192.0.2.1"].lastAccess = time.Now().Add(-2 * time.Hour)
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, stale := rl.limiters["192.0.2.1"]; stale {
		t.Error("stale limiter survived cleanup")
	}
	if _, fresh := rl.limiters["192.0.2.2"]; !fresh {
		t.Error("fresh limiter removed by cleanup")
	}
}

// ============================================================================
// Security Header Tests
// ============================================================================

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeNone)

	rec := doRequest(m.SecurityHeaders(okHandler(new(*Claims))), nil)

	headers := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range headers {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy header missing")
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP response")
	}
}

func TestSecurityHeaders_HSTSBehindTLS(t *testing.T) {
	t.Parallel()

	m := testMiddleware(t, AuthModeNone)

	rec := doRequest(m.SecurityHeaders(okHandler(new(*Claims))), func(r *http.Request) {
		r.Header.Set("X-Forwarded-Proto", "https")
	})
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing when X-Forwarded-Proto is https")
	}
}

// ============================================================================
// Client IP Tests
// ============================================================================

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	cfg := testSecurityConfig(AuthModeNone)
	cfg.TrustedProxies = []string{"10.0.0.1"}
	m := NewMiddleware(cfg, nil, nil)

	tests := []struct {
		name   string
		remote string
		xff    string
		xri    string
		want   string
	}{
		{
			name:   "direct client",
			remote: "203.0.113.7:4242",
			want:   "203.0.113.7",
		},
		{
			name:   "untrusted peer ignores forwarding headers",
			remote: "203.0.113.7:4242",
			xff:    "198.51.100.1",
			want:   "203.0.113.7",
		},
		{
			name:   "trusted proxy honors x-forwarded-for",
			remote: "10.0.0.1:4242",
			xff:    "198.51.100.1, 10.0.0.1",
			want:   "198.51.100.1",
		},
		{
			name:   "trusted proxy falls back to x-real-ip",
			remote: "10.0.0.1:4242",
			xff:    "not-an-ip",
			xri:    "198.51.100.2",
			want:   "198.51.100.2",
		},
		{
			name:   "trusted proxy with no headers",
			remote: "10.0.0.1:4242",
			want:   "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			if got := m.getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
