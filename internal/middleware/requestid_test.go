// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesID(t *testing.T) {
	t.Parallel()

	var capturedID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedID == "" {
		t.Fatal("request ID not set in context")
	}
	if _, err := uuid.Parse(capturedID); err != nil {
		t.Errorf("request ID %q is not a valid UUID: %v", capturedID, err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != capturedID {
		t.Errorf("X-Request-ID header = %q, want %q", got, capturedID)
	}
}

func TestRequestID_PreservesUpstreamID(t *testing.T) {
	t.Parallel()

	const upstreamID = "proxy-assigned-7f3a"

	var capturedID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	req.Header.Set("X-Request-ID", upstreamID)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedID != upstreamID {
		t.Errorf("request ID = %q, want upstream %q", capturedID, upstreamID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != upstreamID {
		t.Errorf("X-Request-ID header = %q, want %q", got, upstreamID)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ids[GetRequestID(r.Context())] = true
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler(httptest.NewRecorder(), req)
	}

	if len(ids) != 5 {
		t.Errorf("got %d unique request IDs for 5 requests, want 5", len(ids))
	}
}

func TestGetRequestID_MissingFromContext(t *testing.T) {
	t.Parallel()

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID(empty ctx) = %q, want empty", got)
	}
}
