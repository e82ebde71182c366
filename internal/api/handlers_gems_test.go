// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package api

import (
	"net/http"
	"testing"

	"github.com/dharohar-project/dharohar/internal/models"
)

func TestGems_List(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantTotal int
	}{
		{"all", "", 3},
		{"by state", "?state=assam", 1},
		{"by accessibility", "?accessibility=Moderate", 2},
		{"by max visitors", "?max_visitors=10000", 1},
		{"query search", "?q=island", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := http.Get(srv.URL + "/api/v1/gems" + tt.query)
			if err != nil {
				t.Fatalf("gems request failed: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("gems status = %d, want 200", resp.StatusCode)
			}
			var gems models.GemsResponse
			decodeEnvelope(t, resp, &gems)
			if gems.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", gems.Total, tt.wantTotal)
			}
		})
	}
}

func TestGemsNearby(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// Query point near Guwahati; Majuli Island is the closest fixture gem.
	resp, err := http.Get(srv.URL + "/api/v1/gems/nearby?lat=26.14&lon=91.73&limit=2")
	if err != nil {
		t.Fatalf("nearby request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("nearby status = %d, want 200", resp.StatusCode)
	}

	var nearby models.NearbyGemsResponse
	decodeEnvelope(t, resp, &nearby)
	if len(nearby.Gems) != 2 {
		t.Fatalf("got %d gems, want 2", len(nearby.Gems))
	}
	if nearby.Gems[0].Name != "Majuli Island" {
		t.Errorf("closest gem = %q, want Majuli Island", nearby.Gems[0].Name)
	}
	if nearby.Gems[0].DistanceKM <= 0 {
		t.Errorf("distance = %v, want > 0", nearby.Gems[0].DistanceKM)
	}
	if nearby.Gems[0].DistanceKM > nearby.Gems[1].DistanceKM {
		t.Error("gems are not ordered by ascending distance")
	}
}

func TestGemsNearby_InvalidParams(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, query := range []string{"", "?lat=26.14", "?lon=91.73", "?lat=abc&lon=91.73", "?lat=99&lon=91.73"} {
		resp, err := http.Get(srv.URL + "/api/v1/gems/nearby" + query)
		if err != nil {
			t.Fatalf("nearby request failed: %v", err)
		}
		decodeEnvelope(t, resp, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("nearby%s status = %d, want 400", query, resp.StatusCode)
		}
	}
}

func TestGemsMatch(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	body := `{"art_forms": ["Mask Making"], "accessibility": "Moderate", "crowd_tolerance": 3}`
	resp, err := http.Post(srv.URL+"/api/v1/gems/match", "application/json", jsonBody(body))
	if err != nil {
		t.Fatalf("match request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("match status = %d, want 200", resp.StatusCode)
	}

	var matches models.GemMatchesResponse
	decodeEnvelope(t, resp, &matches)
	if matches.Total == 0 {
		t.Fatal("no matches returned")
	}
	// Majuli Island matches both the art form and accessibility axes.
	if matches.Matches[0].Gem.Name != "Majuli Island" {
		t.Errorf("top match = %q, want Majuli Island", matches.Matches[0].Gem.Name)
	}
	if len(matches.Matches[0].Reasons) == 0 {
		t.Error("top match carries no reasons")
	}
}

func TestGemsMatch_InvalidTolerance(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/gems/match", "application/json",
		jsonBody(`{"crowd_tolerance": 42}`))
	if err != nil {
		t.Fatalf("match request failed: %v", err)
	}
	decodeEnvelope(t, resp, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("match status = %d, want 400", resp.StatusCode)
	}
}

func TestExportDatasets(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		dataset  string
		wantCode int
	}{
		{"sites", http.StatusOK},
		{"artforms", http.StatusOK},
		{"gems", http.StatusOK},
		{"initiatives", http.StatusOK},
		{"unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.dataset, func(t *testing.T) {
			t.Parallel()
			resp, err := http.Get(srv.URL + "/api/v1/export/" + tt.dataset + ".csv")
			if err != nil {
				t.Fatalf("export request failed: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("export status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				if ct := resp.Header.Get("Content-Type"); ct != "text/csv; charset=utf-8" {
					t.Errorf("content type = %q, want text/csv; charset=utf-8", ct)
				}
			}
		})
	}
}
