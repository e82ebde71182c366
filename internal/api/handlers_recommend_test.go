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

func postRecommendations(t *testing.T, srv string, body string) (*http.Response, error) {
	t.Helper()
	return http.Post(srv+"/api/v1/recommendations", "application/json", jsonBody(body))
}

func TestRecommend_Defaults(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := postRecommendations(t, srv.URL, `{}`)
	if err != nil {
		t.Fatalf("recommend request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend status = %d, want 200", resp.StatusCode)
	}

	var result models.RecommendationResult
	decodeEnvelope(t, resp, &result)

	if result.TotalCandidates != 3 {
		t.Errorf("total_candidates = %d, want 3", result.TotalCandidates)
	}
	if result.Excluded != 0 {
		t.Errorf("excluded = %d, want 0 for permissive default", result.Excluded)
	}
	// Zero cost sensitivity ranks purely by popularity.
	if len(result.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(result.Recommendations))
	}
	if result.Recommendations[0].Site.ID != "taj-mahal" {
		t.Errorf("top site = %q, want taj-mahal", result.Recommendations[0].Site.ID)
	}
}

func TestRecommend_CostSensitivityReordersSites(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// Taj Mahal (popularity 95, high tier) scores 95 - 15*2 = 65.
	// Hampi (popularity 70, low tier) keeps 70 and overtakes it.
	resp, err := postRecommendations(t, srv.URL, `{"cost_sensitivity": 15}`)
	if err != nil {
		t.Fatalf("recommend request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend status = %d, want 200", resp.StatusCode)
	}

	var result models.RecommendationResult
	decodeEnvelope(t, resp, &result)
	if len(result.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(result.Recommendations))
	}
	if result.Recommendations[0].Site.ID != "hampi" {
		t.Errorf("top site = %q, want hampi", result.Recommendations[0].Site.ID)
	}
	if result.Recommendations[0].Score != 70 {
		t.Errorf("top score = %v, want 70", result.Recommendations[0].Score)
	}
}

func TestRecommend_ExplicitZeroCrowdCeiling(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// An explicit zero is a real constraint, not a missing field: every
	// fixture site has crowd_level > 0, so all are excluded and the
	// result is a valid empty ranking, not a fallback.
	resp, err := postRecommendations(t, srv.URL, `{"max_crowd_level": 0}`)
	if err != nil {
		t.Fatalf("recommend request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommend status = %d, want 200", resp.StatusCode)
	}

	var result models.RecommendationResult
	decodeEnvelope(t, resp, &result)
	if len(result.Recommendations) != 0 {
		t.Errorf("got %d recommendations under zero crowd ceiling, want 0", len(result.Recommendations))
	}
	if result.Excluded != 3 {
		t.Errorf("excluded = %d, want 3", result.Excluded)
	}
	if result.Fallback {
		t.Error("fallback = true, want false for a valid empty ranking")
	}
}

func TestRecommend_RegionFilter(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := postRecommendations(t, srv.URL, `{"regions": ["south"]}`)
	if err != nil {
		t.Fatalf("recommend request failed: %v", err)
	}
	var result models.RecommendationResult
	decodeEnvelope(t, resp, &result)

	if len(result.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(result.Recommendations))
	}
	if result.Recommendations[0].Site.ID != "hampi" {
		t.Errorf("site = %q, want hampi", result.Recommendations[0].Site.ID)
	}
	if result.Excluded != 2 {
		t.Errorf("excluded = %d, want 2", result.Excluded)
	}
}

func TestRecommend_InvalidPayloads(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"unknown field", `{"max_crowd": 50}`},
		{"negative sensitivity", `{"cost_sensitivity": -1}`},
		{"crowd out of range", `{"max_crowd_level": 250}`},
		{"unknown region", `{"regions": ["atlantis"]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := postRecommendations(t, srv.URL, tt.body)
			if err != nil {
				t.Fatalf("recommend request failed: %v", err)
			}
			decodeEnvelope(t, resp, nil)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestRecommend_UnknownProfile(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// The fixture has no profile store wired at all.
	resp, err := postRecommendations(t, srv.URL, `{"profile_id": "no-such-profile"}`)
	if err != nil {
		t.Fatalf("recommend request failed: %v", err)
	}
	decodeEnvelope(t, resp, nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 without profile store", resp.StatusCode)
	}
}

func TestPopular(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/recommendations/popular?limit=2")
	if err != nil {
		t.Fatalf("popular request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("popular status = %d, want 200", resp.StatusCode)
	}

	var recs []models.Recommendation
	decodeEnvelope(t, resp, &recs)
	if len(recs) != 2 {
		t.Fatalf("got %d results, want 2", len(recs))
	}
	if recs[0].Site.ID != "taj-mahal" || recs[1].Site.ID != "hampi" {
		t.Errorf("order = %q, %q; want taj-mahal, hampi", recs[0].Site.ID, recs[1].Site.ID)
	}
}
