// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dharohar-project/dharohar/internal/metrics"
	"github.com/dharohar-project/dharohar/internal/models"
)

// TrendsFilter narrows trend queries by year range and state list.
// Zero values mean "no bound".
type TrendsFilter struct {
	StartYear int
	EndYear   int
	States    []string
}

// buildTrendsWhereClause constructs WHERE conditions from a filter.
// Returns the clause fragment and ordered query parameters.
func buildTrendsWhereClause(filter TrendsFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.StartYear > 0 {
		conditions = append(conditions, " AND year >= ?")
		args = append(args, filter.StartYear)
	}
	if filter.EndYear > 0 {
		conditions = append(conditions, " AND year <= ?")
		args = append(args, filter.EndYear)
	}
	if len(filter.States) > 0 {
		placeholders := make([]string, len(filter.States))
		for i, state := range filter.States {
			placeholders[i] = "?"
			args = append(args, state)
		}
		conditions = append(conditions, fmt.Sprintf(" AND state IN (%s)", strings.Join(placeholders, ",")))
	}

	return strings.Join(conditions, ""), args
}

// fillVisitsGrowth computes year-over-year change in cultural site visits
// across an ordered series. The first point reports 0.
func fillVisitsGrowth(trends []models.YearlyTrend) {
	for i := 1; i < len(trends); i++ {
		prev := trends[i-1].CulturalSiteVisits
		if prev != 0 {
			change := float64(trends[i].CulturalSiteVisits-prev) / float64(prev) * 100
			trends[i].VisitsGrowthPct = round2(change)
		}
	}
}

// GetNationalTrends returns yearly national totals for every metric,
// summed across all states that match the filter.
func (db *DB) GetNationalTrends(ctx context.Context, filter TrendsFilter) (*models.NationalTrendsResponse, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, args := buildTrendsWhereClause(filter)
	query := fmt.Sprintf(`
		SELECT
			year,
			SUM(domestic_tourists),
			SUM(international_tourists),
			SUM(cultural_site_visits),
			SUM(revenue_millions_inr)
		FROM tourism_stats
		WHERE 1=1%s
		GROUP BY year
		ORDER BY year`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("national_trends", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query national trends: %w", err)
	}
	defer func() { _ = rows.Close() }()

	trends := []models.YearlyTrend{}
	for rows.Next() {
		var t models.YearlyTrend
		if err := rows.Scan(&t.Year, &t.DomesticTourists, &t.InternationalTourists,
			&t.CulturalSiteVisits, &t.RevenueMillionsINR); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trend rows: %w", err)
	}
	fillVisitsGrowth(trends)

	resp := &models.NationalTrendsResponse{Trends: trends}
	if len(trends) > 0 {
		resp.StartYear = trends[0].Year
		resp.EndYear = trends[len(trends)-1].Year
	}
	return resp, nil
}

// GetStateTrends returns the yearly series for each state matching the
// filter. States come back in alphabetical order with points ordered
// by year.
func (db *DB) GetStateTrends(ctx context.Context, filter TrendsFilter) (*models.StateTrendsResponse, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, args := buildTrendsWhereClause(filter)
	query := fmt.Sprintf(`
		SELECT
			state,
			year,
			domestic_tourists,
			international_tourists,
			cultural_site_visits,
			revenue_millions_inr
		FROM tourism_stats
		WHERE 1=1%s
		ORDER BY state, year`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("state_trends", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query state trends: %w", err)
	}
	defer func() { _ = rows.Close() }()

	states := []models.StateTrend{}
	for rows.Next() {
		var state string
		var t models.YearlyTrend
		if err := rows.Scan(&state, &t.Year, &t.DomesticTourists, &t.InternationalTourists,
			&t.CulturalSiteVisits, &t.RevenueMillionsINR); err != nil {
			return nil, fmt.Errorf("failed to scan state trend row: %w", err)
		}
		if n := len(states); n == 0 || states[n-1].State != state {
			states = append(states, models.StateTrend{State: state})
		}
		last := &states[len(states)-1]
		last.Points = append(last.Points, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate state trend rows: %w", err)
	}
	for i := range states {
		fillVisitsGrowth(states[i].Points)
	}

	return &models.StateTrendsResponse{States: states}, nil
}

// GetRecords returns raw tourism rows matching the filter, ordered by
// state then year. Used by the CSV export endpoint.
func (db *DB) GetRecords(ctx context.Context, filter TrendsFilter) ([]models.TourismRecord, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, args := buildTrendsWhereClause(filter)
	query := fmt.Sprintf(`
		SELECT
			year,
			state,
			domestic_tourists,
			international_tourists,
			cultural_site_visits,
			revenue_millions_inr
		FROM tourism_stats
		WHERE 1=1%s
		ORDER BY state, year`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("records", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query tourism records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []models.TourismRecord{}
	for rows.Next() {
		var r models.TourismRecord
		if err := rows.Scan(&r.Year, &r.State, &r.DomesticTourists, &r.InternationalTourists,
			&r.CulturalSiteVisits, &r.RevenueMillionsINR); err != nil {
			return nil, fmt.Errorf("failed to scan tourism record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tourism records: %w", err)
	}

	return records, nil
}

// YearRange returns the minimum and maximum years present in the table.
func (db *DB) YearRange(ctx context.Context) (int, int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var minYear, maxYear sql.NullInt64
	err := db.conn.QueryRowContext(ctx,
		"SELECT MIN(year), MAX(year) FROM tourism_stats").Scan(&minYear, &maxYear)
	metrics.RecordDBQuery("year_range", "tourism_stats", time.Since(start), err)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query year range: %w", err)
	}
	if !minYear.Valid || !maxYear.Valid {
		return 0, 0, fmt.Errorf("tourism_stats table is empty")
	}
	return int(minYear.Int64), int(maxYear.Int64), nil
}

// ListStates returns the distinct states present in the table in
// alphabetical order.
func (db *DB) ListStates(ctx context.Context) ([]string, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		"SELECT DISTINCT state FROM tourism_stats ORDER BY state")
	metrics.RecordDBQuery("list_states", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	states := []string{}
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}

	return states, nil
}
