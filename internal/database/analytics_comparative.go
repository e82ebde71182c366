// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dharohar-project/dharohar/internal/metrics"
	"github.com/dharohar-project/dharohar/internal/models"
)

// metricColumn maps an API metric name to its table column. The metric
// names deliberately match the column names, so this is an allowlist
// check guarding the SQL interpolation below.
func metricColumn(metric string) (string, error) {
	if !models.IsValidMetric(metric) {
		return "", fmt.Errorf("unknown metric %q, valid metrics: %s",
			metric, strings.Join(models.ValidMetrics, ", "))
	}
	return metric, nil
}

// CompareStates ranks states by a single metric in a single year.
// An empty states list compares all states in the dataset.
func (db *DB) CompareStates(ctx context.Context, year int, metric string, states []string) (*models.ComparisonResponse, error) {
	column, err := metricColumn(metric)
	if err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, args := buildTrendsWhereClause(TrendsFilter{States: states})
	args = append([]interface{}{year}, args...)
	query := fmt.Sprintf(`
		SELECT state, CAST(%s AS DOUBLE) AS value
		FROM tourism_stats
		WHERE year = ?%s
		ORDER BY value DESC, state`, column, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("compare_states", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query state comparison: %w", err)
	}
	defer func() { _ = rows.Close() }()

	values := []models.StateMetricValue{}
	for rows.Next() {
		var v models.StateMetricValue
		if err := rows.Scan(&v.State, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan comparison row: %w", err)
		}
		v.Rank = len(values) + 1
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparison rows: %w", err)
	}

	return &models.ComparisonResponse{Year: year, Metric: metric, States: values}, nil
}

// GetGrowth computes the percentage change of a metric for each state
// between two years. States missing either year are skipped. Results
// are ordered by growth descending.
func (db *DB) GetGrowth(ctx context.Context, metric string, startYear, endYear int, states []string) (*models.GrowthResponse, error) {
	column, err := metricColumn(metric)
	if err != nil {
		return nil, err
	}
	if startYear >= endYear {
		return nil, fmt.Errorf("start year %d must precede end year %d", startYear, endYear)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, stateArgs := buildTrendsWhereClause(TrendsFilter{States: states})
	query := fmt.Sprintf(`
		SELECT
			state,
			CAST(SUM(CASE WHEN year = ? THEN %s ELSE 0 END) AS DOUBLE) AS start_value,
			CAST(SUM(CASE WHEN year = ? THEN %s ELSE 0 END) AS DOUBLE) AS end_value,
			COUNT(*) AS year_count
		FROM tourism_stats
		WHERE year IN (?, ?)%s
		GROUP BY state`, column, column, whereClause)

	args := append([]interface{}{startYear, endYear, startYear, endYear}, stateArgs...)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("growth", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := []models.GrowthStat{}
	for rows.Next() {
		var g models.GrowthStat
		var yearCount int
		if err := rows.Scan(&g.State, &g.StartValue, &g.EndValue, &yearCount); err != nil {
			return nil, fmt.Errorf("failed to scan growth row: %w", err)
		}
		if yearCount < 2 {
			continue
		}
		if g.StartValue != 0 {
			g.GrowthPercent = round2((g.EndValue - g.StartValue) / g.StartValue * 100)
		}
		stats = append(stats, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate growth rows: %w", err)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].GrowthPercent != stats[j].GrowthPercent {
			return stats[i].GrowthPercent > stats[j].GrowthPercent
		}
		return stats[i].State < stats[j].State
	})

	return &models.GrowthResponse{
		Metric:    metric,
		StartYear: startYear,
		EndYear:   endYear,
		States:    stats,
	}, nil
}

// GetShares computes each state's share of the national total for a
// metric in a given year, ordered by share descending.
func (db *DB) GetShares(ctx context.Context, year int, metric string) (*models.SharesResponse, error) {
	column, err := metricColumn(metric)
	if err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT state, CAST(%s AS DOUBLE) AS value
		FROM tourism_stats
		WHERE year = ?
		ORDER BY value DESC, state`, column)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, year)
	metrics.RecordDBQuery("shares", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer func() { _ = rows.Close() }()

	shares := []models.ShareStat{}
	var total float64
	for rows.Next() {
		var s models.ShareStat
		if err := rows.Scan(&s.State, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan share row: %w", err)
		}
		total += s.Value
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share rows: %w", err)
	}

	if total > 0 {
		for i := range shares {
			shares[i].SharePercent = round2(shares[i].Value / total * 100)
		}
	}

	return &models.SharesResponse{
		Year:   year,
		Metric: metric,
		Total:  round2(total),
		States: shares,
	}, nil
}

// GetVisitorShares splits each year's tourist volume into domestic and
// international portions with percentage shares, ordered by year.
func (db *DB) GetVisitorShares(ctx context.Context, filter TrendsFilter) (*models.VisitorSharesResponse, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	whereClause, args := buildTrendsWhereClause(filter)
	query := fmt.Sprintf(`
		SELECT
			year,
			SUM(domestic_tourists),
			SUM(international_tourists)
		FROM tourism_stats
		WHERE 1=1%s
		GROUP BY year
		ORDER BY year`, whereClause)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("visitor_shares", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitor shares: %w", err)
	}
	defer func() { _ = rows.Close() }()

	years := []models.VisitorShare{}
	for rows.Next() {
		var v models.VisitorShare
		if err := rows.Scan(&v.Year, &v.Domestic, &v.International); err != nil {
			return nil, fmt.Errorf("failed to scan visitor share row: %w", err)
		}
		if total := v.Domestic + v.International; total > 0 {
			v.DomesticPct = round2(float64(v.Domestic) / float64(total) * 100)
			v.InternationalPct = round2(float64(v.International) / float64(total) * 100)
		}
		years = append(years, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visitor share rows: %w", err)
	}

	return &models.VisitorSharesResponse{Years: years}, nil
}

// GetRevenuePerVisit computes each state's revenue per cultural site visit
// in INR for a given year, ordered by yield descending. States that
// recorded no visits are skipped.
func (db *DB) GetRevenuePerVisit(ctx context.Context, year int) (*models.RevenuePerVisitResponse, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			state,
			cultural_site_visits,
			revenue_millions_inr,
			revenue_millions_inr * 1000000 / cultural_site_visits AS per_visit
		FROM tourism_stats
		WHERE year = ? AND cultural_site_visits > 0
		ORDER BY per_visit DESC, state`, year)
	metrics.RecordDBQuery("revenue_per_visit", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue per visit: %w", err)
	}
	defer func() { _ = rows.Close() }()

	states := []models.RevenueEfficiency{}
	for rows.Next() {
		var r models.RevenueEfficiency
		var perVisit float64
		if err := rows.Scan(&r.State, &r.CulturalSiteVisits, &r.RevenueMillionsINR, &perVisit); err != nil {
			return nil, fmt.Errorf("failed to scan revenue per visit row: %w", err)
		}
		r.RevenuePerVisitINR = round2(perVisit)
		states = append(states, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue per visit rows: %w", err)
	}

	return &models.RevenuePerVisitResponse{Year: year, States: states}, nil
}

// GetSummary computes headline figures across the whole dataset: totals,
// the peak and trough years for cultural site visits, the top state, and
// the most recent year-over-year growth.
func (db *DB) GetSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	summary, err := db.buildSummary(ctx)
	metrics.RecordDBQuery("summary", "tourism_stats", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (db *DB) buildSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var (
		minYear, maxYear         sql.NullInt64
		stateCount               int
		totalDomestic, totalIntl sql.NullInt64
		totalVisits              sql.NullInt64
		totalRevenue             sql.NullFloat64
	)
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			MIN(year),
			MAX(year),
			COUNT(DISTINCT state),
			SUM(domestic_tourists),
			SUM(international_tourists),
			SUM(cultural_site_visits),
			SUM(revenue_millions_inr)
		FROM tourism_stats`).Scan(
		&minYear, &maxYear, &stateCount, &totalDomestic, &totalIntl, &totalVisits, &totalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary totals: %w", err)
	}
	if !minYear.Valid || !maxYear.Valid {
		return nil, fmt.Errorf("tourism_stats table is empty")
	}

	summary := &models.AnalyticsSummary{
		StartYear:            int(minYear.Int64),
		EndYear:              int(maxYear.Int64),
		StateCount:           stateCount,
		TotalDomestic:        totalDomestic.Int64,
		TotalInternational:   totalIntl.Int64,
		TotalCulturalVisits:  totalVisits.Int64,
		TotalRevenueMillions: round2(totalRevenue.Float64),
	}
	if summary.TotalCulturalVisits > 0 {
		summary.RevenuePerVisitINR = round2(totalRevenue.Float64 * 1e6 / float64(summary.TotalCulturalVisits))
	}

	if err := db.summarizeYearlyVisits(ctx, summary); err != nil {
		return nil, err
	}

	err = db.conn.QueryRowContext(ctx, `
		SELECT state, SUM(cultural_site_visits) AS visits
		FROM tourism_stats
		GROUP BY state
		ORDER BY visits DESC, state
		LIMIT 1`).Scan(&summary.TopStateByVisits, &summary.TopStateVisits)
	if err != nil {
		return nil, fmt.Errorf("failed to query top state: %w", err)
	}

	return summary, nil
}

// summarizeYearlyVisits walks the national yearly visit totals to find
// the peak and trough years and the latest year-over-year change.
func (db *DB) summarizeYearlyVisits(ctx context.Context, summary *models.AnalyticsSummary) error {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT year, SUM(cultural_site_visits) AS visits
		FROM tourism_stats
		GROUP BY year
		ORDER BY year`)
	if err != nil {
		return fmt.Errorf("failed to query yearly visits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var prevVisits int64
	var haveRow bool
	for rows.Next() {
		var year int
		var visits int64
		if err := rows.Scan(&year, &visits); err != nil {
			return fmt.Errorf("failed to scan yearly visits: %w", err)
		}

		if !haveRow || visits > summary.PeakYearVisits {
			summary.PeakYear = year
			summary.PeakYearVisits = visits
		}
		if !haveRow || visits < summary.TroughYearVisits {
			summary.TroughYear = year
			summary.TroughYearVisits = visits
		}

		if haveRow && prevVisits != 0 {
			summary.LatestYearGrowthPct = round2(float64(visits-prevVisits) / float64(prevVisits) * 100)
		}
		summary.LatestYearTotalVisits = visits
		prevVisits = visits
		haveRow = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate yearly visits: %w", err)
	}

	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
