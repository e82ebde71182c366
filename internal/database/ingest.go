// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dharohar-project/dharohar/internal/logging"
	"github.com/dharohar-project/dharohar/internal/metrics"
)

// LoadTourismStats replaces the tourism_stats table with the contents of
// the CSV file at path. Columns are matched by header name, so column
// order in the file does not matter. The delete and insert run in one
// transaction so concurrent readers never observe a half-loaded table.
// Returns the number of rows loaded.
func (db *DB) LoadTourismStats(ctx context.Context, path string) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	count, err := db.replaceTourismStats(ctx, path)
	metrics.RecordDBQuery("ingest", "tourism_stats", time.Since(start), err)
	if err != nil {
		return 0, err
	}

	logging.Ctx(ctx).Info().
		Str("path", path).
		Int("records", count).
		Dur("duration", time.Since(start)).
		Msg("Tourism statistics loaded")

	return count, nil
}

func (db *DB) replaceTourismStats(ctx context.Context, path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("tourism stats file: %w", err)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tourism_stats"); err != nil {
		return 0, fmt.Errorf("failed to clear tourism_stats: %w", err)
	}

	// DuckDB's CSV scanner does the parsing. Selecting columns by name
	// keeps the load independent of column order in the file, and the
	// casts surface type problems at load time instead of query time.
	insert := fmt.Sprintf(`
		INSERT INTO tourism_stats
		SELECT
			CAST(state AS VARCHAR),
			CAST(year AS INTEGER),
			CAST(domestic_tourists AS BIGINT),
			CAST(international_tourists AS BIGINT),
			CAST(cultural_site_visits AS BIGINT),
			CAST(revenue_millions_inr AS DOUBLE)
		FROM read_csv_auto('%s', header = true)`, escapeSQLString(path))

	if _, err := tx.ExecContext(ctx, insert); err != nil {
		return 0, fmt.Errorf("failed to load tourism stats from %s: %w", path, err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM tourism_stats").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count loaded rows: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("tourism stats file %s contains no data rows", path)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tourism stats load: %w", err)
	}

	return count, nil
}

// escapeSQLString doubles single quotes for safe literal interpolation.
// Only used for the CSV path, which cannot be a prepared parameter in a
// table function call.
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
