package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// ReportsTable creates the table match reports are stored in.
const ReportsTable = `CREATE TABLE IF NOT EXISTS match_reports (
	id           UUID PRIMARY KEY,
	user_id      BIGINT NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL,
	content      JSONB NOT NULL
)`

// EnsureReportsTable creates the match_reports table if it does not exist.
func (db *DB) EnsureReportsTable(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, ReportsTable); err != nil {
		return fmt.Errorf("failed to create match_reports table: %w", err)
	}
	return nil
}

// SaveReport stores a match report for a user, replacing any report with the same run id.
func (db *DB) SaveReport(ctx context.Context, userID int64, report *types.MatchReport) error {
	if report.RunID == uuid.Nil {
		return fmt.Errorf("report has no run id")
	}

	content, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_reports (id, user_id, generated_at, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET user_id = $2, generated_at = $3, content = $4`,
		report.RunID, userID, report.GeneratedAt, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", report.RunID, err)
	}
	return nil
}

// GetReport retrieves a stored report by run id. It returns nil if none exists.
func (db *DB) GetReport(ctx context.Context, runID uuid.UUID) (*types.MatchReport, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM match_reports WHERE id = $1`, runID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", runID, err)
	}

	var report types.MatchReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", runID, err)
	}
	return &report, nil
}
