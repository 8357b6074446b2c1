package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run represents one pipeline load recorded in the database.
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	SourceURL   string
	ZipPath     string
	CSVPath     string
	MemberCount int
	RecordCount int
	Status      string
}

// CreateRun inserts a pending run row and returns its id.
func (db *DB) CreateRun(sourceURL, zipPath, csvPath string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source_url, zip_path, csv_path, status)
		VALUES (?, ?, ?, 'pending')
	`, sourceURL, zipPath, csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun marks a run complete and stores its final counts.
func (db *DB) FinishRun(runID int64, memberCount, recordCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET member_count = ?, record_count = ?, status = 'complete'
		WHERE run_id = ?
	`, memberCount, recordCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// FailRun marks a run failed.
func (db *DB) FailRun(runID int64) error {
	_, err := db.Exec("UPDATE runs SET status = 'failed' WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRunByID fetches a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	run := &Run{}
	err := db.QueryRow(`
		SELECT run_id, created_at, source_url, zip_path, csv_path,
		       member_count, record_count, status
		FROM runs WHERE run_id = ?
	`, runID).Scan(
		&run.RunID, &run.CreatedAt, &run.SourceURL, &run.ZipPath,
		&run.CSVPath, &run.MemberCount, &run.RecordCount, &run.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, source_url, zip_path, csv_path,
		       member_count, record_count, status
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.RunID, &run.CreatedAt, &run.SourceURL, &run.ZipPath,
			&run.CSVPath, &run.MemberCount, &run.RecordCount, &run.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
