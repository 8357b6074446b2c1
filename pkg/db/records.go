package db

import (
	"fmt"

	"namefreq/models"
	"namefreq/pkg/analytics"
)

// InsertRecords bulk-loads rows for a run inside one transaction.
func (db *DB) InsertRecords(runID int64, rows []models.Row) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (run_id, year, name, gender, count)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(runID, r.Year, r.Name, r.Gender, r.Count); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// CountRecords returns the number of stored records.
func (db *DB) CountRecords() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// TotalsByYear sums counts per year, ascending by year. gender filters
// to M or F; empty string combines both.
func (db *DB) TotalsByYear(gender string) ([]analytics.YearTotal, error) {
	query := "SELECT year, SUM(count) FROM records"
	var args []interface{}
	if gender != "" {
		query += " WHERE gender = ?"
		args = append(args, gender)
	}
	query += " GROUP BY year ORDER BY year"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals by year: %w", err)
	}
	defer rows.Close()

	var totals []analytics.YearTotal
	for rows.Next() {
		var t analytics.YearTotal
		if err := rows.Scan(&t.Year, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan year total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TopNames returns the n highest-total names for a gender, descending
// by summed count, ties broken alphabetically.
func (db *DB) TopNames(gender string, n int) ([]analytics.NameTotal, error) {
	query := `
		SELECT name, SUM(count) AS total FROM records
		WHERE gender = ?
		GROUP BY name
		ORDER BY total DESC, name ASC
		LIMIT ?
	`
	rows, err := db.Query(query, gender, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top names: %w", err)
	}
	defer rows.Close()

	var totals []analytics.NameTotal
	for rows.Next() {
		var t analytics.NameTotal
		if err := rows.Scan(&t.Name, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan name total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// GenderNeutral returns up to n names whose summed counts reach floor
// on both genders, ordered by combined total descending.
func (db *DB) GenderNeutral(floor, n int) ([]analytics.NeutralName, error) {
	query := `
		SELECT name,
		       SUM(CASE WHEN gender = 'M' THEN count ELSE 0 END) AS male,
		       SUM(CASE WHEN gender = 'F' THEN count ELSE 0 END) AS female
		FROM records
		GROUP BY name
		HAVING male >= ? AND female >= ?
		ORDER BY male + female DESC, name ASC
		LIMIT ?
	`
	rows, err := db.Query(query, floor, floor, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query gender-neutral names: %w", err)
	}
	defer rows.Close()

	var neutral []analytics.NeutralName
	for rows.Next() {
		var nn analytics.NeutralName
		if err := rows.Scan(&nn.Name, &nn.Male, &nn.Female); err != nil {
			return nil, fmt.Errorf("failed to scan neutral name: %w", err)
		}
		neutral = append(neutral, nn)
	}
	return neutral, rows.Err()
}

// UniqueNames counts distinct names, optionally filtered to a gender.
func (db *DB) UniqueNames(gender string) (int, error) {
	query := "SELECT COUNT(DISTINCT name) FROM records"
	var args []interface{}
	if gender != "" {
		query += " WHERE gender = ?"
		args = append(args, gender)
	}

	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unique names: %w", err)
	}
	return n, nil
}
