package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one recorded invocation.
type Run struct {
	RunID        int64
	Command      string
	Input        string
	Output       string
	StartedAt    time.Time
	FinishedAt   sql.NullTime
	Status       string
	ItemCount    int
	ErrorType    sql.NullString
	ErrorMessage sql.NullString
}

// RunItem is one input file or corpus line belonging to a run.
type RunItem struct {
	Position int
	Name     string
	Value    string
}

// StartRun inserts a run in the "running" state and returns its run_id.
func (db *DB) StartRun(command, input, output string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (command, input, output)
		VALUES (?, ?, ?)
	`, command, input, output)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// AddRunItems stores the per-item detail of a run in one transaction.
func (db *DB) AddRunItems(runID int64, items []RunItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.Prepare(`
		INSERT INTO run_items (run_id, position, name, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare run item insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.Exec(runID, item.Position, item.Name, item.Value); err != nil {
			return fmt.Errorf("failed to insert run item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run items: %w", err)
	}
	return nil
}

// FinishRun marks a run as done. errorType and errorMessage are empty on
// success.
func (db *DB) FinishRun(runID int64, itemCount int, errorType, errorMessage string) error {
	status := "success"
	var errType, errMsg sql.NullString
	if errorType != "" || errorMessage != "" {
		status = "error"
		errType = sql.NullString{String: errorType, Valid: true}
		errMsg = sql.NullString{String: errorMessage, Valid: true}
	}

	res, err := db.Exec(`
		UPDATE runs
		SET finished_at = CURRENT_TIMESTAMP, status = ?, item_count = ?, error_type = ?, error_message = ?
		WHERE run_id = ?
	`, status, itemCount, errType, errMsg, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check run update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %d not found", runID)
	}
	return nil
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, command, input, COALESCE(output, ''), started_at, finished_at,
		       status, item_count, error_type, error_message
		FROM runs
		WHERE run_id = ?
	`, runID)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, command, input, COALESCE(output, ''), started_at, finished_at,
		       status, item_count, error_type, error_message
		FROM runs
		ORDER BY run_id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// GetRunItems returns a run's items in position order.
func (db *DB) GetRunItems(runID int64) ([]RunItem, error) {
	rows, err := db.Query(`
		SELECT position, name, COALESCE(value, '')
		FROM run_items
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run items: %w", err)
	}
	defer rows.Close()

	var items []RunItem
	for rows.Next() {
		var item RunItem
		if err := rows.Scan(&item.Position, &item.Name, &item.Value); err != nil {
			return nil, fmt.Errorf("failed to scan run item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	err := s.Scan(&r.RunID, &r.Command, &r.Input, &r.Output, &r.StartedAt, &r.FinishedAt,
		&r.Status, &r.ItemCount, &r.ErrorType, &r.ErrorMessage)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
