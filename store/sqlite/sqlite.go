/*
Package sqlite provides a SQLite-backed implementation of lease.RunStore.

PURPOSE:
  Persists computation runs: the input parameters and the full Result
  (schedule, journal, deposit unwind) as JSON documents, with the fields
  the listing view needs denormalized into their own columns so List
  never parses the blobs.

RUNS ARE IMMUTABLE:
  Rows in the runs table are inserted once and never updated. A duplicate
  ID is rejected with lease.ErrDuplicateRun rather than overwritten.

KEY TABLE:
  runs: one row per saved computation
    - params_json / result_json: full documents, decimal values as strings
    - present_value / term_years / payment_frequency: listing columns
    - created_at: RFC3339, drives Latest() and List() ordering

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  runs, err := sqlite.New("./data/leases.db")
  if err != nil {
      log.Fatal(err)
  }
  defer runs.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - lease/store.go: RunStore interface definition
  - lease/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/meridian/lease-engine/lease"
)

// Store implements lease.RunStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ lease.RunStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Runs (insert-only: one row per saved computation)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		params_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		present_value TEXT NOT NULL,
		term_years INTEGER NOT NULL,
		payment_frequency TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Listing and Latest() both walk newest-first
	CREATE INDEX IF NOT EXISTS idx_runs_created_at
		ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RUN STORE (lease.RunStore interface)
// =============================================================================

// Save inserts a run. Returns lease.ErrDuplicateRun if the ID exists.
func (s *Store) Save(ctx context.Context, run lease.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paramsJSON, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	query := `
		INSERT INTO runs
		(id, name, params_json, result_json, present_value, term_years, payment_frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		run.ID,
		run.Name,
		string(paramsJSON),
		string(resultJSON),
		run.Result.PresentValue.StringFixed(),
		run.Params.TermYears,
		string(run.Params.PaymentFrequency),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)

	if err != nil {
		if isUniqueConstraintError(err) {
			return lease.ErrDuplicateRun
		}
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id string) (lease.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, params_json, result_json, created_at FROM runs WHERE id = ?",
		id,
	)
	return scanRun(row)
}

// Latest returns the most recently created run.
func (s *Store) Latest(ctx context.Context) (lease.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, params_json, result_json, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1",
	)
	return scanRun(row)
}

// List returns summaries of all runs, newest first. Reads only the
// denormalized columns, never the JSON documents.
func (s *Store) List(ctx context.Context) ([]lease.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, name, present_value, term_years, payment_frequency, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var summaries []lease.RunSummary
	for rows.Next() {
		var (
			sum          lease.RunSummary
			presentValue string
			frequency    string
			createdAt    string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &presentValue, &sum.TermYears, &frequency, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run summary: %w", err)
		}
		sum.PresentValue = lease.MustParseMoney(presentValue)
		sum.PaymentFrequency = lease.PaymentFrequency(frequency)
		sum.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Delete removes a run by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return lease.ErrRunNotFound
	}
	return nil
}

// Reset clears all runs (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	return err
}

// Helper functions

func scanRun(row *sql.Row) (lease.Run, error) {
	var (
		run        lease.Run
		paramsJSON string
		resultJSON string
		createdAt  string
	)

	err := row.Scan(&run.ID, &run.Name, &paramsJSON, &resultJSON, &createdAt)
	if err == sql.ErrNoRows {
		return lease.Run{}, lease.ErrRunNotFound
	}
	if err != nil {
		return lease.Run{}, fmt.Errorf("failed to scan run: %w", err)
	}

	if err := json.Unmarshal([]byte(paramsJSON), &run.Params); err != nil {
		return lease.Run{}, fmt.Errorf("failed to decode params: %w", err)
	}
	run.Result = &lease.Result{}
	if err := json.Unmarshal([]byte(resultJSON), run.Result); err != nil {
		return lease.Run{}, fmt.Errorf("failed to decode result: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return run, nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key"))
}
