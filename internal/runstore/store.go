package runstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/j-nivekk/miscdataworks/internal/report"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users delete the ledger database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the ledger database was created by a different
// toolkit version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded scrape run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	InputFile  string
	Kind       string
	Languages  []string
	Mode       string
	Total      int
	Succeeded  int
	Failed     int
}

// Open initializes or connects to the ledger database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// RecordRun inserts one run and its failure rows in a single transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, failures []report.Failure) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, input_file, kind, languages, mode,
            total_attempts, succeeded, failed
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.InputFile,
		run.Kind,
		strings.Join(run.Languages, ","),
		run.Mode,
		run.Total,
		run.Succeeded,
		run.Failed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, failure := range failures {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_failures (run_id, identity, language, reason) VALUES (?, ?, ?, ?)`,
			run.ID, failure.Identity, failure.Language, failure.Reason,
		); err != nil {
			return fmt.Errorf("insert failure row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run tx: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, input_file, kind, languages, mode,
                total_attempts, succeeded, failed
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches one run and its failure ledger by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, []report.Failure, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, input_file, kind, languages, mode,
                total_attempts, succeeded, failed
         FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT identity, language, reason FROM run_failures WHERE run_id = ?`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list run failures: %w", err)
	}
	defer rows.Close()

	var failures []report.Failure
	for rows.Next() {
		var failure report.Failure
		if err := rows.Scan(&failure.Identity, &failure.Language, &failure.Reason); err != nil {
			return nil, nil, fmt.Errorf("scan failure row: %w", err)
		}
		failures = append(failures, failure)
	}
	return &run, failures, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var started, finished, languages string
	err := row.Scan(&run.ID, &started, &finished, &run.InputFile, &run.Kind,
		&languages, &run.Mode, &run.Total, &run.Succeeded, &run.Failed)
	if err != nil {
		return Run{}, err
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return Run{}, fmt.Errorf("parse finished_at: %w", err)
	}
	if languages != "" {
		run.Languages = strings.Split(languages, ",")
	}
	return run, nil
}
