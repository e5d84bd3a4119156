// Package store provides durable storage for evaluated checks.
//
// Every check the CLI evaluates is appended to a SQLite log, stamped with a
// monotonic seq and the run token it belongs to. The log is single-writer:
// reads order strictly by seq, so a recorded run replays in the exact order
// it was evaluated.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS checks (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_token   TEXT NOT NULL,
	expression  TEXT NOT NULL,
	relation    TEXT NOT NULL,
	result      INTEGER NOT NULL CHECK (result IN (0, 1)),
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_checks_run ON checks(run_token, seq);
`

// Check is one recorded evaluation.
type Check struct {
	Seq        int64     `json:"seq"`
	RunToken   string    `json:"run_token"`
	Expression string    `json:"expression"`
	Relation   string    `json:"relation"`
	Result     bool      `json:"result"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store wraps the SQLite check log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp recorded checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates or opens the check log at path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//
// Idempotent - safe to call against an existing log.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// SQLite allows one writer; keep a single connection to avoid
	// SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordCheck appends one evaluated check and returns its seq.
func (s *Store) RecordCheck(ctx context.Context, runToken, expression, relation string, result bool) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO checks (run_token, expression, relation, result, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, runToken, expression, relation, boolToInt(result), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("record check: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record check: %w", err)
	}
	return seq, nil
}

// ListChecks returns recorded checks in seq order. An empty runToken lists
// every run.
func (s *Store) ListChecks(ctx context.Context, runToken string) ([]Check, error) {
	query := `SELECT seq, run_token, expression, relation, result, recorded_at FROM checks ORDER BY seq`
	args := []any{}
	if runToken != "" {
		query = `SELECT seq, run_token, expression, relation, result, recorded_at FROM checks WHERE run_token = ? ORDER BY seq`
		args = append(args, runToken)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer rows.Close()

	var checks []Check
	for rows.Next() {
		var c Check
		var result int
		var recordedAt string
		if err := rows.Scan(&c.Seq, &c.RunToken, &c.Expression, &c.Relation, &result, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		c.Result = result != 0
		c.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return checks, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
