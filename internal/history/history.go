// Package history keeps a SQLite ledger of export runs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentic-research/faceplate/internal/bundle"
)

const schema = `
CREATE TABLE IF NOT EXISTS exports (
	id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	windows JSON NOT NULL,
	delivery TEXT NOT NULL,
	location TEXT,
	ok INTEGER NOT NULL,
	message TEXT,
	metrics JSON,
	started_at INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exports_started ON exports(started_at);
`

// Store is an export ledger. It implements bundle.Recorder.
type Store struct {
	db *sql.DB
}

var _ bundle.Recorder = (*Store)(nil)

// Open opens or creates the ledger at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Record appends run.
func (s *Store) Record(ctx context.Context, run bundle.Run) error {
	windows, err := json.Marshal(run.Windows)
	if err != nil {
		return err
	}
	metrics, err := json.Marshal(run.Metrics)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO exports (id, project, windows, delivery, location, ok, message, metrics, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Project, string(windows), string(run.Delivery), run.Location, run.OK, run.Message,
		string(metrics), run.StartedAt.UnixNano(), run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("record export %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) Recent(ctx context.Context, limit int) ([]bundle.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, windows, delivery, location, ok, message, metrics, started_at, duration_ms
		 FROM exports ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []bundle.Run
	for rows.Next() {
		var (
			run              bundle.Run
			windows, metrics string
			delivery         string
			location, msg    sql.NullString
			started, ms      int64
		)
		if err := rows.Scan(&run.ID, &run.Project, &windows, &delivery, &location, &run.OK, &msg,
			&metrics, &started, &ms); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(windows), &run.Windows); err != nil {
			return nil, fmt.Errorf("export %s windows: %w", run.ID, err)
		}
		if metrics != "" {
			if err := json.Unmarshal([]byte(metrics), &run.Metrics); err != nil {
				return nil, fmt.Errorf("export %s metrics: %w", run.ID, err)
			}
		}
		run.Delivery = bundle.Delivery(delivery)
		run.Location = location.String
		run.Message = msg.String
		run.StartedAt = time.Unix(0, started)
		run.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, run)
	}
	return out, rows.Err()
}
