package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS documents (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_expires ON documents(expires_at);

CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	organization TEXT NOT NULL,
	form         TEXT NOT NULL,
	filings      INTEGER NOT NULL DEFAULT 0,
	status       TEXT NOT NULL,
	started_at   DATETIME NOT NULL,
	finished_at  DATETIME
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// SQLite is the SQLite-backed Store implementation.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open sqlite")
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %q", p)
		}
	}

	return &SQLite{db: db}, nil
}

// Migrate creates the schema if it does not exist.
func (s *SQLite) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "store: migrate")
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return eris.Wrap(err, "store: close")
	}
	return nil
}

// GetDocument returns the cached body for url, or nil if absent or expired.
func (s *SQLite) GetDocument(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE url = ? AND expires_at > ?`,
		url, time.Now().UTC(),
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: get document")
	}
	return body, nil
}

// PutDocument stores body for url with the given TTL, replacing any
// previous entry.
func (s *SQLite) PutDocument(ctx context.Context, url string, body []byte, ttl time.Duration) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (url, body, fetched_at, expires_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body,
		 fetched_at = excluded.fetched_at, expires_at = excluded.expires_at`,
		url, body, now, now.Add(ttl),
	)
	if err != nil {
		return eris.Wrap(err, "store: put document")
	}
	return nil
}

// DeleteExpiredDocuments removes cache entries past their expiry and
// returns how many were deleted.
func (s *SQLite) DeleteExpiredDocuments(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		return 0, eris.Wrap(err, "store: delete expired documents")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "store: rows affected")
	}
	return n, nil
}

// ClearDocuments empties the document cache and returns how many entries
// were removed.
func (s *SQLite) ClearDocuments(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents`)
	if err != nil {
		return 0, eris.Wrap(err, "store: clear documents")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "store: rows affected")
	}
	return n, nil
}

// Stats reports the current size of the document cache.
func (s *SQLite) Stats(ctx context.Context) (CacheStats, error) {
	var stats CacheStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(LENGTH(body)), 0) FROM documents`,
	).Scan(&stats.Documents, &stats.Bytes)
	if err != nil {
		return CacheStats{}, eris.Wrap(err, "store: stats")
	}
	return stats, nil
}

// StartRun records the beginning of a processing run and returns it.
func (s *SQLite) StartRun(ctx context.Context, organization, form string) (*Run, error) {
	run := &Run{
		ID:           uuid.New().String(),
		Organization: organization,
		Form:         form,
		Status:       RunStatusRunning,
		StartedAt:    time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, organization, form, filings, status, started_at)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		run.ID, run.Organization, run.Form, run.Status, run.StartedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "store: start run")
	}
	return run, nil
}

// FinishRun marks a run complete or failed with its filing count.
func (s *SQLite) FinishRun(ctx context.Context, id string, filings int, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET filings = ?, status = ?, finished_at = ? WHERE id = ?`,
		filings, status, time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrap(err, "store: finish run")
	}
	return checkRowsAffected(res, "run", id)
}

// RecentRuns returns the most recent runs, newest first.
func (s *SQLite) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, organization, form, filings, status, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "store: recent runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.Organization, &r.Form, &r.Filings,
			&r.Status, &r.StartedAt, &finished); err != nil {
			return nil, eris.Wrap(err, "store: scan run")
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate runs")
	}
	return runs, nil
}

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "store: rows affected")
	}
	if n == 0 {
		return eris.Errorf("store: %s %s not found", entity, id)
	}
	return nil
}
