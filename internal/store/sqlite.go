package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/amishk599/jobdesk/internal/model"

	_ "modernc.org/sqlite"
)

var (
	_ model.JobStore      = (*SQLiteStore)(nil)
	_ model.ModerationLog = (*SQLiteStore)(nil)
)

// SQLiteStore remembers which pending jobs moderators were alerted about and
// keeps a log of moderation actions taken through jobdesk.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// its tables exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS seen_jobs (
			job_id     INTEGER PRIMARY KEY,
			first_seen DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS moderation_log (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id     INTEGER NOT NULL,
			action     TEXT NOT NULL,
			source     TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// HasSeen returns true if the given job ID has already been recorded.
func (s *SQLiteStore) HasSeen(jobID int) (bool, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM seen_jobs WHERE job_id = ?", jobID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking seen status for %d: %w", jobID, err)
	}
	return true, nil
}

// MarkSeen records a job ID as seen. If it already exists the call is a no-op.
func (s *SQLiteStore) MarkSeen(jobID int) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO seen_jobs (job_id) VALUES (?)", jobID)
	if err != nil {
		return fmt.Errorf("marking job %d as seen: %w", jobID, err)
	}
	return nil
}

// IsEmpty returns true if the seen_jobs table has no entries.
func (s *SQLiteStore) IsEmpty() (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM seen_jobs").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking if store is empty: %w", err)
	}
	return count == 0, nil
}

// Record appends a moderation event to the log.
func (s *SQLiteStore) Record(e model.ModerationEvent) error {
	_, err := s.db.Exec(
		"INSERT INTO moderation_log (job_id, action, source, created_at) VALUES (?, ?, ?, ?)",
		e.JobID, string(e.Action), e.Source, e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s for job %d: %w", e.Action, e.JobID, err)
	}
	return nil
}

// History returns up to limit moderation events, newest first.
func (s *SQLiteStore) History(limit int) ([]model.ModerationEvent, error) {
	rows, err := s.db.Query(
		"SELECT job_id, action, source, created_at FROM moderation_log ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying moderation log: %w", err)
	}
	defer rows.Close()

	var events []model.ModerationEvent
	for rows.Next() {
		var (
			e      model.ModerationEvent
			action string
			at     string
		)
		if err := rows.Scan(&e.JobID, &action, &e.Source, &at); err != nil {
			return nil, fmt.Errorf("scanning moderation log: %w", err)
		}
		e.Action = model.Action(action)
		e.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parsing moderation time %q: %w", at, err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
