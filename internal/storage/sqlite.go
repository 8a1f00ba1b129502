// Package storage keeps the session run log in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Nothing is written to disk: the log lives as long as the Store.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database. Each connection to ":memory:"
// gets its own database, so the pool is limited to one connection.
const memoryDSN = ":memory:"

// Store manages the in-memory run log.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run: the play between two misses.
type RunEntry struct {
	ID        int64
	Session   string // Player session that played the run
	Variant   string // Registered game variant
	Score     int    // Score lost at the miss
	Bricks    int    // Bricks destroyed during the run
	Ticks     int    // Simulation tick at which the run ended
	CreatedAt time.Time
}

// Open creates an empty in-memory run log and its schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			bricks INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (session, variant, score, bricks, ticks) VALUES (?, ?, ?, ?, ?)",
		run.Session, run.Variant, run.Score, run.Bricks, run.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs for a variant, highest score first.
// Ties keep insertion order.
func (s *Store) TopRuns(variant string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, variant, score, bricks, ticks, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Session, &e.Variant, &e.Score, &e.Bricks, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest run score for a variant.
// Returns 0 if no runs exist.
func (s *Store) BestScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunCount returns how many runs a session has finished.
func (s *Store) RunCount(session string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE session = ?", session).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
