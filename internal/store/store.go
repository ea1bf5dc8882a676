// Package store persists settings, lifetime statistics and recent answer
// history in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for the drill's persisted state.
type Store struct {
	db *sql.DB
}

// Open creates a Store on the SQLite database at dsn, applying pragmas and
// the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			practice_mode TEXT NOT NULL,
			question_type TEXT NOT NULL,
			auto_next INTEGER NOT NULL,
			time_limit_secs INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS global_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			incorrect_answers INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			avg_response_ms REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS char_stats (
			char_key TEXT PRIMARY KEY,
			attempts INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			last_attempt TEXT NOT NULL,
			avg_response_ms REAL NOT NULL,
			fastest_ms INTEGER NOT NULL,
			slowest_ms INTEGER NOT NULL,
			total_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS answer_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question_id TEXT NOT NULL,
			user_answer TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			is_correct INTEGER NOT NULL,
			ts TEXT NOT NULL,
			char_key TEXT NOT NULL,
			hiragana TEXT NOT NULL,
			katakana TEXT NOT NULL,
			romaji TEXT NOT NULL,
			pronunciation TEXT NOT NULL,
			response_ms INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KANADRILL_DB environment variable
// 2. $XDG_DATA_HOME/kanadrill/kanadrill.db
// 3. ~/.local/share/kanadrill/kanadrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KANADRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kanadrill", "kanadrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
