// Package storage provides SQLite-based persistence for the high score and
// the selected skin. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Setting keys. Values are stored as text and parsed on read.
const (
	keyHighScore = "high_score"
	keySkin      = "skin"
)

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the persisted best score.
// Returns 0 if no score has been recorded or the stored value is malformed.
func (s *Store) HighScore() (int, error) {
	value, err := s.get(keyHighScore)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}

	score, err := strconv.Atoi(value)
	if err != nil {
		// A garbled value reads as no score rather than an error
		return 0, nil
	}
	return score, nil
}

// SaveHighScore persists the best score, replacing any previous value.
func (s *Store) SaveHighScore(score int) error {
	return s.set(keyHighScore, strconv.Itoa(score))
}

// Skin returns the persisted skin identifier.
// Returns empty string if none has been saved.
func (s *Store) Skin() (string, error) {
	return s.get(keySkin)
}

// SaveSkin persists the selected skin identifier.
func (s *Store) SaveSkin(id string) error {
	return s.set(keySkin, id)
}

// Clear deletes all persisted settings.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM settings")
	if err != nil {
		return fmt.Errorf("storage: cannot clear settings: %w", err)
	}
	return nil
}

// get reads one setting value, returning empty string when the key is absent.
func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, nil
}

// set writes one setting value, inserting or updating as needed.
func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}
