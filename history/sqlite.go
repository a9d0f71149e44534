package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// storageKey namespaces the history blob inside the shared engine database
const storageKey = "breakthrough.history"

const kvSchema = `
CREATE TABLE IF NOT EXISTS engine_state (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists the history list as a JSON blob under a single key
// Mirrors the single-storage-key layout the log's consumers expect
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the engine database at path
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads and decodes the stored entry list
// A missing row is an empty history, not an error
func (s *SQLiteStore) Load() ([]Entry, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM engine_state WHERE key = ?`, storageKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// Save replaces the stored entry list
func (s *SQLiteStore) Save(entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO engine_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Close releases the underlying database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
