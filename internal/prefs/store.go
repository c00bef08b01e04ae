// Package prefs persists view preferences and session-scoped scroll
// offsets in a local SQLite database. Preference keys survive restarts;
// the scroll table is wiped on open, giving it browser-session lifetime.
package prefs

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"game-library/internal/catalog"
)

// Well-known preference keys.
const (
	KeyCoverSize             = "coverSize"
	KeyTableColumnVisibility = "tableColumnVisibility"
	KeyVisibleLibraries      = "visibleLibraries"
)

// ViewModeKey namespaces the per-route view mode preference.
func ViewModeKey(route string) string {
	return "viewMode_" + route
}

// viewStateKey namespaces the persisted filter/sort selection per prefix.
func viewStateKey(prefix string) string {
	return "viewState_" + prefix
}

// Offset is a persisted scroll position. Left stays zero for 1-D lists
// and is only meaningful for 2-D grids.
type Offset struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

type Store struct {
	db *sqlx.DB
}

// Open creates the database if needed, runs migrations and clears the
// session-scoped scroll table.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// scroll offsets are session-scoped
	if _, err := db.Exec("DELETE FROM session_scroll"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to clear session scroll table: %w", err)
	}

	return &Store{db: db}, nil
}

func migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_scroll (
		key TEXT PRIMARY KEY,
		top REAL NOT NULL,
		left REAL NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recent_searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL UNIQUE,
		searched_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recent_collections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		collection_id TEXT NOT NULL UNIQUE,
		opened_at DATETIME NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Set stores a raw preference value under key.
func (s *Store) Set(key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// Get reads a preference. ok is false when the key was never written.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.db.Get(&value, "SELECT value FROM preferences WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal preference %q: %w", key, err)
	}
	return s.Set(key, string(data))
}

// GetJSON unmarshals the stored value into v. ok is false when the key
// was never written.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to parse preference %q: %w", key, err)
	}
	return true, nil
}

// SaveViewState implements catalog.StateStore.
func (s *Store) SaveViewState(prefix string, st catalog.ViewState) error {
	return s.SetJSON(viewStateKey(prefix), st)
}

// LoadViewState implements catalog.StateStore.
func (s *Store) LoadViewState(prefix string) (catalog.ViewState, bool, error) {
	var st catalog.ViewState
	ok, err := s.GetJSON(viewStateKey(prefix), &st)
	return st, ok, err
}

// SaveScroll writes the offset for a scroll key ("route" or
// "route:viewMode").
func (s *Store) SaveScroll(key string, off Offset) error {
	query := `
		INSERT INTO session_scroll (key, top, left, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET top = excluded.top, left = excluded.left, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, off.Top, off.Left, time.Now()); err != nil {
		return fmt.Errorf("failed to save scroll offset %q: %w", key, err)
	}
	return nil
}

// LoadScroll reads the offset for a scroll key. ok is false when nothing
// was persisted this session.
func (s *Store) LoadScroll(key string) (Offset, bool, error) {
	var row struct {
		Top  float64 `db:"top"`
		Left float64 `db:"left"`
	}
	err := s.db.Get(&row, "SELECT top, left FROM session_scroll WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return Offset{}, false, nil
	}
	if err != nil {
		return Offset{}, false, fmt.Errorf("failed to read scroll offset %q: %w", key, err)
	}
	return Offset{Top: row.Top, Left: row.Left}, true, nil
}

const recentLimit = 10

// AddRecentSearch records a search query, most recent first, deduplicated,
// capped at ten entries.
func (s *Store) AddRecentSearch(query string) error {
	if query == "" {
		return nil
	}

	upsert := `
		INSERT INTO recent_searches (query, searched_at) VALUES (?, ?)
		ON CONFLICT(query) DO UPDATE SET searched_at = excluded.searched_at
	`
	if _, err := s.db.Exec(upsert, query, time.Now()); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	trim := `
		DELETE FROM recent_searches WHERE id NOT IN (
			SELECT id FROM recent_searches ORDER BY searched_at DESC LIMIT ?
		)
	`
	if _, err := s.db.Exec(trim, recentLimit); err != nil {
		return fmt.Errorf("failed to trim recent searches: %w", err)
	}
	return nil
}

// RecentSearches returns the saved queries, most recent first.
func (s *Store) RecentSearches() ([]string, error) {
	var queries []string
	err := s.db.Select(&queries,
		"SELECT query FROM recent_searches ORDER BY searched_at DESC LIMIT ?", recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	return queries, nil
}

// AddRecentCollection records a visited collection id.
func (s *Store) AddRecentCollection(collectionID string) error {
	if collectionID == "" {
		return nil
	}

	upsert := `
		INSERT INTO recent_collections (collection_id, opened_at) VALUES (?, ?)
		ON CONFLICT(collection_id) DO UPDATE SET opened_at = excluded.opened_at
	`
	if _, err := s.db.Exec(upsert, collectionID, time.Now()); err != nil {
		return fmt.Errorf("failed to record collection visit: %w", err)
	}

	trim := `
		DELETE FROM recent_collections WHERE id NOT IN (
			SELECT id FROM recent_collections ORDER BY opened_at DESC LIMIT ?
		)
	`
	if _, err := s.db.Exec(trim, recentLimit); err != nil {
		return fmt.Errorf("failed to trim recent collections: %w", err)
	}
	return nil
}

// RecentCollections returns visited collection ids, most recent first.
func (s *Store) RecentCollections() ([]string, error) {
	var ids []string
	err := s.db.Select(&ids,
		"SELECT collection_id FROM recent_collections ORDER BY opened_at DESC LIMIT ?", recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent collections: %w", err)
	}
	return ids, nil
}
