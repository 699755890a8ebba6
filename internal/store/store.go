// Package store keeps the local library in a SQLite database. It holds
// the series catalog, per-series episodes, chapters, characters and
// artwork, volume assignments for chapters, and the user's progress and
// ratings.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the library database. database/sql serializes access, so
// Store is safe for use from multiple goroutines.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the library database at path. Use ":memory:"
// for a throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initialize() error {
	schema := `
	PRAGMA journal_mode = WAL;
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS series (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		kind TEXT NOT NULL,
		synopsis TEXT DEFAULT '',
		year INTEGER DEFAULT 0,
		status TEXT DEFAULT '',
		episode_count INTEGER DEFAULT 0,
		chapter_count INTEGER DEFAULT 0,
		cover_url TEXT DEFAULT '',
		banner_url TEXT DEFAULT '',
		anilist_id INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_series_kind ON series(kind);

	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		series_id INTEGER NOT NULL REFERENCES series(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		number INTEGER NOT NULL,
		title TEXT DEFAULT '',
		UNIQUE(series_id, kind, number)
	);
	CREATE INDEX IF NOT EXISTS idx_items_series ON items(series_id, kind);

	CREATE TABLE IF NOT EXISTS characters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		series_id INTEGER NOT NULL REFERENCES series(id) ON DELETE CASCADE,
		ord INTEGER NOT NULL,
		name TEXT NOT NULL,
		role TEXT DEFAULT '',
		image_url TEXT DEFAULT '',
		UNIQUE(series_id, ord)
	);

	CREATE TABLE IF NOT EXISTS artwork (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		url TEXT NOT NULL,
		is_primary INTEGER DEFAULT 0,
		votes INTEGER,
		width INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_artwork_item ON artwork(item_id);

	CREATE TABLE IF NOT EXISTS volumes (
		series_id INTEGER NOT NULL REFERENCES series(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		chapter TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_volumes_series ON volumes(series_id);

	CREATE TABLE IF NOT EXISTS progress (
		series_id INTEGER NOT NULL REFERENCES series(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		number INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY(series_id, kind)
	);

	CREATE TABLE IF NOT EXISTS ratings (
		series_id INTEGER PRIMARY KEY REFERENCES series(id) ON DELETE CASCADE,
		score INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
