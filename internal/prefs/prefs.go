// Package prefs persists the few user preferences that survive restarts:
// the color theme and a one-shot "open with this algorithm" handoff.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	keyTheme    = "theme"
	keySelected = "selected_algorithm"

	// DefaultTheme is returned when no theme was ever saved.
	DefaultTheme = "light"
)

// Store is a SQLite backed key/value table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" keeps everything
// in process.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prefs: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Theme returns the saved theme name, DefaultTheme when unset.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return DefaultTheme, nil
	}
	return v, nil
}

func (s *Store) SetTheme(ctx context.Context, name string) error {
	return s.set(ctx, keyTheme, name)
}

// SetSelected records the algorithm the next visualizer session should
// open with.
func (s *Store) SetSelected(ctx context.Context, algorithm string) error {
	return s.set(ctx, keySelected, algorithm)
}

// TakeSelected reads and clears the selected algorithm, so the choice is
// honoured exactly once.
func (s *Store) TakeSelected(ctx context.Context) (string, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = tx.Rollback() }()

	var v string
	err = tx.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, keySelected).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM prefs WHERE key = ?`, keySelected); err != nil {
		return "", false, err
	}
	if err := tx.Commit(); err != nil {
		return "", false, err
	}
	return v, true, nil
}
