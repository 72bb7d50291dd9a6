package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteNotesStore implements NotesStore over the notes key-value table.
type SQLiteNotesStore struct {
	db *sql.DB
}

// NewSQLiteNotesStore creates a new SQLiteNotesStore.
func NewSQLiteNotesStore(db *sql.DB) *SQLiteNotesStore {
	return &SQLiteNotesStore{db: db}
}

// Get reads the value under key. A missing key reads as the empty string,
// matching a scratchpad that starts blank.
func (s *SQLiteNotesStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM notes WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading note %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteNotesStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO notes (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("saving note %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteNotesStore) Clear(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clearing note %q: %w", key, err)
	}
	return nil
}
