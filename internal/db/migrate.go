package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL UNIQUE,
		start_date         TEXT NOT NULL,
		deadline           TEXT NOT NULL,
		unit               TEXT NOT NULL
		                   CHECK(unit IN ('months','days','hours')),
		inefficiency       REAL NOT NULL DEFAULT 0,
		default_cost       REAL NOT NULL DEFAULT 0,
		margin             REAL NOT NULL DEFAULT 0,
		contingency        REAL NOT NULL DEFAULT 0,
		primary_currency   TEXT NOT NULL,
		secondary_currency TEXT NOT NULL DEFAULT '',
		backlog            TEXT NOT NULL DEFAULT '[]',
		resources          TEXT NOT NULL DEFAULT '[]',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
