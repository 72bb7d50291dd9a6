package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InMemory is the DSN for a private throwaway store. Tests use it so every
// case starts from a fresh bootstrap.
const InMemory = ":memory:"

// Connection pragmas applied before the schema bootstrap. WAL lets a report
// export read the file while a grid editor holds it open, and the busy
// timeout absorbs overlapping one-shot CLI invocations instead of surfacing
// SQLITE_BUSY to the user.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
}

// Open readies the plan store at path. The parent directory is created on
// first run and the plans and notes tables are bootstrapped, so callers
// never see a half-initialized file.
func Open(path string) (*sql.DB, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if path == InMemory {
		// Each pooled connection to :memory: would get its own empty
		// database, so pin the pool to a single connection.
		conn.SetMaxOpenConns(1)
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}
	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}
	return conn, nil
}
