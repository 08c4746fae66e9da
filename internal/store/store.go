package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width millisecond ISO-8601. Fixed width keeps the
// stored strings lexicographically ordered by instant, which the list
// queries rely on.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Store provides durable CRUD for projects and folders over SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and runs migrations
func Open(path string) (*Store, error) {
	// Ensure directory exists (skipped for :memory: and bare names)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection also keeps
	// :memory: databases from splitting across connections.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		db:  sqlDB,
		now: time.Now,
	}

	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// timestamp returns the current time as a stored timestamp string
func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}
