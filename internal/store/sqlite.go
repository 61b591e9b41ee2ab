package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	store      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (store, key)
)`

// SQLite stores preferences in a SQLite database shared by all preference store names.
type SQLite struct {
	db   *sql.DB
	name string
}

// NewSQLite opens (creating if needed) the database at path for the store called name.
func NewSQLite(path, name string) (*SQLite, error) {
	if name == "" {
		return nil, errors.New("preference store name is required")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating preferences table: %w", err)
	}

	return &SQLite{db: db, name: name}, nil
}

func (s *SQLite) Get(key string) (string, error) {
	var value string

	err := s.db.QueryRow(
		`SELECT value FROM preferences WHERE store = ? AND key = ?`,
		s.name, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLite) Set(key, value string) error {
	if key == "" {
		return errors.New("key is required")
	}

	_, err := s.db.Exec(
		`INSERT INTO preferences (store, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(store, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}

	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
