package store

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/ghsearch/internal/application"
	"github.com/inovacc/ghsearch/internal/config"
)

// Store is a named preference store of string values.
type Store interface {
	// Get returns the value stored for key, or "" if none was stored.
	Get(key string) (string, error)

	// Set durably replaces the value for key.
	Set(key, value string) error

	Close() error
}

const (
	boltFileName   = "ghsearch.bolt"
	sqliteFileName = "ghsearch.db"
)

// Open opens the preference store called name using the backend selected in cfg.
func Open(cfg *config.Config, name string) (Store, error) {
	if err := application.EnsureDirectory(cfg.DataDir); err != nil {
		return nil, err
	}

	var (
		s   Store
		err error
	)

	switch cfg.Store {
	case config.StoreBolt:
		s, err = NewBolt(filepath.Join(cfg.DataDir, boltFileName), name)
	case config.StoreSQLite:
		s, err = NewSQLite(filepath.Join(cfg.DataDir, sqliteFileName), name)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}
