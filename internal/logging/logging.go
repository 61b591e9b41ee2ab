// Package logging builds the logrus logger shared by ghsearch components.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inovacc/ghsearch/internal/application"
	"github.com/inovacc/ghsearch/internal/config"
	"github.com/sirupsen/logrus"
)

// Destination selects where log output goes when no log_file is configured.
type Destination int

const (
	// ToStderr is used by non-interactive commands
	ToStderr Destination = iota

	// ToFile writes to ghsearch.log in the data directory, so the interactive
	// screen keeps the terminal to itself
	ToFile
)

// New returns a logger configured from cfg. The returned closer releases the
// log file, if any, and is never nil.
func New(cfg *config.Config, dest Destination) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	path := cfg.LogFile
	if path == "" && dest == ToFile {
		path = filepath.Join(cfg.DataDir, application.LogFileName)
	}

	if path == "" {
		logger.SetOutput(os.Stderr)

		return logger, nopCloser{}, nil
	}

	if err := application.EnsureDirectory(filepath.Dir(path)); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.SetOutput(f)

	return logger, f, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
