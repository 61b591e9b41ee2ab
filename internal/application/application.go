package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "ghsearch"

	// Version is reported by the version command and sent as part of the User-Agent
	Version = "0.1.0"

	// ConfigFileName is the optional configuration file looked up in the application directory
	ConfigFileName = "config"

	// LogFileName receives log output while the interactive screen owns the terminal
	LogFileName = "ghsearch.log"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the ghsearch data directory path.
// Linux: ~/.config/ghsearch (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\ghsearch (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureDirectory creates dir with owner-only permissions if it does not exist.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// UserAgent is the User-Agent header value sent to the GitHub API.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)

		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
