package core

import (
	"fmt"
	"io"
	"net/url"

	"github.com/atotto/clipboard"
	"github.com/cli/browser"
)

// SystemLauncher opens URLs in the default browser and shares text through
// the system clipboard.
type SystemLauncher struct {
	open  func(string) error
	write func(string) error
}

// NewSystemLauncher returns the desktop launcher. When quiet is set the
// browser helper's output is discarded, which keeps a full screen UI intact.
func NewSystemLauncher(quiet bool) *SystemLauncher {
	if quiet {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	}

	return &SystemLauncher{
		open:  browser.OpenURL,
		write: clipboard.WriteAll,
	}
}

// OpenURL opens rawURL in the system's default browser.
func (l *SystemLauncher) OpenURL(rawURL string) error {
	if !IsWebURL(rawURL) {
		return fmt.Errorf("not a web url: %q", rawURL)
	}

	if err := l.open(rawURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// ShareText places text on the system clipboard.
func (l *SystemLauncher) ShareText(text string) error {
	if text == "" {
		return fmt.Errorf("nothing to share")
	}

	if err := l.write(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	return nil
}

// IsWebURL reports whether s is an absolute http or https URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
