package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the path to the data directory for logs.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/todo-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// LogPath returns the configured log file, or debug.log in the data directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// Template is written by --init.
const Template = `# Todo TUI Configuration
# Location: ~/.config/todo-tui/config.yaml

server:
  # Address of the server exposing /api/todos.
  # The TODO_API_URL environment variable overrides this.
  base_url: "http://localhost:5173"

  # Per-request timeout, e.g. "10s". Leave at 0 to wait forever.
  # request_timeout: 0s

sync:
  # Refresh results normally apply in the order they complete, so a slow
  # older refresh can overwrite a newer one. Set to true to drop stale results.
  discard_stale_refresh: false

ui:
  toast_duration: 5s
  max_toasts: 3
  # Also show failures as desktop notifications.
  desktop_notifications: false

log:
  # file: ~/.local/share/todo-tui/debug.log
  level: info
`
