// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/todo-tui/internal/api"
)

const appName = "todo-tui"

// EnvServerURL overrides server.base_url when set.
const EnvServerURL = "TODO_API_URL"

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Sync   SyncConfig   `yaml:"sync"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig describes where the todos API lives.
type ServerConfig struct {
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds each API request. Zero means no timeout.
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
}

// SyncConfig controls how refresh results are applied.
type SyncConfig struct {
	// DiscardStaleRefresh drops a list result that completes after a newer one
	// was already applied. Off by default: results apply in completion order.
	DiscardStaleRefresh bool `yaml:"discard_stale_refresh"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	ToastDuration        time.Duration `yaml:"toast_duration,omitempty"`
	MaxToasts            int           `yaml:"max_toasts,omitempty"`
	DesktopNotifications bool          `yaml:"desktop_notifications"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`  // defaults to <data dir>/debug.log
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: api.DefaultBaseURL,
		},
		UI: UIConfig{
			ToastDuration: 5 * time.Second,
			MaxToasts:     3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
// The TODO_API_URL environment variable wins over the file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if url := strings.TrimSpace(os.Getenv(EnvServerURL)); url != "" {
		cfg.Server.BaseURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must start with http:// or https://, got %q", c.Server.BaseURL)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout cannot be negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	name := l.Level
	if name == "" {
		name = "info"
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}
