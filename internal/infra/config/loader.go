// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file name under the config directory.
const ConfigFileName = "config.toml"

// Environment variable overrides. They take precedence over the file.
const (
	EnvServerURL = "TASKDECK_SERVER_URL"
	EnvLogLevel  = "TASKDECK_LOG_LEVEL"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the backend connection.
type ServerConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://localhost:5000/api",
			TimeoutSeconds: 15,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Loader loads configuration from a TOML file with env overrides.
type Loader struct {
	configDir string
}

// NewLoader creates a Loader rooted at the given config directory.
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// Load returns the merged configuration: defaults, then the config file,
// then environment variables (later takes precedence). A missing file is
// not an error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if l.configDir != "" {
		path := filepath.Join(l.configDir, ConfigFileName)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// fall through to defaults
		default:
			return nil, err
		}
	}

	if url := os.Getenv(EnvServerURL); url != "" {
		cfg.Server.URL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = NewDefaultConfig().Server.TimeoutSeconds
	}

	return cfg, nil
}
