// Package tokenstore persists the bearer token across process restarts.
// The token is a single opaque string in a file under the user config
// directory; no expiry is tracked client-side. Concurrent processes are
// not synchronized against each other.
package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// TokenFileName is the fixed file name under the config directory.
const TokenFileName = "token"

// ErrNoConfigDir is returned when no config directory can be resolved.
var ErrNoConfigDir = errors.New("cannot determine config directory")

// Ensure Store implements domain.TokenStore.
var _ domain.TokenStore = (*Store)(nil)

// Store is a file-backed token store.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the given config directory.
func NewStore(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, TokenFileName)}
}

// NewStoreFromDefault creates a Store under the default config directory
// (XDG_CONFIG_HOME/taskdeck, falling back to ~/.config/taskdeck).
func NewStoreFromDefault() (*Store, error) {
	dir := DefaultConfigDir()
	if dir == "" {
		return nil, ErrNoConfigDir
	}
	return NewStore(dir), nil
}

// DefaultConfigDir returns the default config directory.
// Returns empty string if the home directory cannot be determined.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// Load returns the stored token, or domain.ErrNoToken when none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNoToken
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", domain.ErrNoToken
	}
	return token, nil
}

// Save stores the token durably. The file is created owner-only since the
// token is a live credential.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
