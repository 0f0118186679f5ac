// Package session holds the current authenticated identity and bearer token.
// A single Store is constructed at process start and lives for the process
// lifetime; logout clears its fields, it never destroys the object.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// State is the identity resolution state. A freshly constructed store with a
// persisted token is Resolving until the server confirms or rejects it.
type State int

const (
	StateResolving State = iota // "Who am I" still in flight
	StateResolved               // Identity known (or known to be absent)
)

// Store is the session store. Safe for concurrent use: TUI commands run off
// the update loop.
type Store struct {
	tokens    domain.TokenStore
	logger    domain.Logger
	user      *domain.User
	token     string
	state     State
	mu        sync.RWMutex
}

// New creates the Store and reads any persisted token. When a token is found
// the store starts in StateResolving; the identity must then be confirmed via
// a resolve call before it is considered authenticated.
func New(tokens domain.TokenStore, logger domain.Logger) *Store {
	s := &Store{
		tokens: tokens,
		logger: logger,
		state:  StateResolved,
	}

	token, err := tokens.Load()
	switch {
	case err == nil:
		s.token = token
		s.state = StateResolving
	case errors.Is(err, domain.ErrNoToken):
		// No stored session; nothing to resolve
	default:
		logger.Warn("session", fmt.Sprintf("load token: %v", err))
	}

	return s
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current identity, or nil. The identity is non-nil only
// after the server validated the token in this process lifetime.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// State returns the resolution state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Authenticated returns true when a resolved identity is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateResolved && s.user != nil
}

// SetToken stores a freshly issued token in memory and persists it. A persist
// failure is logged but does not invalidate the in-memory session; the token
// simply won't survive a restart.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.tokens.Save(token); err != nil {
		s.logger.Warn("session", fmt.Sprintf("persist token: %v", err))
	}
}

// SetUser records the server-confirmed identity and marks the session resolved.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.state = StateResolved
	s.mu.Unlock()
}

// MarkResolved terminates the resolving state without an identity.
func (s *Store) MarkResolved() {
	s.mu.Lock()
	s.state = StateResolved
	s.mu.Unlock()
}

// SetMFAEnabled flips the identity's MFA flag after server confirmation.
// No-op when unauthenticated.
func (s *Store) SetMFAEnabled(enabled bool) {
	s.mu.Lock()
	if s.user != nil {
		// Copy so readers holding the old pointer see a consistent record.
		u := *s.user
		u.TwoFactorEnabled = enabled
		s.user = &u
	}
	s.mu.Unlock()
}

// Logout clears the persisted token and in-memory identity synchronously.
// It never fails: a token-file removal error is logged and ignored.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = StateResolved
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn("session", fmt.Sprintf("clear token: %v", err))
	}
}
