package domain

import (
	"context"
	"time"
)

// Credentials carries a login attempt. MFACode is empty on the first attempt;
// when the server answers requires-MFA the caller retries with the 6-digit code.
type Credentials struct {
	Email    string
	Password string
	MFACode  string
}

// LoginResult is the outcome of POST /auth/login. Either RequiresMFA is true
// and no token was issued, or Token carries the bearer credential.
type LoginResult struct {
	User        *User
	Token       string
	RequiresMFA bool
}

// Registration carries a new-account request.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// AuthAPI is the authentication surface of the backend server.
type AuthAPI interface {
	// Register creates a new account.
	Register(ctx context.Context, reg Registration) error

	// Login exchanges credentials for a bearer token, or signals requires-MFA.
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)

	// Me resolves the current identity from the bearer token.
	Me(ctx context.Context) (*User, error)

	// SetupMFA requests a new enrollment secret and QR payload.
	SetupMFA(ctx context.Context) (*MFAEnrollment, error)

	// EnableMFA confirms enrollment with a 6-digit code.
	EnableMFA(ctx context.Context, code string) error

	// DisableMFA turns off MFA with a 6-digit code.
	DisableMFA(ctx context.Context, code string) error
}

// TaskAPI is the task surface of the backend server.
type TaskAPI interface {
	// List retrieves all tasks for the current identity.
	List(ctx context.Context) ([]*Task, error)

	// Create submits a new task; the server assigns the ID and initial status.
	Create(ctx context.Context, draft TaskDraft) (*Task, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, id string, patch TaskPatch) (*Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error
}

// TokenStore persists the bearer token across process restarts.
type TokenStore interface {
	// Load returns the stored token. Returns ErrNoToken if none is stored.
	Load() (string, error)

	// Save stores the token durably.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// Logger writes categorized log entries. Implementations must be safe for
// concurrent use; a zero-value NopLogger discards everything.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger is a Logger that discards all entries.
type NopLogger struct{}

// Debug discards the entry.
func (NopLogger) Debug(string, string) {}

// Info discards the entry.
func (NopLogger) Info(string, string) {}

// Warn discards the entry.
func (NopLogger) Warn(string, string) {}

// Error discards the entry.
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current date in fixed-width ISO form.
func Today(clock Clock) Date {
	return Date(clock.Now().Format("2006-01-02"))
}
