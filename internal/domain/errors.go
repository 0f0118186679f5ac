package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrDueDateInPast     = errors.New("due date cannot be earlier than today")
	ErrNotDeletable      = errors.New("only completed tasks can be deleted")
	ErrUnauthorized      = errors.New("session expired or token invalid")
	ErrNoToken           = errors.New("no stored token")
	ErrWeakPassword      = errors.New("password does not satisfy all policy rules")
	ErrInvalidMFACode    = errors.New("verification code must be 6 digits")
)

// AuthCode classifies an authentication failure. Servers that implement the
// structured contract return it in the error body; for servers that only
// return natural-language text the code is recovered by message matching
// (best effort, kept for compatibility).
type AuthCode string

const (
	AuthInvalidCredentials AuthCode = "invalid_credentials"
	AuthAccountLocked      AuthCode = "account_locked"
	AuthMFARequired        AuthCode = "mfa_required"
	AuthBadMFACode         AuthCode = "invalid_mfa_code"
	AuthUnknown            AuthCode = ""
)

// AuthError is a structured authentication failure.
type AuthError struct {
	Message string
	Code    AuthCode
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "authentication failed"
}

// ClassifyAuthMessage recovers an AuthCode from server message text.
// Fallback only; a structured code from the wire always wins.
func ClassifyAuthMessage(msg string) AuthCode {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "blocked"), strings.Contains(m, "locked"):
		return AuthAccountLocked
	case strings.Contains(m, "authentication"):
		return AuthInvalidCredentials
	default:
		return AuthUnknown
	}
}
