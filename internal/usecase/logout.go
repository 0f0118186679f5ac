package usecase

import (
	"context"

	"github.com/mvidalg/taskdeck/internal/session"
)

// LogoutInput contains the parameters for logging out.
type LogoutInput struct{}

// LogoutOutput contains the result of logging out.
type LogoutOutput struct{}

// Logout is the use case for ending the session.
type Logout struct {
	session *session.Store
}

// NewLogout creates a new Logout use case.
func NewLogout(sess *session.Store) *Logout {
	return &Logout{session: sess}
}

// Execute clears the persisted token and in-memory identity synchronously.
// It never fails.
func (uc *Logout) Execute(_ context.Context, _ LogoutInput) (*LogoutOutput, error) {
	uc.session.Logout()
	return &LogoutOutput{}, nil
}
