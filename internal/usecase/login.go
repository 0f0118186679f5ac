// Package usecase contains the application operations, one per file.
package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
)

// LoginInput contains the parameters for logging in.
// MFACode is empty on the first attempt; when the server answers requires-MFA
// the caller re-invokes with the 6-digit code.
type LoginInput struct {
	Email    string
	Password string
	MFACode  string
}

// LoginOutput contains the result of a login attempt.
type LoginOutput struct {
	User        *domain.User
	RequiresMFA bool
}

// Login is the use case for authenticating against the server.
type Login struct {
	auth    domain.AuthAPI
	session *session.Store
}

// NewLogin creates a new Login use case.
func NewLogin(auth domain.AuthAPI, sess *session.Store) *Login {
	return &Login{
		auth:    auth,
		session: sess,
	}
}

// Execute sends credentials to the server. When the server signals that MFA
// is required, it returns a requires-MFA result without persisting any token.
// On success the returned token is persisted, then the identity is resolved
// with a who-am-I call; a failed resolution logs the session out again.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	result, err := uc.auth.Login(ctx, domain.Credentials{
		Email:    in.Email,
		Password: in.Password,
		MFACode:  in.MFACode,
	})
	if err != nil {
		return nil, err
	}

	if result.RequiresMFA {
		return &LoginOutput{RequiresMFA: true}, nil
	}

	uc.session.SetToken(result.Token)

	user, err := uc.auth.Me(ctx)
	if err != nil {
		uc.session.Logout()
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	uc.session.SetUser(user)

	return &LoginOutput{User: user}, nil
}
