package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
)

// DisableMFAInput contains the verification code from the authenticator app.
type DisableMFAInput struct {
	Code string
}

// DisableMFAOutput contains the result of disabling MFA.
type DisableMFAOutput struct{}

// DisableMFA is the use case for turning MFA off.
type DisableMFA struct {
	auth    domain.AuthAPI
	session *session.Store
}

// NewDisableMFA creates a new DisableMFA use case.
func NewDisableMFA(auth domain.AuthAPI, sess *session.Store) *DisableMFA {
	return &DisableMFA{
		auth:    auth,
		session: sess,
	}
}

// Execute submits the verification code; on server confirmation the
// identity's MFA flag is flipped locally to match.
func (uc *DisableMFA) Execute(ctx context.Context, in DisableMFAInput) (*DisableMFAOutput, error) {
	if !ValidMFACode(in.Code) {
		return nil, domain.ErrInvalidMFACode
	}

	if err := uc.auth.DisableMFA(ctx, in.Code); err != nil {
		return nil, fmt.Errorf("disable mfa: %w", err)
	}

	uc.session.SetMFAEnabled(false)
	return &DisableMFAOutput{}, nil
}
