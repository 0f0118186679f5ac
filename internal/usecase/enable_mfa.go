package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
)

// ValidMFACode reports whether code is exactly six ASCII digits.
// Codes are validated locally before any server call.
func ValidMFACode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// EnableMFAInput contains the verification code from the authenticator app.
type EnableMFAInput struct {
	Code string
}

// EnableMFAOutput contains the result of enabling MFA.
type EnableMFAOutput struct{}

// EnableMFA is the use case for confirming MFA enrollment.
type EnableMFA struct {
	auth    domain.AuthAPI
	session *session.Store
}

// NewEnableMFA creates a new EnableMFA use case.
func NewEnableMFA(auth domain.AuthAPI, sess *session.Store) *EnableMFA {
	return &EnableMFA{
		auth:    auth,
		session: sess,
	}
}

// Execute submits the verification code; on server confirmation the
// identity's MFA flag is flipped locally to match.
func (uc *EnableMFA) Execute(ctx context.Context, in EnableMFAInput) (*EnableMFAOutput, error) {
	if !ValidMFACode(in.Code) {
		return nil, domain.ErrInvalidMFACode
	}

	if err := uc.auth.EnableMFA(ctx, in.Code); err != nil {
		return nil, fmt.Errorf("enable mfa: %w", err)
	}

	uc.session.SetMFAEnabled(true)
	return &EnableMFAOutput{}, nil
}
