package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// SetupMFAInput contains the parameters for starting MFA enrollment.
type SetupMFAInput struct{}

// SetupMFAOutput contains the enrollment secret and QR payload.
type SetupMFAOutput struct {
	Enrollment *domain.MFAEnrollment
}

// SetupMFA is the use case for requesting a new MFA enrollment secret.
// It does not mutate the identity; the flag flips only on EnableMFA.
type SetupMFA struct {
	auth domain.AuthAPI
}

// NewSetupMFA creates a new SetupMFA use case.
func NewSetupMFA(auth domain.AuthAPI) *SetupMFA {
	return &SetupMFA{auth: auth}
}

// Execute requests the enrollment secret and QR payload from the server.
func (uc *SetupMFA) Execute(ctx context.Context, _ SetupMFAInput) (*SetupMFAOutput, error) {
	enrollment, err := uc.auth.SetupMFA(ctx)
	if err != nil {
		return nil, fmt.Errorf("setup mfa: %w", err)
	}
	return &SetupMFAOutput{Enrollment: enrollment}, nil
}
