package usecase

import (
	"context"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// CheckPasswordInput contains the candidate password.
type CheckPasswordInput struct {
	Password string
}

// CheckPasswordOutput contains the advisory result: the five policy rule
// checks, their conjunction, and the 0-4 estimator score (very weak … very
// strong). AllValid is independent from, and stricter than, the score.
type CheckPasswordOutput struct {
	Checks   domain.PasswordChecks
	Score    int
	AllValid bool
}

// CheckPassword is the pure, stateless password-strength advisory.
type CheckPassword struct{}

// NewCheckPassword creates a new CheckPassword use case.
func NewCheckPassword() *CheckPassword {
	return &CheckPassword{}
}

// Execute scores the candidate password. Never calls the server.
func (uc *CheckPassword) Execute(_ context.Context, in CheckPasswordInput) (*CheckPasswordOutput, error) {
	checks := domain.CheckPassword(in.Password)

	score := 0
	if in.Password != "" {
		score = zxcvbn.PasswordStrength(in.Password, nil).Score
	}

	return &CheckPasswordOutput{
		Checks:   checks,
		Score:    score,
		AllValid: checks.AllValid(),
	}, nil
}
