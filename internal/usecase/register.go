package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// RegisterInput contains the parameters for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterOutput contains the result of registration.
type RegisterOutput struct {
	User *domain.User
}

// Register is the use case for creating an account. On success the new
// account is logged in immediately.
type Register struct {
	auth  domain.AuthAPI
	login *Login
}

// NewRegister creates a new Register use case.
func NewRegister(auth domain.AuthAPI, login *Login) *Register {
	return &Register{
		auth:  auth,
		login: login,
	}
}

// Execute creates the account and logs it in. The password must satisfy
// every policy rule; a weak password is rejected locally with no server call.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	if !domain.CheckPassword(in.Password).AllValid() {
		return nil, domain.ErrWeakPassword
	}

	if err := uc.auth.Register(ctx, domain.Registration{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	out, err := uc.login.Execute(ctx, LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, fmt.Errorf("login after register: %w", err)
	}

	return &RegisterOutput{User: out.User}, nil
}
