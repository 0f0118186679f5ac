package usecase

import (
	"context"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
)

// ResolveIdentityInput contains the parameters for resolving the identity.
type ResolveIdentityInput struct{}

// ResolveIdentityOutput contains the resolved identity, or nil when the
// session is unauthenticated.
type ResolveIdentityOutput struct {
	User *domain.User
}

// ResolveIdentity is the use case for re-deriving the identity from the
// persisted token at process start.
type ResolveIdentity struct {
	auth    domain.AuthAPI
	session *session.Store
}

// NewResolveIdentity creates a new ResolveIdentity use case.
func NewResolveIdentity(auth domain.AuthAPI, sess *session.Store) *ResolveIdentity {
	return &ResolveIdentity{
		auth:    auth,
		session: sess,
	}
}

// Execute calls the server to fetch the identity for the persisted token.
// On any failure (expired or invalid token) it logs out as a side effect.
// The resolving state always terminates, success or failure, and resolution
// failure is not an error: the caller lands on the login screen.
func (uc *ResolveIdentity) Execute(ctx context.Context, _ ResolveIdentityInput) (*ResolveIdentityOutput, error) {
	if uc.session.Token() == "" {
		uc.session.MarkResolved()
		return &ResolveIdentityOutput{}, nil
	}

	user, err := uc.auth.Me(ctx)
	if err != nil {
		uc.session.Logout()
		return &ResolveIdentityOutput{}, nil
	}

	uc.session.SetUser(user)
	return &ResolveIdentityOutput{User: user}, nil
}
