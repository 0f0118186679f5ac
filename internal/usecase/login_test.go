package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
	"github.com/mvidalg/taskdeck/internal/testutil"
)

func newTestSession() (*session.Store, *testutil.MockTokenStore) {
	tokens := &testutil.MockTokenStore{}
	return session.New(tokens, domain.NopLogger{}), tokens
}

func TestLogin_Execute_Success(t *testing.T) {
	// Valid credentials, no MFA enrolled
	user := &domain.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	auth := &testutil.MockAuthAPI{
		LoginResult: &domain.LoginResult{Token: "jwt-123", User: user},
		MeUser:      user,
	}
	sess, tokens := newTestSession()
	uc := NewLogin(auth, sess)

	out, err := uc.Execute(context.Background(), LoginInput{
		Email:    "ana@example.com",
		Password: "Secret1!",
	})

	require.NoError(t, err)
	assert.False(t, out.RequiresMFA)
	assert.Equal(t, "Ana", out.User.Name)

	// Token persisted and identity resolved
	assert.Equal(t, "jwt-123", tokens.Token)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, 1, auth.MeCalls, "identity is resolved with a who-am-I call")
}

func TestLogin_Execute_RequiresMFA(t *testing.T) {
	// MFA enrolled, no code supplied
	auth := &testutil.MockAuthAPI{
		LoginResult: &domain.LoginResult{RequiresMFA: true},
	}
	sess, tokens := newTestSession()
	uc := NewLogin(auth, sess)

	out, err := uc.Execute(context.Background(), LoginInput{
		Email:    "ana@example.com",
		Password: "Secret1!",
	})

	require.NoError(t, err)
	assert.True(t, out.RequiresMFA)

	// No token may be persisted before the code is verified
	assert.False(t, tokens.HasToken)
	assert.Empty(t, sess.Token())
	assert.False(t, sess.Authenticated())
	assert.Zero(t, auth.MeCalls)
}

func TestLogin_Execute_RetryWithMFACode(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Ana", TwoFactorEnabled: true}
	auth := &testutil.MockAuthAPI{
		LoginResult: &domain.LoginResult{Token: "jwt-456", User: user},
		MeUser:      user,
	}
	sess, tokens := newTestSession()
	uc := NewLogin(auth, sess)

	out, err := uc.Execute(context.Background(), LoginInput{
		Email:    "ana@example.com",
		Password: "Secret1!",
		MFACode:  "123456",
	})

	require.NoError(t, err)
	assert.False(t, out.RequiresMFA)
	require.Len(t, auth.LoginCalls, 1)
	assert.Equal(t, "123456", auth.LoginCalls[0].MFACode)
	assert.Equal(t, "jwt-456", tokens.Token)
	assert.True(t, sess.Authenticated())
}

func TestLogin_Execute_RejectedCredentials(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		LoginErr: &domain.AuthError{Code: domain.AuthInvalidCredentials, Message: "Authentication failed"},
	}
	sess, tokens := newTestSession()
	uc := NewLogin(auth, sess)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@b.c", Password: "nope"})

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AuthInvalidCredentials, authErr.Code)
	assert.False(t, tokens.HasToken)
}

func TestLogin_Execute_IdentityResolutionFailureLogsOut(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		LoginResult: &domain.LoginResult{Token: "jwt-123"},
		MeErr:       assert.AnError,
	}
	sess, tokens := newTestSession()
	uc := NewLogin(auth, sess)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@b.c", Password: "x"})

	assert.Error(t, err)
	assert.Empty(t, sess.Token())
	assert.False(t, tokens.HasToken, "a token that cannot be resolved is discarded")
}
