package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// Ensure Client implements domain.AuthAPI.
var _ domain.AuthAPI = (*Client)(nil)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MFAToken string `json:"mfaToken,omitempty"`
}

type loginResponse struct {
	Token       string       `json:"token"`
	User        *domain.User `json:"user"`
	RequiresMFA bool         `json:"requiresMfa"`
}

type mfaCodeRequest struct {
	Token string `json:"token"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	body := registerRequest{Name: reg.Name, Email: reg.Email, Password: reg.Password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, nil); err != nil {
		return asAuthError(err)
	}
	return nil
}

// Login exchanges credentials for a bearer token, or signals requires-MFA.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	body := loginRequest{Email: creds.Email, Password: creds.Password, MFAToken: creds.MFACode}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, asAuthError(err)
	}
	return &domain.LoginResult{
		Token:       resp.Token,
		User:        resp.User,
		RequiresMFA: resp.RequiresMFA,
	}, nil
}

// Me resolves the current identity from the bearer token.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetupMFA requests a new enrollment secret and QR payload.
func (c *Client) SetupMFA(ctx context.Context) (*domain.MFAEnrollment, error) {
	var enrollment domain.MFAEnrollment
	if err := c.do(ctx, http.MethodPost, "/auth/mfa/setup", nil, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// EnableMFA confirms enrollment with a 6-digit code.
func (c *Client) EnableMFA(ctx context.Context, code string) error {
	if err := c.do(ctx, http.MethodPost, "/auth/mfa/enable", mfaCodeRequest{Token: code}, nil); err != nil {
		return asAuthError(err)
	}
	return nil
}

// DisableMFA turns off MFA with a 6-digit code.
func (c *Client) DisableMFA(ctx context.Context, code string) error {
	if err := c.do(ctx, http.MethodPost, "/auth/mfa/disable", mfaCodeRequest{Token: code}, nil); err != nil {
		return asAuthError(err)
	}
	return nil
}

// asAuthError converts a 4xx server response on an auth endpoint into a
// structured *domain.AuthError. The wire code wins; when absent the code is
// recovered from the message text. Transport and 5xx errors pass through.
func asAuthError(err error) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.Status >= http.StatusInternalServerError {
		return err
	}

	code := domain.AuthCode(apiErr.Code)
	if code == domain.AuthUnknown {
		code = domain.ClassifyAuthMessage(apiErr.Message)
	}
	return &domain.AuthError{Code: code, Message: apiErr.Message}
}
