// Package api provides the HTTP client for the task-management backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvidalg/taskdeck/internal/domain"
)

// TokenFunc returns the current bearer token, or "" when unauthenticated.
type TokenFunc func() string

// Error is a non-2xx response from the server. Code carries the structured
// error code when the server implements the structured contract.
type Error struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"-"`
	Status    int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

// Unauthorized returns true for 401-class failures.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Client talks JSON over HTTP to the backend. All authenticated calls carry
// the bearer token returned by the token func at request time.
type Client struct {
	httpClient *http.Client
	token      TokenFunc
	logger     domain.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (useful for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for request failures.
func WithLogger(l domain.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, token TokenFunc, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		logger:     domain.NopLogger{},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues a JSON request and decodes the response body into out (when
// out is non-nil). Non-2xx responses are returned as *Error; 401 responses
// additionally wrap domain.ErrUnauthorized so callers can trigger logout.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api", fmt.Sprintf("%s %s [%s]: %v", method, path, requestID, err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, RequestID: requestID}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		c.logger.Warn("api", fmt.Sprintf("%s %s [%s]: %s", method, path, requestID, apiErr.Error()))
		if apiErr.Unauthorized() {
			return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnauthorized, apiErr)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// IsUnauthorized reports whether err stems from a 401-class response.
func IsUnauthorized(err error) bool {
	if errors.Is(err, domain.ErrUnauthorized) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
