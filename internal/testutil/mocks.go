// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTokenStore is an in-memory test double for domain.TokenStore.
type MockTokenStore struct {
	SaveErr  error
	ClearErr error
	Token    string
	HasToken bool
}

// Load returns the stored token.
func (m *MockTokenStore) Load() (string, error) {
	if !m.HasToken {
		return "", domain.ErrNoToken
	}
	return m.Token, nil
}

// Save stores the token.
func (m *MockTokenStore) Save(token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Token = token
	m.HasToken = true
	return nil
}

// Clear removes the token.
func (m *MockTokenStore) Clear() error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Token = ""
	m.HasToken = false
	return nil
}

// MockAuthAPI is a test double for domain.AuthAPI.
type MockAuthAPI struct {
	LoginResult *domain.LoginResult
	MeUser      *domain.User
	Enrollment  *domain.MFAEnrollment

	RegisterErr error
	LoginErr    error
	MeErr       error
	SetupErr    error
	EnableErr   error
	DisableErr  error

	RegisterCalls []domain.Registration
	LoginCalls    []domain.Credentials
	EnableCodes   []string
	DisableCodes  []string
	MeCalls       int
}

// Register records the call.
func (m *MockAuthAPI) Register(_ context.Context, reg domain.Registration) error {
	m.RegisterCalls = append(m.RegisterCalls, reg)
	return m.RegisterErr
}

// Login records the call and returns the configured result.
func (m *MockAuthAPI) Login(_ context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	m.LoginCalls = append(m.LoginCalls, creds)
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return m.LoginResult, nil
}

// Me returns the configured identity.
func (m *MockAuthAPI) Me(_ context.Context) (*domain.User, error) {
	m.MeCalls++
	if m.MeErr != nil {
		return nil, m.MeErr
	}
	return m.MeUser, nil
}

// SetupMFA returns the configured enrollment.
func (m *MockAuthAPI) SetupMFA(_ context.Context) (*domain.MFAEnrollment, error) {
	if m.SetupErr != nil {
		return nil, m.SetupErr
	}
	return m.Enrollment, nil
}

// EnableMFA records the code.
func (m *MockAuthAPI) EnableMFA(_ context.Context, code string) error {
	m.EnableCodes = append(m.EnableCodes, code)
	return m.EnableErr
}

// DisableMFA records the code.
func (m *MockAuthAPI) DisableMFA(_ context.Context, code string) error {
	m.DisableCodes = append(m.DisableCodes, code)
	return m.DisableErr
}

// MockTaskAPI is a test double for domain.TaskAPI.
type MockTaskAPI struct {
	Tasks      []*domain.Task
	CreateTask *domain.Task
	UpdateTask *domain.Task

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	CreateCalls []domain.TaskDraft
	UpdateCalls []MockUpdateCall
	DeleteCalls []string
	ListCalls   int
}

// MockUpdateCall records a single Update invocation.
type MockUpdateCall struct {
	Patch domain.TaskPatch
	ID    string
}

// List returns the configured tasks.
func (m *MockTaskAPI) List(_ context.Context) ([]*domain.Task, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Tasks, nil
}

// Create records the draft and returns the configured task.
func (m *MockTaskAPI) Create(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	m.CreateCalls = append(m.CreateCalls, draft)
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.CreateTask != nil {
		return m.CreateTask, nil
	}
	return &domain.Task{ID: "created", Title: draft.Title, Description: draft.Description, DueDate: draft.DueDate, Status: domain.StatusPending}, nil
}

// Update records the call and returns the configured task.
func (m *MockTaskAPI) Update(_ context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	m.UpdateCalls = append(m.UpdateCalls, MockUpdateCall{ID: id, Patch: patch})
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if m.UpdateTask != nil {
		return m.UpdateTask, nil
	}
	return &domain.Task{ID: id}, nil
}

// Delete records the call.
func (m *MockTaskAPI) Delete(_ context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	return m.DeleteErr
}
