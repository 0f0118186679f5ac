// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/infra/api"
	"github.com/mvidalg/taskdeck/internal/infra/config"
	"github.com/mvidalg/taskdeck/internal/infra/logging"
	"github.com/mvidalg/taskdeck/internal/infra/tokenstore"
	"github.com/mvidalg/taskdeck/internal/session"
	"github.com/mvidalg/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Auth   domain.AuthAPI
	Tasks  domain.TaskAPI
	Clock  domain.Clock
	Logger domain.Logger

	// Pointer fields
	Session *session.Store
	Config  *config.Config
}

// New creates a new Container using the default config directory. A missing
// or unreadable config file falls back to defaults; a missing config
// directory only disables token persistence and file logging.
func New() (*Container, error) {
	configDir := tokenstore.DefaultConfigDir()

	cfg, err := config.NewLoader(configDir).Load()
	if err != nil {
		cfg = config.NewDefaultConfig()
	}

	logger := logging.New(configDir, logging.ParseLevel(cfg.Log.Level))
	tokens := tokenstore.NewStore(configDir)
	sess := session.New(tokens, logger)

	client := api.New(cfg.Server.URL, cfg.Timeout(), sess.Token, api.WithLogger(logger))

	return &Container{
		Auth:    client,
		Tasks:   client,
		Clock:   domain.RealClock{},
		Logger:  logger,
		Session: sess,
		Config:  cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, auth domain.AuthAPI, tasks domain.TaskAPI, sess *session.Store, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Auth:    auth,
		Tasks:   tasks,
		Clock:   clock,
		Logger:  logger,
		Session: sess,
		Config:  cfg,
	}
}

// UseCase factory methods

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Auth, c.Session)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Session)
}

// RegisterUseCase returns a new Register use case.
func (c *Container) RegisterUseCase() *usecase.Register {
	return usecase.NewRegister(c.Auth, c.LoginUseCase())
}

// ResolveIdentityUseCase returns a new ResolveIdentity use case.
func (c *Container) ResolveIdentityUseCase() *usecase.ResolveIdentity {
	return usecase.NewResolveIdentity(c.Auth, c.Session)
}

// SetupMFAUseCase returns a new SetupMFA use case.
func (c *Container) SetupMFAUseCase() *usecase.SetupMFA {
	return usecase.NewSetupMFA(c.Auth)
}

// EnableMFAUseCase returns a new EnableMFA use case.
func (c *Container) EnableMFAUseCase() *usecase.EnableMFA {
	return usecase.NewEnableMFA(c.Auth, c.Session)
}

// DisableMFAUseCase returns a new DisableMFA use case.
func (c *Container) DisableMFAUseCase() *usecase.DisableMFA {
	return usecase.NewDisableMFA(c.Auth, c.Session)
}

// FetchTasksUseCase returns a new FetchTasks use case.
func (c *Container) FetchTasksUseCase() *usecase.FetchTasks {
	return usecase.NewFetchTasks(c.Tasks)
}

// SaveTaskUseCase returns a new SaveTask use case.
func (c *Container) SaveTaskUseCase() *usecase.SaveTask {
	return usecase.NewSaveTask(c.Tasks, c.Clock)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Tasks)
}

// AdvanceStatusUseCase returns a new AdvanceStatus use case.
func (c *Container) AdvanceStatusUseCase() *usecase.AdvanceStatus {
	return usecase.NewAdvanceStatus(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// CheckPasswordUseCase returns a new CheckPassword use case.
func (c *Container) CheckPasswordUseCase() *usecase.CheckPassword {
	return usecase.NewCheckPassword()
}
