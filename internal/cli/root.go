// Package cli provides the command-line interface for taskdeck.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupAuth = "auth"
	groupTask = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task board client",
		Long: `taskdeck is a terminal client for a shared task board.

Tasks flow forward through three columns (Pending, In Progress,
Completed); completed tasks can be deleted. Sessions are backed by a
bearer token stored under the user config directory, with optional
two-factor authentication.

Running taskdeck with no arguments opens the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Authentication Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
	)

	root.AddCommand(
		newLoginCommand(c),
		newLogoutCommand(c),
		newRegisterCommand(c),
		newWhoamiCommand(c),
		newMFACommand(c),
		newTaskCommand(c),
	)

	return root
}

// launchTUI starts the interactive board.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
