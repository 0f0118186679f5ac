package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/usecase"
)

// columnOrder is the left-to-right board layout.
var columnOrder = [3]domain.Status{
	domain.StatusPending,
	domain.StatusInProgress,
	domain.StatusCompleted,
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies
	container  *app.Container
	board      *domain.Board
	user       *domain.User
	enrollment *domain.MFAEnrollment
	err        error

	// State
	filters map[domain.Status]string
	notice  string
	banner  string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	codeInput     textinput.Model
	titleInput    textinput.Model
	descInput     textinput.Model
	dueInput      textinput.Model
	filterInput   textinput.Model

	// Form state
	editingID     string
	confirmTaskID string
	pwChecks      domain.PasswordChecks

	// Numeric state (smaller types last)
	screen        Screen
	mode          Mode
	confirmAction ConfirmAction
	authField     AuthField
	formField     FormField
	cursors       [3]int
	column        int
	width         int
	height        int
	fetchSeq      int
	pwScore       int
	pwAllValid    bool
	requiresMFA   bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "Name"
	ni.CharLimit = 100

	ei := textinput.New()
	ei.Placeholder = "Email"
	ei.CharLimit = 200

	pi := textinput.New()
	pi.Placeholder = "Password"
	pi.EchoMode = textinput.EchoPassword
	pi.CharLimit = 200

	ci := textinput.New()
	ci.Placeholder = "6-digit code"
	ci.CharLimit = 6

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	dui := textinput.New()
	dui.Placeholder = "Due date YYYY-MM-DD (optional)"
	dui.CharLimit = 10

	fi := textinput.New()
	fi.Placeholder = "Filter column..."
	fi.CharLimit = 100

	screen := ScreenLogin
	if c.Session.Token() != "" {
		screen = ScreenResolving
	}

	return &Model{
		container:     c,
		board:         domain.NewBoard(),
		filters:       make(map[domain.Status]string),
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		nameInput:     ni,
		emailInput:    ei,
		passwordInput: pi,
		codeInput:     ci,
		titleInput:    ti,
		descInput:     di,
		dueInput:      dui,
		filterInput:   fi,
		screen:        screen,
		authField:     AuthFieldEmail,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	if m.screen == ScreenResolving {
		return m.resolveIdentity()
	}
	m.emailInput.Focus()
	return textinput.Blink
}

// resolveIdentity returns a command that validates the stored token.
func (m *Model) resolveIdentity() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ResolveIdentityUseCase().Execute(context.Background(), usecase.ResolveIdentityInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIdentityResolved{User: out.User}
	}
}

// login returns a command that authenticates with the server.
func (m *Model) login(email, password, code string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{
			Email:    email,
			Password: password,
			MFACode:  code,
		})
		if err != nil {
			return MsgAuthError{Err: err}
		}
		if out.RequiresMFA {
			return MsgMFACodeRequired{}
		}
		return MsgLoggedIn{User: out.User}
	}
}

// register returns a command that creates an account and logs it in.
func (m *Model) register(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RegisterUseCase().Execute(context.Background(), usecase.RegisterInput{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return MsgAuthError{Err: err}
		}
		return MsgRegistered{User: out.User}
	}
}

// loadBoard returns a command that fetches the board. The sequence number is
// captured at issue time; by the time the response arrives a newer fetch may
// have been issued, in which case the response is dropped.
func (m *Model) loadBoard() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	return func() tea.Msg {
		out, err := m.container.FetchTasksUseCase().Execute(context.Background(), usecase.FetchTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardLoaded{Board: out.Board, Seq: seq}
	}
}

// saveTask returns a command that submits the task form.
func (m *Model) saveTask(draft domain.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SaveTaskUseCase().Execute(context.Background(), usecase.SaveTaskInput{Draft: draft})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskSaved{Task: out.Task, Created: out.Created}
	}
}

// moveTask returns a command that confirms a move already applied to the
// board with the server. The board itself is never touched off the update
// loop; a rejected move comes back as a freshly fetched replacement.
func (m *Model) moveTask(taskID string, to domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{
			TaskID: taskID,
			To:     to,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMoved{Board: out.Board, RolledBack: out.RolledBack}
	}
}

// deleteTask returns a command that deletes a completed task.
func (m *Model) deleteTask(task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{Task: task})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: task.ID}
	}
}

// setupMFA returns a command that requests an enrollment secret.
func (m *Model) setupMFA() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetupMFAUseCase().Execute(context.Background(), usecase.SetupMFAInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgEnrollmentReady{Enrollment: out.Enrollment}
	}
}

// enableMFA returns a command that confirms enrollment with a code.
func (m *Model) enableMFA(code string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.EnableMFAUseCase().Execute(context.Background(), usecase.EnableMFAInput{Code: code})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMFAEnabled{}
	}
}

// disableMFA returns a command that turns off two-factor auth.
func (m *Model) disableMFA(code string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DisableMFAUseCase().Execute(context.Background(), usecase.DisableMFAInput{Code: code})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMFADisabled{}
	}
}

// logout returns a command that ends the session.
func (m *Model) logout(expired bool) tea.Cmd {
	return func() tea.Msg {
		_, _ = m.container.LogoutUseCase().Execute(context.Background(), usecase.LogoutInput{})
		return MsgLoggedOut{SessionExpired: expired}
	}
}

// focusedStatus returns the status of the focused column.
func (m *Model) focusedStatus() domain.Status {
	return columnOrder[m.column]
}

// visibleColumn returns the focused column's tasks after filtering.
func (m *Model) visibleColumn(s domain.Status) []*domain.Task {
	return m.board.FilteredColumn(s, m.filters[s])
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.visibleColumn(m.focusedStatus())
	if len(tasks) == 0 {
		return nil
	}
	i := m.cursors[m.column]
	if i >= len(tasks) {
		i = len(tasks) - 1
	}
	return tasks[i]
}

// clampCursors keeps every column cursor within its visible range.
func (m *Model) clampCursors() {
	for i, s := range columnOrder {
		n := len(m.visibleColumn(s))
		if n == 0 {
			m.cursors[i] = 0
			continue
		}
		if m.cursors[i] >= n {
			m.cursors[i] = n - 1
		}
		if m.cursors[i] < 0 {
			m.cursors[i] = 0
		}
	}
}

// resetAuthInputs clears the login/register form state.
func (m *Model) resetAuthInputs() {
	m.nameInput.Reset()
	m.emailInput.Reset()
	m.passwordInput.Reset()
	m.codeInput.Reset()
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passwordInput.Blur()
	m.codeInput.Blur()
	m.requiresMFA = false
	m.pwChecks = domain.PasswordChecks{}
	m.pwScore = 0
	m.pwAllValid = false
}

// resetFormInputs clears the task form state.
func (m *Model) resetFormInputs() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
	m.editingID = ""
	m.formField = FieldTitle
}

// checkPassword recomputes the strength advisory for the register form.
func (m *Model) checkPassword(password string) {
	out, _ := m.container.CheckPasswordUseCase().Execute(context.Background(), usecase.CheckPasswordInput{Password: password})
	m.pwChecks = out.Checks
	m.pwScore = out.Score
	m.pwAllValid = out.AllValid
}
