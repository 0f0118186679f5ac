package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgIdentityResolved:
		if msg.User == nil {
			m.screen = ScreenLogin
			m.emailInput.Focus()
			return m, textinput.Blink
		}
		m.user = msg.User
		m.screen = ScreenBoard
		return m, m.loadBoard()

	case MsgLoggedIn:
		m.user = msg.User
		m.screen = ScreenBoard
		m.resetAuthInputs()
		return m, m.loadBoard()

	case MsgMFACodeRequired:
		m.requiresMFA = true
		m.authField = AuthFieldCode
		m.emailInput.Blur()
		m.passwordInput.Blur()
		m.codeInput.Reset()
		m.codeInput.Focus()
		m.notice = "Enter the 6-digit code from your authenticator app"
		return m, textinput.Blink

	case MsgRegistered:
		m.user = msg.User
		m.screen = ScreenBoard
		m.resetAuthInputs()
		m.notice = "Welcome, " + msg.User.Name
		return m, m.loadBoard()

	case MsgAuthError:
		var authErr *domain.AuthError
		if errors.As(msg.Err, &authErr) {
			switch authErr.Code {
			case domain.AuthAccountLocked:
				// Lockout outlives the next keypress; keep it on screen
				// until the user submits again.
				m.banner = authErr.Error()
				return m, nil
			case domain.AuthBadMFACode:
				m.err = msg.Err
				m.codeInput.Reset()
				m.codeInput.Focus()
				return m, textinput.Blink
			}
		}
		m.err = msg.Err
		return m, nil

	case MsgBoardLoaded:
		// A newer fetch has been issued since this one; drop the response.
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.board = msg.Board
		m.clampCursors()
		return m, nil

	case MsgTaskSaved:
		m.mode = ModeNormal
		m.resetFormInputs()
		return m, m.loadBoard()

	case MsgTaskMoved:
		if msg.RolledBack {
			m.board = msg.Board
			m.notice = "Move rejected by the server; board reloaded"
			m.clampCursors()
		}
		return m, nil

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, m.loadBoard()

	case MsgEnrollmentReady:
		m.enrollment = msg.Enrollment
		m.codeInput.Reset()
		m.codeInput.Focus()
		return m, textinput.Blink

	case MsgMFAEnabled:
		m.user = m.container.Session.User()
		m.enrollment = nil
		m.codeInput.Reset()
		m.screen = ScreenBoard
		m.notice = "Two-factor authentication enabled"
		return m, nil

	case MsgMFADisabled:
		m.user = m.container.Session.User()
		m.codeInput.Reset()
		m.screen = ScreenBoard
		m.notice = "Two-factor authentication disabled"
		return m, nil

	case MsgLoggedOut:
		m.user = nil
		m.board = domain.NewBoard()
		m.enrollment = nil
		m.screen = ScreenLogin
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.resetAuthInputs()
		m.resetFormInputs()
		m.emailInput.Focus()
		if msg.SessionExpired {
			m.notice = "Session expired, please log in again"
		}
		return m, textinput.Blink

	case MsgError:
		// A rejected token anywhere on an authenticated screen ends the
		// session and falls back to the login form.
		if errors.Is(msg.Err, domain.ErrUnauthorized) && m.screen != ScreenLogin && m.screen != ScreenRegister {
			return m, m.logout(true)
		}
		m.err = msg.Err
		if m.mode == ModeForm && isDraftError(msg.Err) {
			// Keep the form open so the input can be corrected
			return m, nil
		}
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	return m, nil
}

func isDraftError(err error) bool {
	return errors.Is(err, domain.ErrEmptyTitle) || errors.Is(err, domain.ErrDueDateInPast)
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient messages on any key press
	if m.err != nil {
		m.err = nil
	}
	if m.notice != "" {
		m.notice = ""
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenResolving:
		return m, nil
	case ScreenLogin:
		return m.handleLoginKeys(msg)
	case ScreenRegister:
		return m.handleRegisterKeys(msg)
	case ScreenMFA:
		return m.handleMFAKeys(msg)
	case ScreenBoard:
		return m.handleBoardKeys(msg)
	}

	return m, nil
}

// handleLoginKeys handles keys on the login screen.
func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.requiresMFA {
			// Back out of the MFA challenge to the credential fields
			m.requiresMFA = false
			m.codeInput.Reset()
			m.codeInput.Blur()
			m.authField = AuthFieldPassword
			m.passwordInput.Focus()
		}
		return m, nil

	case msg.Type == tea.KeyCtrlR:
		m.screen = ScreenRegister
		m.resetAuthInputs()
		m.authField = AuthFieldName
		m.nameInput.Focus()
		return m, textinput.Blink

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.cycleLoginField(1)
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.cycleLoginField(-1)
		return m, nil

	case msg.Type == tea.KeyEnter:
		email := m.emailInput.Value()
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			return m, nil
		}
		code := ""
		if m.requiresMFA {
			code = m.codeInput.Value()
			if !usecase.ValidMFACode(code) {
				m.err = domain.ErrInvalidMFACode
				return m, nil
			}
		}
		m.banner = ""
		return m, m.login(email, password, code)
	}

	var cmd tea.Cmd
	switch m.authField {
	case AuthFieldEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case AuthFieldPassword:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	case AuthFieldCode:
		m.codeInput, cmd = m.codeInput.Update(msg)
	case AuthFieldName:
		// Not present on the login screen
	}
	return m, cmd
}

// cycleLoginField moves focus between the login inputs.
func (m *Model) cycleLoginField(dir int) {
	fields := []AuthField{AuthFieldEmail, AuthFieldPassword}
	if m.requiresMFA {
		fields = append(fields, AuthFieldCode)
	}
	cur := 0
	for i, f := range fields {
		if f == m.authField {
			cur = i
			break
		}
	}
	next := (cur + dir + len(fields)) % len(fields)
	m.authField = fields[next]

	m.emailInput.Blur()
	m.passwordInput.Blur()
	m.codeInput.Blur()
	switch m.authField {
	case AuthFieldEmail:
		m.emailInput.Focus()
	case AuthFieldPassword:
		m.passwordInput.Focus()
	case AuthFieldCode:
		m.codeInput.Focus()
	case AuthFieldName:
	}
}

// handleRegisterKeys handles keys on the register screen.
func (m *Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenLogin
		m.resetAuthInputs()
		m.authField = AuthFieldEmail
		m.emailInput.Focus()
		return m, textinput.Blink

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.cycleRegisterField(1)
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.cycleRegisterField(-1)
		return m, nil

	case msg.Type == tea.KeyEnter:
		name := m.nameInput.Value()
		email := m.emailInput.Value()
		password := m.passwordInput.Value()
		if name == "" || email == "" || password == "" {
			return m, nil
		}
		if !m.pwAllValid {
			m.err = domain.ErrWeakPassword
			return m, nil
		}
		m.banner = ""
		return m, m.register(name, email, password)
	}

	var cmd tea.Cmd
	switch m.authField {
	case AuthFieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case AuthFieldEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case AuthFieldPassword:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		m.checkPassword(m.passwordInput.Value())
	case AuthFieldCode:
		// Not present on the register screen
	}
	return m, cmd
}

// cycleRegisterField moves focus between the register inputs.
func (m *Model) cycleRegisterField(dir int) {
	fields := []AuthField{AuthFieldName, AuthFieldEmail, AuthFieldPassword}
	cur := 0
	for i, f := range fields {
		if f == m.authField {
			cur = i
			break
		}
	}
	next := (cur + dir + len(fields)) % len(fields)
	m.authField = fields[next]

	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passwordInput.Blur()
	switch m.authField {
	case AuthFieldName:
		m.nameInput.Focus()
	case AuthFieldEmail:
		m.emailInput.Focus()
	case AuthFieldPassword:
		m.passwordInput.Focus()
	case AuthFieldCode:
	}
}

// handleMFAKeys handles keys on the two-factor screen.
func (m *Model) handleMFAKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenBoard
		m.enrollment = nil
		m.codeInput.Reset()
		m.codeInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		code := m.codeInput.Value()
		if !usecase.ValidMFACode(code) {
			m.err = domain.ErrInvalidMFACode
			return m, nil
		}
		if m.user != nil && m.user.TwoFactorEnabled {
			return m, m.disableMFA(code)
		}
		return m, m.enableMFA(code)
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

// handleBoardKeys handles keys on the board screen, routed by mode.
func (m *Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal board mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursors[m.column] > 0 {
			m.cursors[m.column]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursors[m.column] < len(m.visibleColumn(m.focusedStatus()))-1 {
			m.cursors[m.column]++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.column < len(columnOrder)-1 {
			m.column++
		}
		return m, nil

	case key.Matches(msg, m.keys.Move):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		from := m.focusedStatus()
		to, ok := from.Next()
		if !ok {
			m.notice = "Completed tasks cannot be moved"
			return m, nil
		}
		// Apply the move here, on the update-loop goroutine that owns the
		// board; the command only confirms it with the server.
		if err := m.board.Move(task.ID, from, to, len(m.board.Column(to))); err != nil {
			m.err = err
			return m, nil
		}
		m.clampCursors()
		return m, m.moveTask(task.ID, to)

	case key.Matches(msg, m.keys.New):
		m.mode = ModeForm
		m.resetFormInputs()
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeForm
		m.resetFormInputs()
		m.editingID = task.ID
		m.titleInput.SetValue(task.Title)
		m.descInput.SetValue(task.Description)
		m.dueInput.SetValue(string(task.DueDate))
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		if !task.Deletable() {
			m.err = domain.ErrNotDeletable
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadBoard()

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeFilter
		m.filterInput.SetValue(m.filters[m.focusedStatus()])
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Logout):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmLogout
		return m, nil

	case key.Matches(msg, m.keys.MFA):
		m.screen = ScreenMFA
		m.codeInput.Reset()
		m.codeInput.Focus()
		if m.user != nil && !m.user.TwoFactorEnabled {
			return m, tea.Batch(m.setupMFA(), textinput.Blink)
		}
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleFilterMode handles keys in column filter mode.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		delete(m.filters, m.focusedStatus())
		m.clampCursors()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filters[m.focusedStatus()] = m.filterInput.Value()
	m.clampCursors()
	return m, cmd
}

// handleFormMode handles keys in the task form.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetFormInputs()
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.formField = m.formField.Next()
		m.focusFormField()
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.formField = m.formField.Prev()
		m.focusFormField()
		return m, nil

	case msg.Type == tea.KeyEnter:
		draft := domain.TaskDraft{
			ID:          m.editingID,
			Title:       m.titleInput.Value(),
			Description: m.descInput.Value(),
			DueDate:     domain.Date(m.dueInput.Value()),
		}
		return m, m.saveTask(draft)
	}

	var cmd tea.Cmd
	switch m.formField {
	case FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case FieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case FieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

// focusFormField focuses the current field in the task form.
func (m *Model) focusFormField() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()

	switch m.formField {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldDesc:
		m.descInput.Focus()
	case FieldDue:
		m.dueInput.Focus()
	}
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			task, _ := m.board.Find(m.confirmTaskID)
			if task == nil {
				m.mode = ModeNormal
				m.confirmAction = ConfirmNone
				return m, nil
			}
			return m, m.deleteTask(task)
		case ConfirmLogout:
			m.mode = ModeNormal
			m.confirmAction = ConfirmNone
			return m, m.logout(false)
		}
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}
