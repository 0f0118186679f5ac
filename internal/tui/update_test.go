package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/testutil"
)

func TestUpdate_MsgBoardLoaded(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.fetchSeq = 1

	board := boardOf(
		&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending},
	)

	result := asModel(t, mustUpdate(m, MsgBoardLoaded{Board: board, Seq: 1}))
	assert.Same(t, board, result.board)
}

func TestUpdate_MsgBoardLoaded_StaleResponseDropped(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	current := boardOf(&domain.Task{ID: "cur", Title: "Current", Status: domain.StatusPending})
	m.board = current
	m.fetchSeq = 3

	stale := boardOf(&domain.Task{ID: "old", Title: "Old", Status: domain.StatusPending})

	result := asModel(t, mustUpdate(m, MsgBoardLoaded{Board: stale, Seq: 2}))
	assert.Same(t, current, result.board, "a response from an older fetch must not replace the board")
}

func TestUpdate_MsgTaskMoved_RolledBackShowsNotice(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	fresh := boardOf(&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending})

	result := asModel(t, mustUpdate(m, MsgTaskMoved{Board: fresh, RolledBack: true}))
	assert.Same(t, fresh, result.board)
	assert.NotEmpty(t, result.notice)
}

func TestUpdate_MsgAuthError_AccountLockedBannerSurvivesKeypress(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.screen = ScreenLogin

	locked := &domain.AuthError{Code: domain.AuthAccountLocked, Message: "Account locked. Try again later"}
	result := asModel(t, mustUpdate(m, MsgAuthError{Err: locked}))
	assert.Equal(t, "Account locked. Try again later", result.banner)
	assert.NoError(t, result.err)

	// A keypress clears transient messages but not the lockout banner
	result = asModel(t, mustUpdate(result, keyPress('x')))
	assert.Equal(t, "Account locked. Try again later", result.banner)
	assert.Contains(t, result.View(), "Account locked")
}

func TestUpdate_MsgAuthError_BadMFACodeResetsCodeInput(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.screen = ScreenLogin
	m.requiresMFA = true
	m.codeInput.SetValue("999999")
	m.codeInput.Focus()

	rejected := &domain.AuthError{Code: domain.AuthBadMFACode, Message: "Invalid verification code"}
	result := asModel(t, mustUpdate(m, MsgAuthError{Err: rejected}))

	assert.Empty(t, result.codeInput.Value(), "a rejected code is cleared for re-entry")
	assert.True(t, result.codeInput.Focused())
	assert.Error(t, result.err)
	assert.Empty(t, result.banner)
}

func TestUpdate_MsgError_UnauthorizedLogsOut(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.container.Session.SetToken("stale-token")

	_, cmd := m.Update(MsgError{Err: domain.ErrUnauthorized})
	require.NotNil(t, cmd)

	msg := cmd()
	out, ok := msg.(MsgLoggedOut)
	require.True(t, ok, "an unauthorized error should trigger a logout command")
	assert.True(t, out.SessionExpired)
	assert.Empty(t, m.container.Session.Token())
}

func TestUpdate_MsgLoggedOut(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending})

	result := asModel(t, mustUpdate(m, MsgLoggedOut{SessionExpired: true}))
	assert.Equal(t, ScreenLogin, result.screen)
	assert.Nil(t, result.user)
	assert.Zero(t, result.board.Len())
	assert.NotEmpty(t, result.notice)
}

func TestUpdate_MsgMFACodeRequired(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.screen = ScreenLogin

	result := asModel(t, mustUpdate(m, MsgMFACodeRequired{}))
	assert.True(t, result.requiresMFA)
	assert.Equal(t, AuthFieldCode, result.authField)
}

func TestUpdate_MsgIdentityResolved(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
		m.screen = ScreenResolving

		user := &domain.User{ID: "u1", Name: "Dana"}
		result := asModel(t, mustUpdate(m, MsgIdentityResolved{User: user}))
		assert.Equal(t, ScreenBoard, result.screen)
		assert.Same(t, user, result.user)
	})

	t.Run("no session", func(t *testing.T) {
		m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
		m.screen = ScreenResolving

		result := asModel(t, mustUpdate(m, MsgIdentityResolved{}))
		assert.Equal(t, ScreenLogin, result.screen)
	})
}

func TestHandleNormalMode_MoveForward(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.board = boardOf(
		&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending},
		&domain.Task{ID: "b", Title: "Two", Status: domain.StatusInProgress},
	)

	_, cmd := m.Update(keyPress('m'))
	require.NotNil(t, cmd)

	// The board is updated on the keypress itself, before the command ever
	// runs; the command goroutine must never write the shared board.
	assert.Empty(t, m.board.Column(domain.StatusPending))
	require.Len(t, m.board.Column(domain.StatusInProgress), 2)
	assert.Empty(t, api.UpdateCalls)

	msg := cmd()
	moved, ok := msg.(MsgTaskMoved)
	require.True(t, ok)
	assert.False(t, moved.RolledBack)
	assert.Nil(t, moved.Board)

	require.Len(t, api.UpdateCalls, 1)
	assert.Equal(t, "a", api.UpdateCalls[0].ID)
	require.NotNil(t, api.UpdateCalls[0].Patch.Status)
	assert.Equal(t, domain.StatusInProgress, *api.UpdateCalls[0].Patch.Status)
}

func TestHandleNormalMode_MoveRejectedByServerReloadsBoard(t *testing.T) {
	api := &testutil.MockTaskAPI{
		UpdateErr: assert.AnError,
		Tasks:     []*domain.Task{{ID: "a", Title: "One", Status: domain.StatusPending}},
	}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.board = boardOf(&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending})

	_, cmd := m.Update(keyPress('m'))
	require.NotNil(t, cmd)

	moved, ok := cmd().(MsgTaskMoved)
	require.True(t, ok)
	require.True(t, moved.RolledBack)

	result := asModel(t, mustUpdate(m, moved))
	assert.Same(t, moved.Board, result.board)
	require.Len(t, result.board.Column(domain.StatusPending), 1)
	assert.NotEmpty(t, result.notice)
}

func TestHandleNormalMode_MoveFromCompletedColumnBlocked(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.board = boardOf(&domain.Task{ID: "c", Title: "Done", Status: domain.StatusCompleted})
	m.column = 2

	_, cmd := m.Update(keyPress('m'))
	assert.Nil(t, cmd)
	assert.Empty(t, api.UpdateCalls)
	assert.NotEmpty(t, m.notice)
}

func TestHandleNormalMode_DeleteRequiresCompleted(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(&domain.Task{ID: "a", Title: "One", Status: domain.StatusPending})

	result := asModel(t, mustUpdate(m, keyPress('d')))
	assert.Equal(t, ModeNormal, result.mode, "confirm dialog must not open for a pending task")
	assert.ErrorIs(t, result.err, domain.ErrNotDeletable)
}

func TestHandleNormalMode_DeleteCompletedOpensConfirm(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(&domain.Task{ID: "c", Title: "Done", Status: domain.StatusCompleted})
	m.column = 2

	result := asModel(t, mustUpdate(m, keyPress('d')))
	assert.Equal(t, ModeConfirm, result.mode)
	assert.Equal(t, ConfirmDelete, result.confirmAction)
	assert.Equal(t, "c", result.confirmTaskID)
}

func TestHandleConfirmMode_DeleteConfirmed(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.board = boardOf(&domain.Task{ID: "c", Title: "Done", Status: domain.StatusCompleted})
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDelete
	m.confirmTaskID = "c"

	_, cmd := m.Update(keyPress('y'))
	require.NotNil(t, cmd)

	msg := cmd()
	deleted, ok := msg.(MsgTaskDeleted)
	require.True(t, ok)
	assert.Equal(t, "c", deleted.TaskID)
	assert.Equal(t, []string{"c"}, api.DeleteCalls)
}

func TestHandleConfirmMode_Cancelled(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.board = boardOf(&domain.Task{ID: "c", Title: "Done", Status: domain.StatusCompleted})
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDelete
	m.confirmTaskID = "c"

	result := asModel(t, mustUpdate(m, keyPress('n')))
	assert.Equal(t, ModeNormal, result.mode)
	assert.Equal(t, ConfirmNone, result.confirmAction)
	assert.Empty(t, api.DeleteCalls)
}

func TestHandleFilterMode_NarrowsColumn(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(
		&domain.Task{ID: "a", Title: "Write report", Status: domain.StatusPending},
		&domain.Task{ID: "b", Title: "Fix bug", Status: domain.StatusPending},
	)
	m.mode = ModeFilter
	m.filterInput.Focus()

	for _, r := range "report" {
		mustUpdate(m, keyPress(r))
	}

	visible := m.visibleColumn(domain.StatusPending)
	require.Len(t, visible, 1)
	assert.Equal(t, "a", visible[0].ID)
	// Underlying board is untouched
	assert.Len(t, m.board.Column(domain.StatusPending), 2)
}

func TestHandleFilterMode_EscapeClears(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(&domain.Task{ID: "a", Title: "Write report", Status: domain.StatusPending})
	m.mode = ModeFilter
	m.filters[domain.StatusPending] = "zzz"

	result := asModel(t, mustUpdate(m, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, ModeNormal, result.mode)
	assert.Empty(t, result.filters[domain.StatusPending])
	assert.Len(t, result.visibleColumn(domain.StatusPending), 1)
}

func TestHandleFormMode_SubmitCreates(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	m := newTestModel(t, &testutil.MockAuthAPI{}, api)
	m.mode = ModeForm
	m.titleInput.SetValue("New thing")
	m.dueInput.SetValue("2099-01-01")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(MsgTaskSaved)
	require.True(t, ok)
	assert.True(t, saved.Created)

	require.Len(t, api.CreateCalls, 1)
	assert.Equal(t, "New thing", api.CreateCalls[0].Title)
	assert.Equal(t, domain.Date("2099-01-01"), api.CreateCalls[0].DueDate)
}

func TestHandleFormMode_ValidationErrorKeepsFormOpen(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.mode = ModeForm
	m.titleInput.SetValue("Edited")

	result := asModel(t, mustUpdate(m, MsgError{Err: domain.ErrDueDateInPast}))
	assert.Equal(t, ModeForm, result.mode)
	assert.ErrorIs(t, result.err, domain.ErrDueDateInPast)
	assert.Equal(t, "Edited", result.titleInput.Value())
}

func TestHandleNormalMode_EditPrefillsForm(t *testing.T) {
	m := newTestModel(t, &testutil.MockAuthAPI{}, &testutil.MockTaskAPI{})
	m.board = boardOf(&domain.Task{
		ID: "a", Title: "One", Description: "first", DueDate: "2099-05-01",
		Status: domain.StatusPending,
	})

	result := asModel(t, mustUpdate(m, keyPress('e')))
	assert.Equal(t, ModeForm, result.mode)
	assert.Equal(t, "a", result.editingID)
	assert.Equal(t, "One", result.titleInput.Value())
	assert.Equal(t, "first", result.descInput.Value())
	assert.Equal(t, "2099-05-01", result.dueInput.Value())
}

func TestHandleMFAKeys_RejectsMalformedCode(t *testing.T) {
	auth := &testutil.MockAuthAPI{}
	m := newTestModel(t, auth, &testutil.MockTaskAPI{})
	m.screen = ScreenMFA
	m.enrollment = &domain.MFAEnrollment{Secret: "S3CRET"}
	m.codeInput.SetValue("12ab")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, domain.ErrInvalidMFACode)
	assert.Empty(t, auth.EnableCodes)
}

func TestHandleMFAKeys_EnableWithValidCode(t *testing.T) {
	auth := &testutil.MockAuthAPI{}
	m := newTestModel(t, auth, &testutil.MockTaskAPI{})
	m.container.Session.SetUser(&domain.User{ID: "u1", Name: "Dana"})
	m.screen = ScreenMFA
	m.enrollment = &domain.MFAEnrollment{Secret: "S3CRET"}
	m.codeInput.SetValue("123456")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(MsgMFAEnabled)
	require.True(t, ok)
	assert.Equal(t, []string{"123456"}, auth.EnableCodes)
}

// mustUpdate runs Update and returns the resulting model, discarding the cmd.
func mustUpdate(m *Model, msg tea.Msg) tea.Model {
	updated, _ := m.Update(msg)
	return updated
}
