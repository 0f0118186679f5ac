package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mvidalg/taskdeck/internal/app"
	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/session"
	"github.com/mvidalg/taskdeck/internal/testutil"
)

// newTestModel builds a Model wired to mocks, sized, and showing the board.
func newTestModel(t *testing.T, auth *testutil.MockAuthAPI, tasks *testutil.MockTaskAPI) *Model {
	t.Helper()

	sess := session.New(&testutil.MockTokenStore{}, domain.NopLogger{})
	c := app.NewWithDeps(nil, auth, tasks, sess, &testutil.MockClock{}, domain.NopLogger{})

	m := New(c)
	m.width = 120
	m.height = 40
	m.screen = ScreenBoard
	m.user = &domain.User{ID: "u1", Name: "Dana", Email: "dana@example.com"}
	return m
}

func boardOf(tasks ...*domain.Task) *domain.Board {
	return domain.PartitionTasks(tasks)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func asModel(t *testing.T, tm tea.Model) *Model {
	t.Helper()
	m, ok := tm.(*Model)
	require.True(t, ok, "Update should return *Model")
	return m
}
