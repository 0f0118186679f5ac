package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/testutil"
)

func TestFetchTasks_Execute_Partitions(t *testing.T) {
	tasks := &testutil.MockTaskAPI{
		Tasks: []*domain.Task{
			{ID: "a", Title: "One", Status: domain.StatusPending},
			{ID: "b", Title: "Two", Status: domain.StatusInProgress},
			{ID: "c", Title: "Three", Status: domain.StatusPending},
			{ID: "d", Title: "Four", Status: domain.StatusCompleted},
		},
	}
	uc := NewFetchTasks(tasks)

	out, err := uc.Execute(context.Background(), FetchTasksInput{})

	require.NoError(t, err)
	assert.Len(t, out.Board.Column(domain.StatusPending), 2)
	assert.Len(t, out.Board.Column(domain.StatusInProgress), 1)
	assert.Len(t, out.Board.Column(domain.StatusCompleted), 1)

	// Server fetch order is preserved within a column
	pending := out.Board.Column(domain.StatusPending)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)
}

func TestFetchTasks_Execute_Idempotent(t *testing.T) {
	tasks := &testutil.MockTaskAPI{
		Tasks: []*domain.Task{
			{ID: "a", Status: domain.StatusPending},
			{ID: "b", Status: domain.StatusCompleted},
		},
	}
	uc := NewFetchTasks(tasks)

	first, err := uc.Execute(context.Background(), FetchTasksInput{})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), FetchTasksInput{})
	require.NoError(t, err)

	for _, s := range domain.AllStatuses() {
		assert.Equal(t, first.Board.Column(s), second.Board.Column(s))
	}
}

func TestFetchTasks_Execute_CreateThenFetchRoundTrip(t *testing.T) {
	api := &testutil.MockTaskAPI{}
	save := NewSaveTask(api, &testutil.MockClock{})

	created, err := save.Execute(context.Background(), SaveTaskInput{
		Draft: domain.TaskDraft{Title: "Round trip", Description: "desc", DueDate: "2099-01-01"},
	})
	require.NoError(t, err)

	api.Tasks = []*domain.Task{created.Task}
	out, err := NewFetchTasks(api).Execute(context.Background(), FetchTasksInput{})
	require.NoError(t, err)

	column := out.Board.Column(created.Task.Status)
	require.Len(t, column, 1)
	assert.Equal(t, "Round trip", column[0].Title)
	assert.Equal(t, "desc", column[0].Description)
	assert.Equal(t, domain.Date("2099-01-01"), column[0].DueDate)
}

func TestFetchTasks_Execute_ServerError(t *testing.T) {
	uc := NewFetchTasks(&testutil.MockTaskAPI{ListErr: assert.AnError})

	_, err := uc.Execute(context.Background(), FetchTasksInput{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list tasks")
}
