package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFixture() *Board {
	return PartitionTasks([]*Task{
		{ID: "a", Title: "Write report", Status: StatusPending},
		{ID: "b", Title: "Review budget", Status: StatusPending},
		{ID: "c", Title: "Plan sprint", Description: "quarterly goals", Status: StatusInProgress},
		{ID: "d", Title: "Ship release", Status: StatusCompleted},
	})
}

func TestPartitionTasks_PreservesFetchOrder(t *testing.T) {
	b := boardFixture()

	pending := b.Column(StatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "b", pending[1].ID)

	assert.Len(t, b.Column(StatusInProgress), 1)
	assert.Len(t, b.Column(StatusCompleted), 1)
	assert.Equal(t, 4, b.Len())
}

func TestPartitionTasks_DropsUnknownStatus(t *testing.T) {
	b := PartitionTasks([]*Task{
		{ID: "a", Title: "Valid", Status: StatusPending},
		{ID: "x", Title: "Bogus", Status: Status("archived")},
	})

	assert.Equal(t, 1, b.Len())
}

func TestPartitionTasks_Idempotent(t *testing.T) {
	tasks := []*Task{
		{ID: "a", Status: StatusPending},
		{ID: "b", Status: StatusInProgress},
	}

	first := PartitionTasks(tasks)
	second := PartitionTasks(tasks)

	for _, s := range AllStatuses() {
		assert.Equal(t, first.Column(s), second.Column(s))
	}
}

func TestBoard_Move_ForwardStep(t *testing.T) {
	b := boardFixture()

	err := b.Move("a", StatusPending, StatusInProgress, 0)
	require.NoError(t, err)

	pending := b.Column(StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)

	inProgress := b.Column(StatusInProgress)
	require.Len(t, inProgress, 2)
	assert.Equal(t, "a", inProgress[0].ID, "task should be inserted at target index")
	assert.Equal(t, StatusInProgress, inProgress[0].Status, "status field should follow the move")
}

func TestBoard_Move_InsertIndexClamped(t *testing.T) {
	b := boardFixture()

	err := b.Move("a", StatusPending, StatusInProgress, 99)
	require.NoError(t, err)

	inProgress := b.Column(StatusInProgress)
	require.Len(t, inProgress, 2)
	assert.Equal(t, "a", inProgress[1].ID)
}

func TestBoard_Move_RejectedTransitionsDoNotMutate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		from Status
		to   Status
	}{
		{"skip a stage", "a", StatusPending, StatusCompleted},
		{"same bucket", "a", StatusPending, StatusPending},
		{"backward", "c", StatusInProgress, StatusPending},
		{"reorder within completed", "d", StatusCompleted, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFixture()
			err := b.Move(tt.id, tt.from, tt.to, 0)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			// Board must be untouched
			fresh := boardFixture()
			for _, s := range AllStatuses() {
				assert.Len(t, b.Column(s), len(fresh.Column(s)))
			}
		})
	}
}

func TestBoard_Move_TaskNotFound(t *testing.T) {
	b := boardFixture()
	err := b.Move("nope", StatusPending, StatusInProgress, 0)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestBoard_FilteredColumn(t *testing.T) {
	b := boardFixture()

	// Case-insensitive match on title
	got := b.FilteredColumn(StatusPending, "REPORT")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// Match on description
	got = b.FilteredColumn(StatusInProgress, "quarterly")
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)

	// Filtering is view-only
	assert.Len(t, b.Column(StatusPending), 2)

	// Empty filter returns the whole column
	assert.Len(t, b.FilteredColumn(StatusPending, ""), 2)
}

func TestBoard_Find(t *testing.T) {
	b := boardFixture()

	task, status := b.Find("c")
	require.NotNil(t, task)
	assert.Equal(t, StatusInProgress, status)

	task, _ = b.Find("missing")
	assert.Nil(t, task)
}
