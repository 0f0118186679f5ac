package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Before(t *testing.T) {
	assert.True(t, Date("2026-08-29").Before("2026-08-30"))
	assert.False(t, Date("2026-08-30").Before("2026-08-30"))
	assert.False(t, Date("2026-09-01").Before("2026-08-30"))
	// Zero-padded fixed-width form keeps lexicographic order correct across months
	assert.True(t, Date("2026-09-30").Before("2026-10-01"))
}

func TestDate_UnmarshalJSON_TruncatesTimestamps(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"_id":"1","title":"x","dueDate":"2026-08-30T15:04:05.000Z","status":"pending"}`), &task)
	require.NoError(t, err)
	assert.Equal(t, Date("2026-08-30"), task.DueDate)
}

func TestTask_Deletable(t *testing.T) {
	assert.False(t, (&Task{Status: StatusPending}).Deletable())
	assert.False(t, (&Task{Status: StatusInProgress}).Deletable())
	assert.True(t, (&Task{Status: StatusCompleted}).Deletable())
}

func TestTask_Matches(t *testing.T) {
	task := &Task{Title: "Quarterly Report", Description: "Numbers for Q3"}

	assert.True(t, task.Matches(""))
	assert.True(t, task.Matches("quarterly"))
	assert.True(t, task.Matches("REPORT"))
	assert.True(t, task.Matches("q3"))
	assert.False(t, task.Matches("budget"))
}

func TestTaskDraft_Validate(t *testing.T) {
	today := Date("2026-08-30")

	tests := []struct {
		name    string
		draft   TaskDraft
		wantErr error
	}{
		{"valid without due date", TaskDraft{Title: "Task"}, nil},
		{"valid due today", TaskDraft{Title: "Task", DueDate: "2026-08-30"}, nil},
		{"valid due later", TaskDraft{Title: "Task", DueDate: "2026-09-01"}, nil},
		{"empty title", TaskDraft{Title: ""}, ErrEmptyTitle},
		{"whitespace title", TaskDraft{Title: "   "}, ErrEmptyTitle},
		{"due date in the past", TaskDraft{Title: "Task", DueDate: "2026-08-29"}, ErrDueDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate(today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClassifyAuthMessage(t *testing.T) {
	assert.Equal(t, AuthAccountLocked, ClassifyAuthMessage("Account blocked after too many attempts"))
	assert.Equal(t, AuthAccountLocked, ClassifyAuthMessage("user is locked"))
	assert.Equal(t, AuthInvalidCredentials, ClassifyAuthMessage("Authentication failed"))
	assert.Equal(t, AuthUnknown, ClassifyAuthMessage("something else went wrong"))
}
