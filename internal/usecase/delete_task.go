package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// DeleteTaskInput contains the task to delete.
type DeleteTaskInput struct {
	Task *domain.Task
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct{}

// DeleteTask is the use case for deleting a completed task. The explicit
// user confirmation step lives in the callers (TUI confirm dialog, CLI
// prompt); this use case enforces the status rule.
type DeleteTask struct {
	tasks domain.TaskAPI
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskAPI) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute deletes the task. Non-completed tasks are rejected locally
// without any network call.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if !in.Task.Deletable() {
		return nil, domain.ErrNotDeletable
	}

	if err := uc.tasks.Delete(ctx, in.Task.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return &DeleteTaskOutput{}, nil
}
