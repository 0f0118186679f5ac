package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// AdvanceStatusInput contains the task to advance.
type AdvanceStatusInput struct {
	Task *domain.Task
}

// AdvanceStatusOutput contains the updated task. Advanced is false when the
// task was already completed and nothing happened.
type AdvanceStatusOutput struct {
	Task     *domain.Task
	Advanced bool
}

// AdvanceStatus is the use case for the convenience one-step transition
// (pending→in-progress, in-progress→completed).
type AdvanceStatus struct {
	tasks domain.TaskAPI
}

// NewAdvanceStatus creates a new AdvanceStatus use case.
func NewAdvanceStatus(tasks domain.TaskAPI) *AdvanceStatus {
	return &AdvanceStatus{tasks: tasks}
}

// Execute moves the task one step forward. A completed task is a no-op,
// not an error, and no server call is made.
func (uc *AdvanceStatus) Execute(ctx context.Context, in AdvanceStatusInput) (*AdvanceStatusOutput, error) {
	next, ok := in.Task.Status.Next()
	if !ok {
		return &AdvanceStatusOutput{Task: in.Task}, nil
	}

	updated, err := uc.tasks.Update(ctx, in.Task.ID, domain.TaskPatch{Status: &next})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &AdvanceStatusOutput{Task: updated, Advanced: true}, nil
}
