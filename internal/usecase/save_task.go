package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// SaveTaskInput contains the draft to submit. An empty draft ID means
// create; a non-empty ID means edit.
type SaveTaskInput struct {
	Draft domain.TaskDraft
}

// SaveTaskOutput contains the created or updated task as returned by the
// server. Created is true for a create submission.
type SaveTaskOutput struct {
	Task    *domain.Task
	Created bool
}

// SaveTask is the use case behind the task form.
type SaveTask struct {
	tasks domain.TaskAPI
	clock domain.Clock
}

// NewSaveTask creates a new SaveTask use case.
func NewSaveTask(tasks domain.TaskAPI, clock domain.Clock) *SaveTask {
	return &SaveTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute validates the draft locally and submits it. A missing title or a
// due date earlier than today is rejected with no server call.
func (uc *SaveTask) Execute(ctx context.Context, in SaveTaskInput) (*SaveTaskOutput, error) {
	if err := in.Draft.Validate(domain.Today(uc.clock)); err != nil {
		return nil, err
	}

	if in.Draft.ID == "" {
		task, err := uc.tasks.Create(ctx, in.Draft)
		if err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}
		return &SaveTaskOutput{Task: task, Created: true}, nil
	}

	patch := domain.TaskPatch{
		Title:       &in.Draft.Title,
		Description: &in.Draft.Description,
	}
	if !in.Draft.DueDate.IsZero() {
		patch.DueDate = &in.Draft.DueDate
	}
	task, err := uc.tasks.Update(ctx, in.Draft.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &SaveTaskOutput{Task: task}, nil
}
