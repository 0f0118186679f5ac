package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// MoveTaskInput contains the parameters for confirming a board move.
// The caller has already applied the transition locally via Board.Move,
// on the goroutine that owns the board.
type MoveTaskInput struct {
	TaskID string
	To     domain.Status
}

// MoveTaskOutput reports the confirmation result. On success Board is nil
// and the caller's optimistic state stands. When the server rejected the
// move, Board is a freshly fetched replacement and RolledBack is true.
type MoveTaskOutput struct {
	Board      *domain.Board
	RolledBack bool
}

// MoveTask is the use case for persisting a drag-style status transition.
type MoveTask struct {
	tasks domain.TaskAPI
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(tasks domain.TaskAPI) *MoveTask {
	return &MoveTask{tasks: tasks}
}

// Execute asks the server to persist the new status. If the server call
// fails, the whole board is re-fetched to restore a consistent view; there
// is no fine-grained rollback, so other local changes in the window are
// discarded.
func (uc *MoveTask) Execute(ctx context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	status := in.To
	if _, err := uc.tasks.Update(ctx, in.TaskID, domain.TaskPatch{Status: &status}); err != nil {
		fresh, listErr := uc.tasks.List(ctx)
		if listErr != nil {
			return nil, errors.Join(fmt.Errorf("update task: %w", err), fmt.Errorf("refetch: %w", listErr))
		}
		return &MoveTaskOutput{
			Board:      domain.PartitionTasks(fresh),
			RolledBack: true,
		}, nil
	}

	return &MoveTaskOutput{}, nil
}
