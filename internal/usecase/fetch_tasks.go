package usecase

import (
	"context"
	"fmt"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// FetchTasksInput contains the parameters for fetching the board.
type FetchTasksInput struct{}

// FetchTasksOutput contains the freshly partitioned board.
type FetchTasksOutput struct {
	Board *domain.Board
	Tasks []*domain.Task
}

// FetchTasks is the use case for retrieving all tasks and partitioning them
// into the three status columns.
type FetchTasks struct {
	tasks domain.TaskAPI
}

// NewFetchTasks creates a new FetchTasks use case.
func NewFetchTasks(tasks domain.TaskAPI) *FetchTasks {
	return &FetchTasks{tasks: tasks}
}

// Execute fetches all tasks for the current identity. The result replaces
// any previous board state wholesale; there is no merge.
func (uc *FetchTasks) Execute(ctx context.Context, _ FetchTasksInput) (*FetchTasksOutput, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &FetchTasksOutput{
		Board: domain.PartitionTasks(tasks),
		Tasks: tasks,
	}, nil
}
