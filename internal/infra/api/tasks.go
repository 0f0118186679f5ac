package api

import (
	"context"
	"net/http"

	"github.com/mvidalg/taskdeck/internal/domain"
)

// Ensure Client implements domain.TaskAPI.
var _ domain.TaskAPI = (*Client)(nil)

type createTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	DueDate     domain.Date `json:"dueDate,omitempty"`
}

// List retrieves all tasks for the current identity in server order.
func (c *Client) List(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create submits a new task; the server assigns the ID and initial status.
func (c *Client) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	body := createTaskRequest{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
	}
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update to a task.
func (c *Client) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}
