// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"strings"
)

// dateLen is the length of an ISO calendar date (YYYY-MM-DD).
const dateLen = 10

// Date is a calendar date in fixed-width ISO form (YYYY-MM-DD).
// The server may send a full timestamp; the time part is dropped on decode.
// Because both operands are zero-padded, plain string comparison orders
// dates correctly at day granularity.
type Date string

// Before returns true if d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// IsZero returns true if no date is set.
func (d Date) IsZero() bool {
	return d == ""
}

// UnmarshalJSON truncates ISO timestamps to day granularity.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if len(s) > dateLen {
		s = s[:dateLen]
	}
	*d = Date(s)
	return nil
}

// Task represents a single task on the board.
// The ID is assigned by the server; the wire name is "_id".
type Task struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     Date   `json:"dueDate,omitempty"`
	Status      Status `json:"status"`
}

// Deletable returns true if the task may be deleted.
// Only completed tasks can be removed; deletion of active tasks is disallowed.
func (t *Task) Deletable() bool {
	return t.Status == StatusCompleted
}

// Matches reports whether the task matches a case-insensitive free-text
// filter against title or description. An empty filter matches everything.
func (t *Task) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(t.Title), f) ||
		strings.Contains(strings.ToLower(t.Description), f)
}

// TaskDraft holds the editable fields of a task before submission.
// An empty ID means create; a non-empty ID means edit.
type TaskDraft struct {
	ID          string
	Title       string
	Description string
	DueDate     Date
}

// Validate checks the draft against local rules: the title must be non-empty
// and the due date, when present, must not be earlier than today.
// Validation failures never reach the server.
func (d *TaskDraft) Validate(today Date) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !d.DueDate.IsZero() && d.DueDate.Before(today) {
		return ErrDueDateInPast
	}
	return nil
}

// TaskPatch carries a partial task update for PUT /tasks/:id.
// Nil fields are omitted from the request body.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *Date   `json:"dueDate,omitempty"`
	Status      *Status `json:"status,omitempty"`
}
