package domain

// Board is the three-column partition of a user's tasks, keyed by status.
// Column order within a status reflects server fetch order until a local
// move reorders it.
type Board struct {
	columns map[Status][]*Task
}

// NewBoard creates an empty board with all columns initialized.
func NewBoard() *Board {
	b := &Board{columns: make(map[Status][]*Task, len(AllStatuses()))}
	for _, s := range AllStatuses() {
		b.columns[s] = nil
	}
	return b
}

// PartitionTasks builds a board from a fetched task list, preserving order.
// Tasks with an unknown status are dropped rather than invented a column.
func PartitionTasks(tasks []*Task) *Board {
	b := NewBoard()
	for _, t := range tasks {
		if !t.Status.IsValid() {
			continue
		}
		b.columns[t.Status] = append(b.columns[t.Status], t)
	}
	return b
}

// Column returns the ordered tasks in the given status column.
func (b *Board) Column(s Status) []*Task {
	return b.columns[s]
}

// FilteredColumn returns the tasks in a column matching a case-insensitive
// free-text filter. Filtering is view-only and never mutates the board.
func (b *Board) FilteredColumn(s Status, filter string) []*Task {
	if filter == "" {
		return b.columns[s]
	}
	var out []*Task
	for _, t := range b.columns[s] {
		if t.Matches(filter) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the total number of tasks on the board.
func (b *Board) Len() int {
	n := 0
	for _, col := range b.columns {
		n += len(col)
	}
	return n
}

// Find returns the task with the given ID and its column, or nil if absent.
func (b *Board) Find(id string) (*Task, Status) {
	for _, s := range AllStatuses() {
		for _, t := range b.columns[s] {
			if t.ID == id {
				return t, s
			}
		}
	}
	return nil, ""
}

// Move applies a status transition locally: the task is removed from the
// source column and inserted at index in the destination column, and its
// status field is updated. The transition must be a single forward step;
// anything else (same column, backward, skipping a stage, unknown task)
// is rejected before any mutation.
func (b *Board) Move(taskID string, from, to Status, index int) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidTransition
	}

	src := b.columns[from]
	pos := -1
	for i, t := range src {
		if t.ID == taskID {
			pos = i
			break
		}
	}
	if pos == -1 {
		return ErrTaskNotFound
	}

	task := src[pos]
	b.columns[from] = append(src[:pos:pos], src[pos+1:]...)

	dst := b.columns[to]
	if index < 0 {
		index = 0
	}
	if index > len(dst) {
		index = len(dst)
	}
	dst = append(dst, nil)
	copy(dst[index+1:], dst[index:])
	dst[index] = task
	b.columns[to] = dst

	task.Status = to
	return nil
}
