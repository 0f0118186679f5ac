package domain

// Status represents the lifecycle state of a task on the board.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not yet picked up
	StatusInProgress Status = "in-progress" // Being worked on
	StatusCompleted  Status = "completed"   // Done; the only deletable state
)

// AllStatuses returns all statuses in board column order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
	}
}

// transitions defines the allowed status transitions.
// Flow is strictly forward: pending → in-progress → completed.
// No stage may be skipped and completed tasks never move again.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// Next returns the next status in the forward flow and true,
// or the same status and false if no further transition exists.
func (s Status) Next() (Status, bool) {
	allowed, ok := transitions[s]
	if !ok || len(allowed) == 0 {
		return s, false
	}
	return allowed[0], true
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
