package models

import "time"

// Status is a closed enumeration. Only the three declared values are
// valid; anything else coming over the wire must be rejected with
// ParseStatus before it reaches a Task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ParseStatus maps an external token to a Status. Unknown tokens
// report ok == false and must be treated as a decode error.
func ParseStatus(token string) (Status, bool) {
	switch s := Status(token); s {
	case StatusTodo, StatusInProgress, StatusDone:
		return s, true
	}
	return "", false
}

type Task struct {
	ID string
	// Title is never empty or whitespace-only in a stored task.
	Title string
	// Description is optional; the empty string means absent.
	Description string
	Status      Status
	CreatedAt   time.Time
	// UpdatedAt never precedes CreatedAt and never decreases.
	UpdatedAt time.Time
}
