package domain

import (
	"strings"
	"time"
)

// Task is a user-owned to-do item.
type Task struct {
	ID        string
	UserID    string
	Text      string
	Completed bool
	DueAt     time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the task
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return NewInvalidInputError("task text is required")
	}
	return nil
}

// OwnedBy reports whether the task belongs to the given user. Handlers call
// this before any mutation or deletion.
func (t *Task) OwnedBy(userID string) bool {
	return t.UserID == userID
}
