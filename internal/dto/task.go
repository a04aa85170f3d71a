package dto

import "time"

// TaskRequest is the body for creating or updating a task.
type TaskRequest struct {
	Text      string     `json:"text"`
	Completed *bool      `json:"completed,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}

// TaskResponse is one task row.
type TaskResponse struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
