package models

import (
	"database/sql"
	"time"
)

// User represents a user row.
type User struct {
	ID                  string         `db:"id"` // ULID
	Name                string         `db:"name"`
	Email               string         `db:"email"`
	PasswordHash        string         `db:"password_hash"`
	College             sql.NullString `db:"college"`
	Course              sql.NullString `db:"course"`
	Branch              sql.NullString `db:"branch"`
	Year                sql.NullInt64  `db:"year"`
	PhotoURL            sql.NullString `db:"photo_url"`
	Role                string         `db:"role"`
	ResetToken          sql.NullString `db:"reset_token"`
	ResetTokenExpiresAt sql.NullTime   `db:"reset_token_expires_at"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           sql.NullTime   `db:"deleted_at"`
}

// Task represents a to-do row owned by a user.
type Task struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Text      string       `db:"text"`
	Completed bool         `db:"completed"`
	DueAt     sql.NullTime `db:"due_at"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// ChatMessage represents one row of a user's chat log.
type ChatMessage struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Sender    string         `db:"sender"` // "user" or "bot"
	Text      string         `db:"text"`
	Type      string         `db:"type"` // "text" or "code"
	Language  sql.NullString `db:"language"`
	CreatedAt time.Time      `db:"created_at"`
}

// ContactMessage represents one contact-form row.
type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
