package domain

import (
	"strings"
	"time"
)

// Role is a user's authorization level.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	College      string
	Course       string
	Branch       string
	Year         int
	PhotoURL     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with the default student role. The caller supplies
// an already-hashed password.
func NewUser(id, name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           id,
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Role:         RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewInvalidInputError("name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewInvalidInputError("email is required")
	}
	if u.PasswordHash == "" {
		return NewInvalidInputError("password is required")
	}
	if !ValidRole(string(u.Role)) {
		return NewInvalidInputError("invalid role")
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
