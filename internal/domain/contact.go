package domain

import (
	"strings"
	"time"
)

// ContactMessage is one message submitted through the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Validate validates the contact message
func (c *ContactMessage) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidInputError("name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return NewInvalidInputError("email is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		return NewInvalidInputError("message is required")
	}
	return nil
}
