package repository

import (
	"context"
	"fmt"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, message *domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error)
}

type sqlxContactRepository struct {
	db DBTX
}

// NewSQLXContactRepository creates a new instance of sqlxContactRepository.
func NewSQLXContactRepository(db *sqlx.DB) ContactRepository {
	return &sqlxContactRepository{db: db}
}

// CreateContactMessage inserts one contact row.
func (r *sqlxContactRepository) CreateContactMessage(ctx context.Context, message *domain.ContactMessage) error {
	m := &models.ContactMessage{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: time.Now(),
	}
	query := `INSERT INTO contacts (id, name, email, message, created_at)
	          VALUES (:id, :name, :email, :message, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns all submissions, newest first.
func (r *sqlxContactRepository) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	var rows []models.ContactMessage
	query := `SELECT id, name, email, message, created_at FROM contacts ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	messages := make([]*domain.ContactMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, &domain.ContactMessage{
			ID:        rows[i].ID,
			Name:      rows[i].Name,
			Email:     rows[i].Email,
			Message:   rows[i].Message,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return messages, nil
}
