package repository

import (
	"context"
	"fmt"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository/models"
	"easyway/internal/util"

	"github.com/jmoiron/sqlx"
)

// ChatRepository persists per-user chat logs. History is keyed by user only;
// there is no shared session state.
type ChatRepository interface {
	AppendMessage(ctx context.Context, message *domain.ChatMessage) error
	ListMessages(ctx context.Context, userID string) ([]*domain.ChatMessage, error)
	LastMessages(ctx context.Context, userID string, n int) ([]*domain.ChatMessage, error)
	ClearMessages(ctx context.Context, userID string) error
}

type sqlxChatRepository struct {
	db DBTX
}

// NewSQLXChatRepository creates a new instance of sqlxChatRepository.
func NewSQLXChatRepository(db *sqlx.DB) ChatRepository {
	return &sqlxChatRepository{db: db}
}

func toDomainChatMessage(m *models.ChatMessage) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Sender:    domain.ChatSender(m.Sender),
		Text:      m.Text,
		Type:      domain.ChatMessageType(m.Type),
		Language:  util.NullStringToString(m.Language),
		CreatedAt: m.CreatedAt,
	}
}

// AppendMessage inserts one chat log row.
func (r *sqlxChatRepository) AppendMessage(ctx context.Context, message *domain.ChatMessage) error {
	m := &models.ChatMessage{
		ID:        message.ID,
		UserID:    message.UserID,
		Sender:    string(message.Sender),
		Text:      message.Text,
		Type:      string(message.Type),
		Language:  util.StringToNullString(message.Language),
		CreatedAt: time.Now(),
	}
	query := `INSERT INTO chat_messages (id, user_id, sender, text, type, language, created_at)
	          VALUES (:id, :user_id, :sender, :text, :type, :language, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// ListMessages returns the user's full chat log in chronological order.
func (r *sqlxChatRepository) ListMessages(ctx context.Context, userID string) ([]*domain.ChatMessage, error) {
	var rows []models.ChatMessage
	query := `SELECT id, user_id, sender, text, type, language, created_at
	          FROM chat_messages WHERE user_id = $1 ORDER BY created_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	messages := make([]*domain.ChatMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, toDomainChatMessage(&rows[i]))
	}
	return messages, nil
}

// LastMessages returns the user's n most recent messages in chronological
// order, for use as LLM context.
func (r *sqlxChatRepository) LastMessages(ctx context.Context, userID string, n int) ([]*domain.ChatMessage, error) {
	var rows []models.ChatMessage
	query := `SELECT id, user_id, sender, text, type, language, created_at FROM (
	            SELECT id, user_id, sender, text, type, language, created_at
	            FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
	          ) recent ORDER BY created_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, n); err != nil {
		return nil, fmt.Errorf("failed to get recent chat messages: %w", err)
	}
	messages := make([]*domain.ChatMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, toDomainChatMessage(&rows[i]))
	}
	return messages, nil
}

// ClearMessages deletes the user's whole chat log.
func (r *sqlxChatRepository) ClearMessages(ctx context.Context, userID string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear chat messages: %w", err)
	}
	return nil
}
