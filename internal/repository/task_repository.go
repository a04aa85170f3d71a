package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository/models"
	"easyway/internal/util"

	"github.com/jmoiron/sqlx"
)

// TaskRepository persists user-owned to-do items.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

type sqlxTaskRepository struct {
	db DBTX
}

// NewSQLXTaskRepository creates a new instance of sqlxTaskRepository.
func NewSQLXTaskRepository(db *sqlx.DB) TaskRepository {
	return &sqlxTaskRepository{db: db}
}

func toDomainTask(m *models.Task) *domain.Task {
	return &domain.Task{
		ID:        m.ID,
		UserID:    m.UserID,
		Text:      m.Text,
		Completed: m.Completed,
		DueAt:     m.DueAt.Time,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateTask inserts one task row.
func (r *sqlxTaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	now := time.Now()
	m := &models.Task{
		ID:        task.ID,
		UserID:    task.UserID,
		Text:      task.Text,
		Completed: task.Completed,
		DueAt:     util.TimeToNullTime(task.DueAt),
		CreatedAt: now,
		UpdatedAt: now,
	}
	query := `INSERT INTO tasks (id, user_id, text, completed, due_at, created_at, updated_at)
	          VALUES (:id, :user_id, :text, :completed, :due_at, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetTaskByID loads one task, or (nil, nil). Ownership is the service's
// concern; the row is returned regardless of user.
func (r *sqlxTaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	var m models.Task
	query := `SELECT id, user_id, text, completed, due_at, created_at, updated_at FROM tasks WHERE id = $1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toDomainTask(&m), nil
}

// ListTasksByUser returns the user's tasks, newest first.
func (r *sqlxTaskRepository) ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	var rows []models.Task
	query := `SELECT id, user_id, text, completed, due_at, created_at, updated_at
	          FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks := make([]*domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, toDomainTask(&rows[i]))
	}
	return tasks, nil
}

// UpdateTask rewrites a task's text, completion and due date.
func (r *sqlxTaskRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET text = $1, completed = $2, due_at = $3, updated_at = $4 WHERE id = $5`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		task.Text, task.Completed, util.TimeToNullTime(task.DueAt), time.Now(), task.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTask removes one task row.
func (r *sqlxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
