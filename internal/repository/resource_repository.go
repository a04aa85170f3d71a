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

// ResourceFilter narrows a resource listing. Zero-value fields are ignored.
type ResourceFilter struct {
	Subject string
	Course  string
	Type    string
}

// ResourceRepository persists uploaded-artifact metadata.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource *domain.Resource) error
	GetResourceByID(ctx context.Context, resourceID string) (*domain.Resource, error)
	ListResources(ctx context.Context, filter ResourceFilter) ([]*domain.Resource, error)
	DeleteResource(ctx context.Context, resourceID string) error
	CountResources(ctx context.Context) (int64, error)
}

type sqlxResourceRepository struct {
	db DBTX
}

// NewSQLXResourceRepository creates a new instance of sqlxResourceRepository.
func NewSQLXResourceRepository(db *sqlx.DB) ResourceRepository {
	return &sqlxResourceRepository{db: db}
}

func toDomainResource(m *models.Resource) *domain.Resource {
	return &domain.Resource{
		ID:          m.ID,
		Title:       m.Title,
		Subject:     m.Subject,
		Course:      util.NullStringToString(m.Course),
		Topic:       util.NullStringToString(m.Topic),
		Type:        domain.ResourceType(m.Type),
		Description: util.NullStringToString(m.Description),
		URL:         m.URL,
		ObjectKey:   m.ObjectKey,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateResource inserts one resource row.
func (r *sqlxResourceRepository) CreateResource(ctx context.Context, resource *domain.Resource) error {
	m := &models.Resource{
		ID:          resource.ID,
		Title:       resource.Title,
		Subject:     resource.Subject,
		Course:      util.StringToNullString(resource.Course),
		Topic:       util.StringToNullString(resource.Topic),
		Type:        string(resource.Type),
		Description: util.StringToNullString(resource.Description),
		URL:         resource.URL,
		ObjectKey:   resource.ObjectKey,
		CreatedAt:   time.Now(),
	}
	query := `INSERT INTO resources (id, title, subject, course, topic, type, description, url, object_key, created_at)
	          VALUES (:id, :title, :subject, :course, :topic, :type, :description, :url, :object_key, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// GetResourceByID loads one resource, or (nil, nil).
func (r *sqlxResourceRepository) GetResourceByID(ctx context.Context, resourceID string) (*domain.Resource, error) {
	var m models.Resource
	query := `SELECT id, title, subject, course, topic, type, description, url, object_key, created_at
	          FROM resources WHERE id = $1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, resourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return toDomainResource(&m), nil
}

// ListResources returns resources matching the filter, newest first.
func (r *sqlxResourceRepository) ListResources(ctx context.Context, filter ResourceFilter) ([]*domain.Resource, error) {
	query := `SELECT id, title, subject, course, topic, type, description, url, object_key, created_at
	          FROM resources WHERE 1=1`
	args := []interface{}{}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	if filter.Course != "" {
		args = append(args, filter.Course)
		query += fmt.Sprintf(" AND course = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	var rows []models.Resource
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	resources := make([]*domain.Resource, 0, len(rows))
	for i := range rows {
		resources = append(resources, toDomainResource(&rows[i]))
	}
	return resources, nil
}

// DeleteResource removes the metadata row. The remote object is the
// service's responsibility, deleted only after this succeeds.
func (r *sqlxResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, resourceID)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
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

// CountResources returns the total number of resources.
func (r *sqlxResourceRepository) CountResources(ctx context.Context) (int64, error) {
	var count int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM resources`); err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}
