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

// RoadmapRepository persists curricula and per-user progress. Progress rows
// are unique per (user_id, roadmap_id) and written with an upsert.
type RoadmapRepository interface {
	CreateRoadmap(ctx context.Context, roadmap *domain.Roadmap) error
	GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error)
	ListRoadmaps(ctx context.Context) ([]*domain.Roadmap, error)

	GetProgress(ctx context.Context, userID, roadmapID string) (*domain.RoadmapProgress, error)
	UpsertProgress(ctx context.Context, progress *domain.RoadmapProgress) error
}

type sqlxRoadmapRepository struct {
	db DBTX
}

// NewSQLXRoadmapRepository creates a new instance of sqlxRoadmapRepository.
func NewSQLXRoadmapRepository(db *sqlx.DB) RoadmapRepository {
	return &sqlxRoadmapRepository{db: db}
}

func toDomainRoadmap(m *models.Roadmap) *domain.Roadmap {
	return &domain.Roadmap{
		ID:          m.ID,
		Title:       m.Title,
		Description: util.NullStringToString(m.Description),
		Months:      []domain.RoadmapMonth(m.Months),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreateRoadmap inserts one roadmap row with its months as jsonb.
func (r *sqlxRoadmapRepository) CreateRoadmap(ctx context.Context, roadmap *domain.Roadmap) error {
	now := time.Now()
	m := &models.Roadmap{
		ID:          roadmap.ID,
		Title:       roadmap.Title,
		Description: util.StringToNullString(roadmap.Description),
		Months:      models.MonthList(roadmap.Months),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	query := `INSERT INTO roadmaps (id, title, description, months, created_at, updated_at)
	          VALUES (:id, :title, :description, :months, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

// GetRoadmapByID loads one roadmap, or (nil, nil).
func (r *sqlxRoadmapRepository) GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	var m models.Roadmap
	query := `SELECT id, title, description, months, created_at, updated_at FROM roadmaps WHERE id = $1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, roadmapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return toDomainRoadmap(&m), nil
}

// ListRoadmaps returns all roadmaps, oldest first.
func (r *sqlxRoadmapRepository) ListRoadmaps(ctx context.Context) ([]*domain.Roadmap, error) {
	var rows []models.Roadmap
	query := `SELECT id, title, description, months, created_at, updated_at FROM roadmaps ORDER BY created_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	roadmaps := make([]*domain.Roadmap, 0, len(rows))
	for i := range rows {
		roadmaps = append(roadmaps, toDomainRoadmap(&rows[i]))
	}
	return roadmaps, nil
}

// GetProgress loads the user's progress row for one roadmap, or (nil, nil)
// when nothing has been toggled yet.
func (r *sqlxRoadmapRepository) GetProgress(ctx context.Context, userID, roadmapID string) (*domain.RoadmapProgress, error) {
	var m models.RoadmapProgress
	query := `SELECT id, user_id, roadmap_id, completed, updated_at
	          FROM roadmap_progress WHERE user_id = $1 AND roadmap_id = $2`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, roadmapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap progress: %w", err)
	}
	return &domain.RoadmapProgress{
		ID:        m.ID,
		UserID:    m.UserID,
		RoadmapID: m.RoadmapID,
		Completed: map[string]bool(m.Completed),
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// UpsertProgress writes the full progress map for a (user, roadmap) pair.
func (r *sqlxRoadmapRepository) UpsertProgress(ctx context.Context, progress *domain.RoadmapProgress) error {
	m := &models.RoadmapProgress{
		ID:        progress.ID,
		UserID:    progress.UserID,
		RoadmapID: progress.RoadmapID,
		Completed: models.BoolMap(progress.Completed),
		UpdatedAt: time.Now(),
	}
	query := `INSERT INTO roadmap_progress (id, user_id, roadmap_id, completed, updated_at)
	          VALUES (:id, :user_id, :roadmap_id, :completed, :updated_at)
	          ON CONFLICT (user_id, roadmap_id) DO UPDATE SET
	            completed = EXCLUDED.completed,
	            updated_at = EXCLUDED.updated_at`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to upsert roadmap progress: %w", err)
	}
	return nil
}
