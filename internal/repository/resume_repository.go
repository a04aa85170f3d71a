package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ResumeRepository persists the one-per-user resume rows. A unique index on
// user_id backs the upsert.
type ResumeRepository interface {
	GetResumeByUserID(ctx context.Context, userID string) (*domain.Resume, error)
	UpsertResume(ctx context.Context, resume *domain.Resume) error
}

type sqlxResumeRepository struct {
	db DBTX
}

// NewSQLXResumeRepository creates a new instance of sqlxResumeRepository.
func NewSQLXResumeRepository(db *sqlx.DB) ResumeRepository {
	return &sqlxResumeRepository{db: db}
}

func toDomainResume(m *models.Resume) *domain.Resume {
	return &domain.Resume{
		ID:             m.ID,
		UserID:         m.UserID,
		Personal:       domain.PersonalInfo(m.Personal),
		Education:      []domain.ResumeEntry(m.Education),
		Experience:     []domain.ResumeEntry(m.Experience),
		Skills:         []string(m.Skills),
		Projects:       []domain.ResumeEntry(m.Projects),
		Certifications: []domain.ResumeEntry(m.Certifications),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GetResumeByUserID loads the user's resume, or (nil, nil) when none has been
// saved yet.
func (r *sqlxResumeRepository) GetResumeByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	var m models.Resume
	query := `SELECT id, user_id, personal, education, experience, skills, projects, certifications, created_at, updated_at
	          FROM resumes WHERE user_id = $1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return toDomainResume(&m), nil
}

// UpsertResume writes the full resume document for a user, replacing every
// section. Reset saves the empty shape through the same path.
func (r *sqlxResumeRepository) UpsertResume(ctx context.Context, resume *domain.Resume) error {
	now := time.Now()
	m := &models.Resume{
		ID:             resume.ID,
		UserID:         resume.UserID,
		Personal:       models.PersonalInfoColumn(resume.Personal),
		Education:      models.EntryList(resume.Education),
		Experience:     models.EntryList(resume.Experience),
		Skills:         models.StringSlice(resume.Skills),
		Projects:       models.EntryList(resume.Projects),
		Certifications: models.EntryList(resume.Certifications),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	query := `INSERT INTO resumes (id, user_id, personal, education, experience, skills, projects, certifications, created_at, updated_at)
	          VALUES (:id, :user_id, :personal, :education, :experience, :skills, :projects, :certifications, :created_at, :updated_at)
	          ON CONFLICT (user_id) DO UPDATE SET
	            personal = EXCLUDED.personal,
	            education = EXCLUDED.education,
	            experience = EXCLUDED.experience,
	            skills = EXCLUDED.skills,
	            projects = EXCLUDED.projects,
	            certifications = EXCLUDED.certifications,
	            updated_at = EXCLUDED.updated_at`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to upsert resume: %w", err)
	}
	return nil
}
