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

// AttemptRepository persists quiz attempts, certificates and the per-user
// completion rows. The three writes of a submission share one transaction
// through the context executor.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *domain.Attempt) error
	GetLatestAttempt(ctx context.Context, userID, quizID string) (*domain.Attempt, error)
	CountAttempts(ctx context.Context) (int64, error)

	CreateCertificate(ctx context.Context, cert *domain.Certificate) error
	GetCertificateByCredential(ctx context.Context, certificateID string) (*domain.Certificate, error)
	GetCertificate(ctx context.Context, userID, quizID string) (*domain.Certificate, error)
	CountCertificates(ctx context.Context) (int64, error)

	UpsertCompletedQuiz(ctx context.Context, completed *domain.CompletedQuiz) error
	ListCompletedQuizzes(ctx context.Context, userID string) ([]*domain.CompletedQuiz, error)
}

type sqlxAttemptRepository struct {
	db DBTX
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	answers := make([]domain.SubmittedAnswer, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, domain.SubmittedAnswer{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return &domain.Attempt{
		ID:          m.ID,
		QuizID:      m.QuizID,
		UserID:      m.UserID,
		Email:       m.Email,
		Answers:     answers,
		Score:       m.Score,
		AttemptedAt: m.AttemptedAt,
	}
}

// CreateAttempt inserts one immutable attempt row.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	answers := make(models.AnswerPairList, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		answers = append(answers, models.AnswerPair{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	m := &models.QuizAttempt{
		ID:          attempt.ID,
		QuizID:      attempt.QuizID,
		UserID:      attempt.UserID,
		Email:       attempt.Email,
		Answers:     answers,
		Score:       attempt.Score,
		AttemptedAt: attempt.AttemptedAt,
		CreatedAt:   time.Now(),
	}

	query := `INSERT INTO quiz_attempts (id, quiz_id, user_id, email, answers, score, attempted_at, created_at)
	          VALUES (:id, :quiz_id, :user_id, :email, :answers, :score, :attempted_at, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// GetLatestAttempt returns the user's most recent attempt for a quiz, or
// (nil, nil) when none exists.
func (r *sqlxAttemptRepository) GetLatestAttempt(ctx context.Context, userID, quizID string) (*domain.Attempt, error) {
	var m models.QuizAttempt
	query := `SELECT id, quiz_id, user_id, email, answers, score, attempted_at, created_at
	          FROM quiz_attempts WHERE user_id = $1 AND quiz_id = $2
	          ORDER BY attempted_at DESC LIMIT 1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest attempt: %w", err)
	}
	return toDomainAttempt(&m), nil
}

// CountAttempts returns the total number of attempts.
func (r *sqlxAttemptRepository) CountAttempts(ctx context.Context) (int64, error) {
	var count int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM quiz_attempts`); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

func toDomainCertificate(m *models.Certificate) *domain.Certificate {
	return &domain.Certificate{
		ID:            m.ID,
		CertificateID: m.CertificateID,
		UserID:        m.UserID,
		QuizID:        m.QuizID,
		UserName:      m.UserName,
		QuizTitle:     m.QuizTitle,
		Score:         m.Score,
		IssuedAt:      m.IssuedAt,
	}
}

// CreateCertificate inserts one certificate row.
func (r *sqlxAttemptRepository) CreateCertificate(ctx context.Context, cert *domain.Certificate) error {
	m := &models.Certificate{
		ID:            cert.ID,
		CertificateID: cert.CertificateID,
		UserID:        cert.UserID,
		QuizID:        cert.QuizID,
		UserName:      cert.UserName,
		QuizTitle:     cert.QuizTitle,
		Score:         cert.Score,
		IssuedAt:      cert.IssuedAt,
	}
	query := `INSERT INTO certificates (id, certificate_id, user_id, quiz_id, user_name, quiz_title, score, issued_at)
	          VALUES (:id, :certificate_id, :user_id, :quiz_id, :user_name, :quiz_title, :score, :issued_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// GetCertificateByCredential looks a certificate up by its public credential.
func (r *sqlxAttemptRepository) GetCertificateByCredential(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	var m models.Certificate
	query := `SELECT id, certificate_id, user_id, quiz_id, user_name, quiz_title, score, issued_at
	          FROM certificates WHERE certificate_id = $1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, certificateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate by credential: %w", err)
	}
	return toDomainCertificate(&m), nil
}

// GetCertificate returns the user's newest certificate for a quiz.
func (r *sqlxAttemptRepository) GetCertificate(ctx context.Context, userID, quizID string) (*domain.Certificate, error) {
	var m models.Certificate
	query := `SELECT id, certificate_id, user_id, quiz_id, user_name, quiz_title, score, issued_at
	          FROM certificates WHERE user_id = $1 AND quiz_id = $2
	          ORDER BY issued_at DESC LIMIT 1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return toDomainCertificate(&m), nil
}

// CountCertificates returns the total number of issued certificates.
func (r *sqlxAttemptRepository) CountCertificates(ctx context.Context) (int64, error) {
	var count int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM certificates`); err != nil {
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return count, nil
}

// UpsertCompletedQuiz writes the per-(user, quiz) completion row, relying on
// the unique index to keep at most one row per pair. certificate_issued only
// ever flips to true.
func (r *sqlxAttemptRepository) UpsertCompletedQuiz(ctx context.Context, completed *domain.CompletedQuiz) error {
	m := &models.CompletedQuiz{
		ID:                completed.ID,
		UserID:            completed.UserID,
		QuizID:            completed.QuizID,
		Score:             completed.Score,
		CertificateIssued: completed.CertificateIssued,
		UpdatedAt:         time.Now(),
	}
	query := `INSERT INTO completed_quizzes (id, user_id, quiz_id, score, certificate_issued, updated_at)
	          VALUES (:id, :user_id, :quiz_id, :score, :certificate_issued, :updated_at)
	          ON CONFLICT (user_id, quiz_id) DO UPDATE SET
	            score = EXCLUDED.score,
	            certificate_issued = completed_quizzes.certificate_issued OR EXCLUDED.certificate_issued,
	            updated_at = EXCLUDED.updated_at`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to upsert completed quiz: %w", err)
	}
	return nil
}

// ListCompletedQuizzes returns the user's completion rows, newest first.
func (r *sqlxAttemptRepository) ListCompletedQuizzes(ctx context.Context, userID string) ([]*domain.CompletedQuiz, error) {
	var rows []models.CompletedQuiz
	query := `SELECT id, user_id, quiz_id, score, certificate_issued, updated_at
	          FROM completed_quizzes WHERE user_id = $1 ORDER BY updated_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list completed quizzes: %w", err)
	}
	completed := make([]*domain.CompletedQuiz, 0, len(rows))
	for i := range rows {
		completed = append(completed, &domain.CompletedQuiz{
			ID:                rows[i].ID,
			UserID:            rows[i].UserID,
			QuizID:            rows[i].QuizID,
			Score:             rows[i].Score,
			CertificateIssued: rows[i].CertificateIssued,
			UpdatedAt:         rows[i].UpdatedAt,
		})
	}
	return completed, nil
}
