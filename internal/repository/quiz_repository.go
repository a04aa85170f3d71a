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

// QuizRepository defines the interface for quiz data operations. Reads return
// (nil, nil) when no quiz matches.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *domain.Quiz) error
	GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error)
	GetQuizBySlug(ctx context.Context, slug string) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
	CountQuizzes(ctx context.Context) (int64, error)
}

type sqlxQuizRepository struct {
	db DBTX
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toModelQuestion(quizID string, position int, q *domain.Question) *models.QuizQuestion {
	options := make(models.OptionList, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, models.QuizOption{Text: opt.Text, IsCorrect: opt.IsCorrect})
	}
	return &models.QuizQuestion{
		ID:         q.ID,
		QuizID:     quizID,
		Position:   position,
		Type:       string(q.Type),
		Text:       q.Text,
		Options:    options,
		AnswerHint: util.StringToNullString(q.AnswerHint),
		Marks:      q.Marks,
	}
}

func toDomainQuestion(m *models.QuizQuestion) domain.Question {
	options := make([]domain.Option, 0, len(m.Options))
	for _, opt := range m.Options {
		options = append(options, domain.Option{Text: opt.Text, IsCorrect: opt.IsCorrect})
	}
	return domain.Question{
		ID:         m.ID,
		Type:       domain.QuestionType(m.Type),
		Text:       m.Text,
		Options:    options,
		AnswerHint: util.NullStringToString(m.AnswerHint),
		Marks:      m.Marks,
	}
}

func toDomainQuiz(header *models.Quiz, questions []models.QuizQuestion) *domain.Quiz {
	quiz := &domain.Quiz{
		ID:         header.ID,
		Title:      header.Title,
		Subject:    header.Subject,
		Slug:       header.Slug,
		TotalMarks: header.TotalMarks,
		CreatedAt:  header.CreatedAt,
		UpdatedAt:  header.UpdatedAt,
		Questions:  make([]domain.Question, 0, len(questions)),
	}
	for i := range questions {
		quiz.Questions = append(quiz.Questions, toDomainQuestion(&questions[i]))
	}
	return quiz
}

// CreateQuiz inserts a quiz header and its ordered questions. Callers run
// this inside WithTransaction so the header never exists without questions.
func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	header := &models.Quiz{
		ID:         quiz.ID,
		Title:      quiz.Title,
		Subject:    quiz.Subject,
		Slug:       quiz.Slug,
		TotalMarks: quiz.TotalMarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	headerQuery := `INSERT INTO quizzes (id, title, subject, slug, total_marks, created_at, updated_at)
	                VALUES (:id, :title, :subject, :slug, :total_marks, :created_at, :updated_at)`
	if _, err := exec.NamedExecContext(ctx, headerQuery, header); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	questionQuery := `INSERT INTO quiz_questions (id, quiz_id, position, type, text, options, answer_hint, marks)
	                  VALUES (:id, :quiz_id, :position, :type, :text, :options, :answer_hint, :marks)`
	for i := range quiz.Questions {
		m := toModelQuestion(quiz.ID, i, &quiz.Questions[i])
		if _, err := exec.NamedExecContext(ctx, questionQuery, m); err != nil {
			return fmt.Errorf("failed to create quiz question %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *sqlxQuizRepository) getQuizBy(ctx context.Context, where string, arg interface{}) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, r.db)

	var header models.Quiz
	headerQuery := `SELECT id, title, subject, slug, total_marks, created_at, updated_at, deleted_at
	                FROM quizzes WHERE ` + where + ` AND deleted_at IS NULL`
	if err := exec.GetContext(ctx, &header, headerQuery, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	var questions []models.QuizQuestion
	questionQuery := `SELECT id, quiz_id, position, type, text, options, answer_hint, marks
	                  FROM quiz_questions WHERE quiz_id = $1 ORDER BY position`
	if err := exec.SelectContext(ctx, &questions, questionQuery, header.ID); err != nil {
		return nil, fmt.Errorf("failed to get quiz questions: %w", err)
	}
	return toDomainQuiz(&header, questions), nil
}

// GetQuizByID loads a quiz with its questions.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return r.getQuizBy(ctx, "id = $1", quizID)
}

// GetQuizBySlug loads a quiz with its questions by slug.
func (r *sqlxQuizRepository) GetQuizBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	return r.getQuizBy(ctx, "slug = $1", slug)
}

// ListQuizzes returns quiz headers without questions, newest first.
func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT id, title, subject, slug, total_marks, created_at, updated_at, deleted_at
	          FROM quizzes WHERE deleted_at IS NULL ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i], nil))
	}
	return quizzes, nil
}

// DeleteQuiz soft-deletes a quiz header. Questions stay attached for
// historical attempts.
func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, quizID string) error {
	query := `UPDATE quizzes SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now(), quizID)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
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

// CountQuizzes returns the number of active quizzes.
func (r *sqlxQuizRepository) CountQuizzes(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM quizzes WHERE deleted_at IS NULL`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return count, nil
}
