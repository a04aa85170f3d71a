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

// DocRepository persists knowledge articles and their nested questions.
type DocRepository interface {
	CreateDoc(ctx context.Context, doc *domain.Doc) error
	GetDocByID(ctx context.Context, docID string) (*domain.Doc, error)
	ListDocs(ctx context.Context) ([]*domain.Doc, error)
	UpdateDocHeader(ctx context.Context, doc *domain.Doc) error
	DeleteDoc(ctx context.Context, docID string) error

	AddQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error
	GetQuestion(ctx context.Context, docID, questionID string) (*domain.DocQuestion, error)
	UpdateQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error
	DeleteQuestion(ctx context.Context, docID, questionID string) error
}

type sqlxDocRepository struct {
	db DBTX
}

// NewSQLXDocRepository creates a new instance of sqlxDocRepository.
func NewSQLXDocRepository(db *sqlx.DB) DocRepository {
	return &sqlxDocRepository{db: db}
}

func toDomainDocQuestion(m *models.DocQuestion) domain.DocQuestion {
	return domain.DocQuestion{
		ID:       m.ID,
		Title:    m.Title,
		Question: m.Question,
		Answers:  []domain.AnswerSection(m.Answers),
	}
}

// CreateDoc inserts a doc header and any initial questions.
func (r *sqlxDocRepository) CreateDoc(ctx context.Context, doc *domain.Doc) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	header := &models.Doc{
		ID:        doc.ID,
		Title:     doc.Title,
		Subject:   doc.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	headerQuery := `INSERT INTO docs (id, title, subject, created_at, updated_at)
	                VALUES (:id, :title, :subject, :created_at, :updated_at)`
	if _, err := exec.NamedExecContext(ctx, headerQuery, header); err != nil {
		return fmt.Errorf("failed to create doc: %w", err)
	}

	for i := range doc.Questions {
		if err := r.insertQuestion(ctx, doc.ID, i, &doc.Questions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqlxDocRepository) insertQuestion(ctx context.Context, docID string, position int, q *domain.DocQuestion) error {
	m := &models.DocQuestion{
		ID:       q.ID,
		DocID:    docID,
		Position: position,
		Title:    q.Title,
		Question: q.Question,
		Answers:  models.SectionList(q.Answers),
	}
	query := `INSERT INTO doc_questions (id, doc_id, position, title, question, answers)
	          VALUES (:id, :doc_id, :position, :title, :question, :answers)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to insert doc question: %w", err)
	}
	return nil
}

// GetDocByID loads a doc with its ordered questions, or (nil, nil).
func (r *sqlxDocRepository) GetDocByID(ctx context.Context, docID string) (*domain.Doc, error) {
	exec := GetExecutor(ctx, r.db)

	var header models.Doc
	headerQuery := `SELECT id, title, subject, created_at, updated_at, deleted_at
	                FROM docs WHERE id = $1 AND deleted_at IS NULL`
	if err := exec.GetContext(ctx, &header, headerQuery, docID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doc: %w", err)
	}

	var questions []models.DocQuestion
	questionQuery := `SELECT id, doc_id, position, title, question, answers
	                  FROM doc_questions WHERE doc_id = $1 ORDER BY position`
	if err := exec.SelectContext(ctx, &questions, questionQuery, docID); err != nil {
		return nil, fmt.Errorf("failed to get doc questions: %w", err)
	}

	doc := &domain.Doc{
		ID:        header.ID,
		Title:     header.Title,
		Subject:   header.Subject,
		CreatedAt: header.CreatedAt,
		UpdatedAt: header.UpdatedAt,
		Questions: make([]domain.DocQuestion, 0, len(questions)),
	}
	for i := range questions {
		doc.Questions = append(doc.Questions, toDomainDocQuestion(&questions[i]))
	}
	return doc, nil
}

// ListDocs returns doc headers without questions, newest first.
func (r *sqlxDocRepository) ListDocs(ctx context.Context) ([]*domain.Doc, error) {
	var rows []models.Doc
	query := `SELECT id, title, subject, created_at, updated_at, deleted_at
	          FROM docs WHERE deleted_at IS NULL ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list docs: %w", err)
	}
	docs := make([]*domain.Doc, 0, len(rows))
	for i := range rows {
		docs = append(docs, &domain.Doc{
			ID:        rows[i].ID,
			Title:     rows[i].Title,
			Subject:   rows[i].Subject,
			CreatedAt: rows[i].CreatedAt,
			UpdatedAt: rows[i].UpdatedAt,
		})
	}
	return docs, nil
}

// UpdateDocHeader updates a doc's title and subject.
func (r *sqlxDocRepository) UpdateDocHeader(ctx context.Context, doc *domain.Doc) error {
	query := `UPDATE docs SET title = $1, subject = $2, updated_at = $3 WHERE id = $4 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, doc.Title, doc.Subject, time.Now(), doc.ID)
	if err != nil {
		return fmt.Errorf("failed to update doc: %w", err)
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

// DeleteDoc soft-deletes a doc. Question rows stay attached.
func (r *sqlxDocRepository) DeleteDoc(ctx context.Context, docID string) error {
	query := `UPDATE docs SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now(), docID)
	if err != nil {
		return fmt.Errorf("failed to delete doc: %w", err)
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

// AddQuestion appends a question after the doc's current last position.
func (r *sqlxDocRepository) AddQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error {
	exec := GetExecutor(ctx, r.db)

	var next int
	positionQuery := `SELECT COALESCE(MAX(position) + 1, 0) FROM doc_questions WHERE doc_id = $1`
	if err := exec.GetContext(ctx, &next, positionQuery, docID); err != nil {
		return fmt.Errorf("failed to get next question position: %w", err)
	}
	if err := r.insertQuestion(ctx, docID, next, question); err != nil {
		return err
	}
	return r.touchDoc(ctx, docID)
}

// GetQuestion loads a single nested question scoped to its doc.
func (r *sqlxDocRepository) GetQuestion(ctx context.Context, docID, questionID string) (*domain.DocQuestion, error) {
	var m models.DocQuestion
	query := `SELECT id, doc_id, position, title, question, answers
	          FROM doc_questions WHERE doc_id = $1 AND id = $2`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, docID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doc question: %w", err)
	}
	q := toDomainDocQuestion(&m)
	return &q, nil
}

// UpdateQuestion replaces a nested question's content in place.
func (r *sqlxDocRepository) UpdateQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error {
	query := `UPDATE doc_questions SET title = $1, question = $2, answers = $3
	          WHERE doc_id = $4 AND id = $5`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		question.Title, question.Question, models.SectionList(question.Answers), docID, question.ID)
	if err != nil {
		return fmt.Errorf("failed to update doc question: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return r.touchDoc(ctx, docID)
}

// DeleteQuestion removes a nested question.
func (r *sqlxDocRepository) DeleteQuestion(ctx context.Context, docID, questionID string) error {
	query := `DELETE FROM doc_questions WHERE doc_id = $1 AND id = $2`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, docID, questionID)
	if err != nil {
		return fmt.Errorf("failed to delete doc question: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return r.touchDoc(ctx, docID)
}

func (r *sqlxDocRepository) touchDoc(ctx context.Context, docID string) error {
	query := `UPDATE docs SET updated_at = $1 WHERE id = $2`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now(), docID); err != nil {
		return fmt.Errorf("failed to touch doc: %w", err)
	}
	return nil
}
