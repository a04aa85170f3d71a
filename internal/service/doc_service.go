package service

import (
	"context"
	"database/sql"
	"errors"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/repository"
	"easyway/internal/util"
)

// DocService manages knowledge articles and their nested questions.
type DocService interface {
	CreateDoc(ctx context.Context, req *dto.CreateDocRequest) (*dto.DocResponse, error)
	ListDocs(ctx context.Context) ([]dto.DocSummary, error)
	GetDoc(ctx context.Context, docID string) (*dto.DocResponse, error)
	UpdateDoc(ctx context.Context, docID string, req *dto.UpdateDocRequest) (*dto.DocResponse, error)
	DeleteDoc(ctx context.Context, docID string) error

	AddQuestion(ctx context.Context, docID string, req *dto.DocQuestionRequest) (*dto.DocQuestionView, error)
	UpdateQuestion(ctx context.Context, docID, questionID string, req *dto.DocQuestionRequest) (*dto.DocQuestionView, error)
	DeleteQuestion(ctx context.Context, docID, questionID string) error
}

type docServiceImpl struct {
	docRepo repository.DocRepository
}

// NewDocService creates a new instance of the doc service.
func NewDocService(docRepo repository.DocRepository) DocService {
	return &docServiceImpl{docRepo: docRepo}
}

func toDocQuestionView(q *domain.DocQuestion) *dto.DocQuestionView {
	return &dto.DocQuestionView{
		ID:       q.ID,
		Title:    q.Title,
		Question: q.Question,
		Answers:  q.Answers,
	}
}

func toDocResponse(doc *domain.Doc) *dto.DocResponse {
	questions := make([]dto.DocQuestionView, 0, len(doc.Questions))
	for i := range doc.Questions {
		questions = append(questions, *toDocQuestionView(&doc.Questions[i]))
	}
	return &dto.DocResponse{
		ID:        doc.ID,
		Title:     doc.Title,
		Subject:   doc.Subject,
		Questions: questions,
	}
}

// CreateDoc stores a new article header with no questions yet.
func (s *docServiceImpl) CreateDoc(ctx context.Context, req *dto.CreateDocRequest) (*dto.DocResponse, error) {
	doc := &domain.Doc{
		ID:      util.NewULID(),
		Title:   req.Title,
		Subject: req.Subject,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := s.docRepo.CreateDoc(ctx, doc); err != nil {
		return nil, domain.NewInternalError("failed to create doc", err)
	}
	return toDocResponse(doc), nil
}

// ListDocs returns summaries of all articles.
func (s *docServiceImpl) ListDocs(ctx context.Context) ([]dto.DocSummary, error) {
	docs, err := s.docRepo.ListDocs(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list docs", err)
	}
	summaries := make([]dto.DocSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, dto.DocSummary{
			ID:      doc.ID,
			Title:   doc.Title,
			Subject: doc.Subject,
		})
	}
	return summaries, nil
}

// GetDoc returns an article with its ordered questions.
func (s *docServiceImpl) GetDoc(ctx context.Context, docID string) (*dto.DocResponse, error) {
	doc, err := s.docRepo.GetDocByID(ctx, docID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get doc", err)
	}
	if doc == nil {
		return nil, domain.NewNotFoundError("doc not found")
	}
	return toDocResponse(doc), nil
}

// UpdateDoc replaces the article's title and subject.
func (s *docServiceImpl) UpdateDoc(ctx context.Context, docID string, req *dto.UpdateDocRequest) (*dto.DocResponse, error) {
	doc := &domain.Doc{ID: docID, Title: req.Title, Subject: req.Subject}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := s.docRepo.UpdateDocHeader(ctx, doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("doc not found")
		}
		return nil, domain.NewInternalError("failed to update doc", err)
	}
	return s.GetDoc(ctx, docID)
}

// DeleteDoc removes an article.
func (s *docServiceImpl) DeleteDoc(ctx context.Context, docID string) error {
	if err := s.docRepo.DeleteDoc(ctx, docID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("doc not found")
		}
		return domain.NewInternalError("failed to delete doc", err)
	}
	return nil
}

// AddQuestion validates and appends a question to the article.
func (s *docServiceImpl) AddQuestion(ctx context.Context, docID string, req *dto.DocQuestionRequest) (*dto.DocQuestionView, error) {
	doc, err := s.docRepo.GetDocByID(ctx, docID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get doc", err)
	}
	if doc == nil {
		return nil, domain.NewNotFoundError("doc not found")
	}

	question := &domain.DocQuestion{
		ID:       util.NewULID(),
		Title:    req.Title,
		Question: req.Question,
		Answers:  req.Answers,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.docRepo.AddQuestion(ctx, docID, question); err != nil {
		return nil, domain.NewInternalError("failed to add question", err)
	}
	return toDocQuestionView(question), nil
}

// UpdateQuestion replaces a nested question's content.
func (s *docServiceImpl) UpdateQuestion(ctx context.Context, docID, questionID string, req *dto.DocQuestionRequest) (*dto.DocQuestionView, error) {
	question := &domain.DocQuestion{
		ID:       questionID,
		Title:    req.Title,
		Question: req.Question,
		Answers:  req.Answers,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.docRepo.UpdateQuestion(ctx, docID, question); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("question not found")
		}
		return nil, domain.NewInternalError("failed to update question", err)
	}
	return toDocQuestionView(question), nil
}

// DeleteQuestion removes a nested question scoped to its article.
func (s *docServiceImpl) DeleteQuestion(ctx context.Context, docID, questionID string) error {
	if err := s.docRepo.DeleteQuestion(ctx, docID, questionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("question not found")
		}
		return domain.NewInternalError("failed to delete question", err)
	}
	return nil
}
