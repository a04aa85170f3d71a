package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"easyway/internal/domain"
	"easyway/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddQuestion_DocMustExist(t *testing.T) {
	docRepo := new(MockDocRepository)

	docRepo.On("GetDocByID", mock.Anything, "missing").Return(nil, nil)

	svc := NewDocService(docRepo)
	_, err := svc.AddQuestion(context.Background(), "missing", &dto.DocQuestionRequest{
		Title:    "What is normalization?",
		Question: "Explain 1NF through 3NF.",
		Answers: []domain.AnswerSection{
			{Type: domain.SectionParagraph, Text: "Normalization removes redundancy."},
		},
	})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeNotFound, dErr.Code)
	docRepo.AssertNotCalled(t, "AddQuestion", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddQuestion_Success(t *testing.T) {
	docRepo := new(MockDocRepository)
	doc := &domain.Doc{ID: "01HDOC0000000000000000001", Title: "DBMS", Subject: "DBMS"}

	docRepo.On("GetDocByID", mock.Anything, doc.ID).Return(doc, nil)
	docRepo.On("AddQuestion", mock.Anything, doc.ID, mock.MatchedBy(func(q *domain.DocQuestion) bool {
		return q.ID != "" && q.Title == "What is normalization?"
	})).Return(nil)

	svc := NewDocService(docRepo)
	view, err := svc.AddQuestion(context.Background(), doc.ID, &dto.DocQuestionRequest{
		Title:    "What is normalization?",
		Question: "Explain 1NF through 3NF.",
		Answers: []domain.AnswerSection{
			{Type: domain.SectionParagraph, Text: "Normalization removes redundancy."},
			{Type: domain.SectionPoints, Points: []string{"1NF: atomic values", "2NF: no partial dependency"}},
		},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Len(t, view.Answers, 2)
	docRepo.AssertExpectations(t)
}

func TestAddQuestion_SectionShapeMismatch(t *testing.T) {
	docRepo := new(MockDocRepository)
	doc := &domain.Doc{ID: "01HDOC0000000000000000001", Title: "DBMS", Subject: "DBMS"}

	docRepo.On("GetDocByID", mock.Anything, doc.ID).Return(doc, nil)

	svc := NewDocService(docRepo)
	// a points section without points is malformed
	_, err := svc.AddQuestion(context.Background(), doc.ID, &dto.DocQuestionRequest{
		Title:    "What is normalization?",
		Question: "Explain 1NF through 3NF.",
		Answers: []domain.AnswerSection{
			{Type: domain.SectionPoints},
		},
	})

	assert.Error(t, err)
	docRepo.AssertNotCalled(t, "AddQuestion", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDoc_NotFound(t *testing.T) {
	docRepo := new(MockDocRepository)

	docRepo.On("UpdateDocHeader", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

	svc := NewDocService(docRepo)
	_, err := svc.UpdateDoc(context.Background(), "missing", &dto.UpdateDocRequest{Title: "DBMS", Subject: "DBMS"})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeNotFound, dErr.Code)
}

func TestDeleteQuestion_ScopedToDoc(t *testing.T) {
	docRepo := new(MockDocRepository)

	docRepo.On("DeleteQuestion", mock.Anything, "01HDOC0000000000000000001", "01HQ000000000000000000001").Return(nil)

	svc := NewDocService(docRepo)
	err := svc.DeleteQuestion(context.Background(), "01HDOC0000000000000000001", "01HQ000000000000000000001")

	assert.NoError(t, err)
	docRepo.AssertExpectations(t)
}
