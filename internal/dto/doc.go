package dto

import "easyway/internal/domain"

// CreateDocRequest is the body for POST /docs.
type CreateDocRequest struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// UpdateDocRequest is the body for PUT /docs/:id.
type UpdateDocRequest struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// DocQuestionRequest is the body for adding or updating a nested question.
type DocQuestionRequest struct {
	Title    string                 `json:"title"`
	Question string                 `json:"question"`
	Answers  []domain.AnswerSection `json:"answers"`
}

// DocQuestionView is one nested question in a response.
type DocQuestionView struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Question string                 `json:"question"`
	Answers  []domain.AnswerSection `json:"answers"`
}

// DocSummary is one row of the doc list.
type DocSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// DocResponse is the full doc shape.
type DocResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Subject   string            `json:"subject"`
	Questions []DocQuestionView `json:"questions"`
}
