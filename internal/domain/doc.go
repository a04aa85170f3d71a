package domain

import (
	"fmt"
	"strings"
	"time"
)

// AnswerSectionType discriminates the content shape of an answer part.
type AnswerSectionType string

const (
	SectionParagraph AnswerSectionType = "paragraph"
	SectionPoints    AnswerSectionType = "points"
	SectionCode      AnswerSectionType = "code"
)

// AnswerSection is one typed part of a doc question's answer.
type AnswerSection struct {
	Type     AnswerSectionType `json:"type"`
	Text     string            `json:"text,omitempty"`     // paragraph, code
	Points   []string          `json:"points,omitempty"`   // points
	Language string            `json:"language,omitempty"` // code
}

// Validate enforces that the content shape matches the declared type.
func (s *AnswerSection) Validate() error {
	switch s.Type {
	case SectionParagraph:
		if strings.TrimSpace(s.Text) == "" {
			return NewInvalidInputError("paragraph section needs text")
		}
	case SectionPoints:
		if len(s.Points) == 0 {
			return NewInvalidInputError("points section needs at least one point")
		}
		for _, p := range s.Points {
			if strings.TrimSpace(p) == "" {
				return NewInvalidInputError("points section contains an empty point")
			}
		}
	case SectionCode:
		if strings.TrimSpace(s.Text) == "" {
			return NewInvalidInputError("code section needs content")
		}
		if strings.TrimSpace(s.Language) == "" {
			return NewInvalidInputError("code section needs a language tag")
		}
	default:
		return NewInvalidInputError(fmt.Sprintf("unknown section type: %s", s.Type))
	}
	return nil
}

// DocQuestion is one Q&A item of a doc.
type DocQuestion struct {
	ID       string
	Title    string
	Question string
	Answers  []AnswerSection
}

// Validate validates the question and all its answer sections.
func (q *DocQuestion) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewInvalidInputError("question title is required")
	}
	if strings.TrimSpace(q.Question) == "" {
		return NewInvalidInputError("question body is required")
	}
	if len(q.Answers) == 0 {
		return NewInvalidInputError("question needs at least one answer section")
	}
	for i := range q.Answers {
		if err := q.Answers[i].Validate(); err != nil {
			return NewInvalidInputError(fmt.Sprintf("answer section %d: %v", i+1, err))
		}
	}
	return nil
}

// Doc is a subject-scoped knowledge article with an ordered question list.
type Doc struct {
	ID        string
	Title     string
	Subject   string
	Questions []DocQuestion
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the doc header. Questions are validated individually as
// they are added or updated.
func (d *Doc) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if strings.TrimSpace(d.Subject) == "" {
		return NewInvalidInputError("subject is required")
	}
	return nil
}
