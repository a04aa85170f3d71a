package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	QuestionMCQ  QuestionType = "mcq"
	QuestionCode QuestionType = "code"
)

// Option is one selectable choice of an mcq question.
type Option struct {
	Text      string
	IsCorrect bool
}

// Question is one graded item of a quiz. mcq questions carry Options; code
// questions carry an AnswerHint substring used for containment matching.
type Question struct {
	ID         string
	Type       QuestionType
	Text       string
	Options    []Option
	AnswerHint string
	Marks      int
}

// Validate enforces the creation invariants: every mcq question has at least
// two non-empty options and at least one marked correct; every code question
// has a non-empty hint; marks are positive.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if q.Marks <= 0 {
		return NewInvalidInputError("question marks must be positive")
	}
	switch q.Type {
	case QuestionMCQ:
		nonEmpty := 0
		correct := 0
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Text) != "" {
				nonEmpty++
			}
			if opt.IsCorrect {
				correct++
			}
		}
		if nonEmpty < 2 {
			return NewInvalidInputError("mcq question needs at least two non-empty options")
		}
		if correct == 0 {
			return NewInvalidInputError("mcq question needs at least one correct option")
		}
	case QuestionCode:
		if strings.TrimSpace(q.AnswerHint) == "" {
			return NewInvalidInputError("code question needs a non-empty answer hint")
		}
	default:
		return NewInvalidInputError(fmt.Sprintf("unknown question type: %s", q.Type))
	}
	return nil
}

// Grade returns the marks earned for a submitted answer. mcq answers must
// exactly match the text of an option marked correct. code answers are graded
// by case-insensitive containment of the hint, which stands in for full logic
// checking.
func (q *Question) Grade(answer string) int {
	switch q.Type {
	case QuestionMCQ:
		for _, opt := range q.Options {
			if opt.IsCorrect && opt.Text == answer {
				return q.Marks
			}
		}
	case QuestionCode:
		if strings.Contains(strings.ToLower(answer), strings.ToLower(q.AnswerHint)) {
			return q.Marks
		}
	}
	return 0
}

// Quiz is a titled, ordered set of questions.
type Quiz struct {
	ID         string
	Title      string
	Subject    string
	Slug       string
	Questions  []Question
	TotalMarks int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecomputeTotalMarks derives TotalMarks from the question weights. It runs
// on every save so the stored value can never drift from the questions.
func (q *Quiz) RecomputeTotalMarks() {
	total := 0
	for i := range q.Questions {
		total += q.Questions[i].Marks
	}
	q.TotalMarks = total
}

// Validate validates the quiz and all its questions.
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if strings.TrimSpace(q.Subject) == "" {
		return NewInvalidInputError("subject is required")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("quiz needs at least one question")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return NewInvalidInputError(fmt.Sprintf("question %d: %v", i+1, err))
		}
	}
	return nil
}

// SubmittedAnswer pairs a question ID with the user's answer. Matching by ID
// keeps historical attempts valid when questions are reordered.
type SubmittedAnswer struct {
	QuestionID string
	Answer     string
}

// Score grades a submission against the quiz. Answers with unknown question
// IDs are ignored; questions without a submitted answer earn zero. The result
// is always within [0, TotalMarks].
func (q *Quiz) Score(answers []SubmittedAnswer) int {
	byQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a.Answer
	}
	score := 0
	for i := range q.Questions {
		if answer, ok := byQuestion[q.Questions[i].ID]; ok {
			score += q.Questions[i].Grade(answer)
		}
	}
	return score
}

// Percent converts an absolute score to a percentage of TotalMarks.
func (q *Quiz) Percent(score int) float64 {
	if q.TotalMarks == 0 {
		return 0
	}
	return float64(score) / float64(q.TotalMarks) * 100
}

// Attempt is the immutable record of one submission.
type Attempt struct {
	ID          string
	QuizID      string
	UserID      string
	Email       string
	Answers     []SubmittedAnswer
	Score       int
	AttemptedAt time.Time
}

// Certificate is issued when an attempt's score crosses the configured
// threshold. CertificateID is the public 16-hex-char credential, independent
// of the row's database identity.
type Certificate struct {
	ID            string
	CertificateID string
	UserID        string
	QuizID        string
	UserName      string
	QuizTitle     string
	Score         int
	IssuedAt      time.Time
}

// CompletedQuiz records, per (user, quiz) pair, the latest score and whether
// a certificate was generated. At most one row exists per pair.
type CompletedQuiz struct {
	ID                 string
	UserID             string
	QuizID             string
	Score              int
	CertificateIssued  bool
	UpdatedAt          time.Time
}
