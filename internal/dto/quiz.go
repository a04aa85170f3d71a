package dto

import "time"

// OptionRequest is one mcq choice in a quiz creation request.
type OptionRequest struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest is one question in a quiz creation request.
type QuestionRequest struct {
	Type       string          `json:"type"` // "mcq" or "code"
	Text       string          `json:"text"`
	Options    []OptionRequest `json:"options,omitempty"`
	AnswerHint string          `json:"answer_hint,omitempty"`
	Marks      int             `json:"marks"`
}

// CreateQuizRequest is the body for POST /quiz.
type CreateQuizRequest struct {
	Title     string            `json:"title"`
	Subject   string            `json:"subject"`
	Slug      string            `json:"slug,omitempty"`
	Questions []QuestionRequest `json:"questions"`
}

// QuizSummary is one row of the quiz list.
type QuizSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Slug       string `json:"slug"`
	TotalMarks int    `json:"total_marks"`
}

// OptionView is an mcq choice with the correct flag stripped.
type OptionView struct {
	Text string `json:"text"`
}

// QuestionView is a question as served to quiz takers: no correct flags, no
// answer hints.
type QuestionView struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options,omitempty"`
	Marks   int          `json:"marks"`
}

// QuizResponse is the full quiz shape served to takers.
type QuizResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Subject    string         `json:"subject"`
	Slug       string         `json:"slug"`
	TotalMarks int            `json:"total_marks"`
	Questions  []QuestionView `json:"questions"`
}

// AnswerPair pairs a question ID with the submitted answer.
type AnswerPair struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmitQuizRequest is the body for POST /quiz/submit. Quiz accepts either a
// quiz ID or its slug.
type SubmitQuizRequest struct {
	Quiz    string       `json:"quiz"`
	Answers []AnswerPair `json:"answers"`
}

// CertificateResponse is the public certificate shape.
type CertificateResponse struct {
	CertificateID string    `json:"certificate_id"`
	UserName      string    `json:"user_name"`
	QuizTitle     string    `json:"quiz_title"`
	Score         int       `json:"score"`
	IssuedAt      time.Time `json:"issued_at"`
}

// SubmitQuizResponse is the result of a submission.
type SubmitQuizResponse struct {
	Score       int                  `json:"score"`
	TotalMarks  int                  `json:"total_marks"`
	Percent     float64              `json:"percent"`
	Certificate *CertificateResponse `json:"certificate,omitempty"`
}

// UserScoreResponse summarizes the caller's standing on one quiz.
type UserScoreResponse struct {
	QuizID            string `json:"quiz_id"`
	QuizTitle         string `json:"quiz_title"`
	Score             int    `json:"score"`
	TotalMarks        int    `json:"total_marks"`
	CertificateIssued bool   `json:"certificate_issued"`
}
