package models

import (
	"database/sql"
	"time"
)

// Quiz represents a quiz header row. totalMarks is derived from the question
// weights and rewritten on every save.
type Quiz struct {
	ID         string       `db:"id"` // ULID
	Title      string       `db:"title"`
	Subject    string       `db:"subject"`
	Slug       string       `db:"slug"`
	TotalMarks int          `db:"total_marks"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
	DeletedAt  sql.NullTime `db:"deleted_at"`
}

// QuizQuestion represents one ordered question of a quiz.
type QuizQuestion struct {
	ID         string         `db:"id"`
	QuizID     string         `db:"quiz_id"`
	Position   int            `db:"position"`
	Type       string         `db:"type"` // "mcq" or "code"
	Text       string         `db:"text"`
	Options    OptionList     `db:"options"`
	AnswerHint sql.NullString `db:"answer_hint"`
	Marks      int            `db:"marks"`
}

// QuizAttempt is the immutable record of one submission.
type QuizAttempt struct {
	ID          string         `db:"id"`
	QuizID      string         `db:"quiz_id"`
	UserID      string         `db:"user_id"`
	Email       string         `db:"email"`
	Answers     AnswerPairList `db:"answers"`
	Score       int            `db:"score"`
	AttemptedAt time.Time      `db:"attempted_at"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Certificate holds an issued certificate. certificate_id is the public
// lookup credential, distinct from the row's id.
type Certificate struct {
	ID            string    `db:"id"`
	CertificateID string    `db:"certificate_id"`
	UserID        string    `db:"user_id"`
	QuizID        string    `db:"quiz_id"`
	UserName      string    `db:"user_name"`
	QuizTitle     string    `db:"quiz_title"`
	Score         int       `db:"score"`
	IssuedAt      time.Time `db:"issued_at"`
}

// CompletedQuiz is the per-(user, quiz) completion row kept unique by index
// and written with an upsert.
type CompletedQuiz struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	QuizID            string    `db:"quiz_id"`
	Score             int       `db:"score"`
	CertificateIssued bool      `db:"certificate_issued"`
	UpdatedAt         time.Time `db:"updated_at"`
}
