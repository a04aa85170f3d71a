package models

import (
	"database/sql"
	"time"
)

// Resume is the one-per-user resume row. Sections live in jsonb columns.
type Resume struct {
	ID             string             `db:"id"`
	UserID         string             `db:"user_id"`
	Personal       PersonalInfoColumn `db:"personal"`
	Education      EntryList          `db:"education"`
	Experience     EntryList          `db:"experience"`
	Skills         StringSlice        `db:"skills"`
	Projects       EntryList          `db:"projects"`
	Certifications EntryList          `db:"certifications"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

// Doc is a knowledge-article header row.
type Doc struct {
	ID        string       `db:"id"`
	Title     string       `db:"title"`
	Subject   string       `db:"subject"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

// DocQuestion is one ordered nested question of a doc. Answer parts live in
// a jsonb column.
type DocQuestion struct {
	ID       string      `db:"id"`
	DocID    string      `db:"doc_id"`
	Position int         `db:"position"`
	Title    string      `db:"title"`
	Question string      `db:"question"`
	Answers  SectionList `db:"answers"`
}

// Resource is one uploaded artifact row.
type Resource struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Subject     string         `db:"subject"`
	Course      sql.NullString `db:"course"`
	Topic       sql.NullString `db:"topic"`
	Type        string         `db:"type"`
	Description sql.NullString `db:"description"`
	URL         string         `db:"url"`
	ObjectKey   string         `db:"object_key"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Roadmap is a curriculum row. Months live in a jsonb column.
type Roadmap struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Months      MonthList      `db:"months"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// RoadmapProgress is one user's progress row for one roadmap, kept unique
// per (user_id, roadmap_id).
type RoadmapProgress struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	RoadmapID string    `db:"roadmap_id"`
	Completed BoolMap   `db:"completed"`
	UpdatedAt time.Time `db:"updated_at"`
}
