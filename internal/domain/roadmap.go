package domain

import (
	"fmt"
	"strings"
	"time"
)

// RoadmapStep is one day/topic item inside a month.
type RoadmapStep struct {
	Day     string   `json:"day"`
	Topic   string   `json:"topic"`
	Details []string `json:"details"`
}

// RoadmapMonth groups ordered steps under a month title.
type RoadmapMonth struct {
	Title string        `json:"title"`
	Steps []RoadmapStep `json:"steps"`
}

// Roadmap is a titled curriculum broken into months.
type Roadmap struct {
	ID          string
	Title       string
	Description string
	Months      []RoadmapMonth
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the roadmap content.
func (r *Roadmap) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if len(r.Months) == 0 {
		return NewInvalidInputError("roadmap needs at least one month")
	}
	for i, m := range r.Months {
		if strings.TrimSpace(m.Title) == "" {
			return NewInvalidInputError(fmt.Sprintf("month %d: title is required", i+1))
		}
		if len(m.Steps) == 0 {
			return NewInvalidInputError(fmt.Sprintf("month %d: needs at least one step", i+1))
		}
	}
	return nil
}

// CheckStepIndex rejects toggles that do not address an existing step, so
// out-of-range indices can never create orphan progress keys.
func (r *Roadmap) CheckStepIndex(monthIndex, stepIndex int) error {
	if monthIndex < 0 || monthIndex >= len(r.Months) {
		return NewInvalidInputError(fmt.Sprintf("month index %d out of range", monthIndex))
	}
	if stepIndex < 0 || stepIndex >= len(r.Months[monthIndex].Steps) {
		return NewInvalidInputError(fmt.Sprintf("step index %d out of range", stepIndex))
	}
	return nil
}

// ProgressKey builds the composite "<monthIndex>-<stepIndex>" key used in a
// progress map.
func ProgressKey(monthIndex, stepIndex int) string {
	return fmt.Sprintf("%d-%d", monthIndex, stepIndex)
}

// RoadmapProgress is one user's completion state for one roadmap: a mapping
// from ProgressKey to done.
type RoadmapProgress struct {
	ID        string
	UserID    string
	RoadmapID string
	Completed map[string]bool
	UpdatedAt time.Time
}
