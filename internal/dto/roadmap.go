package dto

import "easyway/internal/domain"

// CreateRoadmapRequest is the body for POST /roadmaps.
type CreateRoadmapRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Months      []domain.RoadmapMonth `json:"months"`
}

// RoadmapSummary is one row of the roadmap list.
type RoadmapSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	MonthCount  int    `json:"month_count"`
}

// RoadmapResponse is roadmap content plus the caller's progress map.
type RoadmapResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Months      []domain.RoadmapMonth `json:"months"`
	Progress    map[string]bool       `json:"progress"`
}

// ToggleStepRequest is the body for POST /roadmaps/:id/toggle.
type ToggleStepRequest struct {
	MonthIndex int `json:"month_index"`
	StepIndex  int `json:"step_index"`
}

// ToggleStepResponse returns the updated progress mapping.
type ToggleStepResponse struct {
	Progress map[string]bool `json:"progress"`
}
