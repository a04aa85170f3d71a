package dto

import "easyway/internal/domain"

// ResumeRequest is the body for creating or updating a resume. Section arrays
// are stored as given; the service owns the user linkage.
type ResumeRequest struct {
	Personal       domain.PersonalInfo  `json:"personal"`
	Education      []domain.ResumeEntry `json:"education"`
	Experience     []domain.ResumeEntry `json:"experience"`
	Skills         []string             `json:"skills"`
	Projects       []domain.ResumeEntry `json:"projects"`
	Certifications []domain.ResumeEntry `json:"certifications"`
}

// ResumeResponse is the resume shape returned to its owner.
type ResumeResponse struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Personal       domain.PersonalInfo  `json:"personal"`
	Education      []domain.ResumeEntry `json:"education"`
	Experience     []domain.ResumeEntry `json:"experience"`
	Skills         []string             `json:"skills"`
	Projects       []domain.ResumeEntry `json:"projects"`
	Certifications []domain.ResumeEntry `json:"certifications"`
}
