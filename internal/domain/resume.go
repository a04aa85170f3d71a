package domain

import "time"

// PersonalInfo is the header block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ResumeEntry is one free-form item of a resume section. The frontend owns
// the exact meaning of each field per section.
type ResumeEntry struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Resume is the one-per-user resume document.
type Resume struct {
	ID             string
	UserID         string
	Personal       PersonalInfo
	Education      []ResumeEntry
	Experience     []ResumeEntry
	Skills         []string
	Projects       []ResumeEntry
	Certifications []ResumeEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmptyResume returns the fixed empty shape used by reset, preserving only
// the user linkage.
func EmptyResume(userID string) *Resume {
	return &Resume{
		UserID:         userID,
		Personal:       PersonalInfo{},
		Education:      []ResumeEntry{},
		Experience:     []ResumeEntry{},
		Skills:         []string{},
		Projects:       []ResumeEntry{},
		Certifications: []ResumeEntry{},
	}
}
