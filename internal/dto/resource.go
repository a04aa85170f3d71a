package dto

import "time"

// UploadResourceRequest carries the multipart metadata fields accompanying an
// uploaded file.
type UploadResourceRequest struct {
	Title       string `form:"title"`
	Subject     string `form:"subject"`
	Course      string `form:"course"`
	Topic       string `form:"topic"`
	Type        string `form:"type"`
	Description string `form:"description"`
}

// ResourceResponse is one resource row.
type ResourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Course      string    `json:"course,omitempty"`
	Topic       string    `json:"topic,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResourceFilters narrows the resource list.
type ResourceFilters struct {
	Subject string `query:"subject"`
	Type    string `query:"type"`
}
