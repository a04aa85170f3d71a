package domain

import (
	"fmt"
	"strings"
	"time"
)

// ResourceType classifies an uploaded artifact.
type ResourceType string

const (
	ResourceNote    ResourceType = "note"
	ResourcePYQ     ResourceType = "pyq"
	ResourceRoadmap ResourceType = "roadmap"
	ResourceVideo   ResourceType = "video"
)

// ValidResourceType reports whether s names a known resource type.
func ValidResourceType(s string) bool {
	switch ResourceType(s) {
	case ResourceNote, ResourcePYQ, ResourceRoadmap, ResourceVideo:
		return true
	}
	return false
}

// Resource is one uploaded artifact. URL is the public location; ObjectKey is
// the storage-side handle used for deletion.
type Resource struct {
	ID          string
	Title       string
	Subject     string
	Course      string
	Topic       string
	Type        ResourceType
	Description string
	URL         string
	ObjectKey   string
	CreatedAt   time.Time
}

// Validate validates the resource metadata.
func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return NewInvalidInputError("subject is required")
	}
	if !ValidResourceType(string(r.Type)) {
		return NewInvalidInputError(fmt.Sprintf("unknown resource type: %s", r.Type))
	}
	return nil
}
