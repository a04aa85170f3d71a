package service

import (
	"regexp"
	"strings"
)

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeEmail lowercases and trims an email so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// slugify derives a URL slug from a title: lowercase, alphanumeric runs
// joined by single hyphens.
func slugify(title string) string {
	slug := slugUnsafe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
