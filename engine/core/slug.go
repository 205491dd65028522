package core

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slug is a validated, URL-safe identifier (lowercase, hyphen-separated).
type Slug string

// NewSlug derives a slug from arbitrary text, normalising case, whitespace
// and special characters.
func NewSlug(text string) Slug {
	return Slug(slug.Make(text))
}

// ParseSlug validates that s is already in canonical slug form.
func ParseSlug(s string) (Slug, error) {
	if s == "" {
		return "", fmt.Errorf("empty slug")
	}
	if !slug.IsSlug(s) {
		return "", fmt.Errorf("invalid slug: %q", s)
	}
	return Slug(s), nil
}

func (s Slug) String() string {
	return string(s)
}
