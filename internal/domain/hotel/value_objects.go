package hotel

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptySlug   = errors.New("slug cannot be empty")
	ErrInvalidSlug = errors.New("slug may only contain lowercase letters, digits and hyphens")
)

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugHyphenPattern = regexp.MustCompile(`[\s_-]+`)
)

// Slug is the URL-safe tenant identifier, globally unique across hotels.
type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Slug{}, ErrEmptySlug
	}
	if !slugPattern.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

// SlugFromName derives a slug from a display name: lowercase, strip
// non-alphanumerics (underscores included), collapse whitespace into
// single hyphens.
func SlugFromName(name string) (Slug, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugHyphenPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return NewSlug(s)
}

// WithRandomSuffix disambiguates a colliding slug with the first 8 chars of
// a fresh UUID.
func (s Slug) WithRandomSuffix() Slug {
	return Slug{value: s.value + "-" + uuid.NewString()[:8]}
}

func (s Slug) Value() string {
	return s.value
}
