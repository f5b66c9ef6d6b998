package organization

import (
	"regexp"
	"strings"
)

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonSlugChars     = regexp.MustCompile(`[^a-z0-9]+`)
	repeatedHyphens  = regexp.MustCompile(`-{2,}`)
	minSlugLength    = 3
	maxSlugLength    = 60
)

// Slugify derives a URL-safe slug candidate from an organization name:
// lowercased, runs of non-alphanumerics collapsed to single hyphens, trimmed.
// Short results are padded so the candidate always satisfies IsValidSlug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = repeatedHyphens.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	for len(slug) < minSlugLength {
		slug += "0"
	}
	return slug
}

// WithSuffix appends a random disambiguation suffix to a slug candidate.
func WithSuffix(slug, suffix string) string {
	return slug + "-" + suffix
}

// IsValidSlug reports whether the string is an acceptable organization slug.
func IsValidSlug(slug string) bool {
	if len(slug) < minSlugLength || len(slug) > maxSlugLength+12 {
		return false
	}
	return slugPattern.MatchString(slug)
}
