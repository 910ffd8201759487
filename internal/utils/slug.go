package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// FallbackSlug is used when a title contains no alphanumeric characters at
// all (e.g. "!!!"); the uniqueness probe then yields post, post-1, post-2, …
const FallbackSlug = "post"

// GenerateSlug derives a URL-friendly slug from a title: lowercase, every
// run of non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens stripped.
func GenerateSlug(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return FallbackSlug
	}
	return slug
}
