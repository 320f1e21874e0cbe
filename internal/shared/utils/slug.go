package utils

import (
	"regexp"
	"strings"
)

// Content slugs come from filenames, but they also arrive as URL path
// parameters. Slugs are validated before they are joined onto the
// content directory so a request can never escape it.
var slugRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)

// IsValidSlug reports whether s is a safe content slug: lowercase
// letters, digits and hyphens, no leading/trailing hyphen.
func IsValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// SlugFromFilename strips the content extension from a filename.
// "hello-world.mdx" -> "hello-world"
func SlugFromFilename(filename, ext string) string {
	return strings.TrimSuffix(filename, ext)
}

// GenerateSlug derives a URL-safe slug from a title.
func GenerateSlug(input string) string {
	// Lowercase, spaces to hyphens
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Keep only: a-z, 0-9, hyphens
	reg := regexp.MustCompile(`[^a-z0-9-]+`)
	cleaned := reg.ReplaceAllString(hyphenated, "")

	// Collapse consecutive hyphens
	reg = regexp.MustCompile(`-+`)
	normalized := reg.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
