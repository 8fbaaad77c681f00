package helper

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// GenerateSlug lowercases the title and collapses every run of characters
// outside [a-z0-9] into a single hyphen. Leading and trailing hyphens are
// kept, so "Hello World!" becomes "hello-world-".
func GenerateSlug(title string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
}
