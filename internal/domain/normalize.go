package domain

import (
	"strings"
	"unicode"
)

// CleanName prepares a reference-data or item name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved.
func CleanName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Slugify derives a URL-safe identifier from a name:
//   - lowercases letters
//   - replaces every run of non-alphanumerics with a single hyphen
//   - trims leading/trailing hyphens
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
