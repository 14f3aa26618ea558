package utils

import "strings"

// Slugify derives the URL slug for a service name: lowercase with spaces
// replaced by hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// MatchesServiceSlug reports whether a requested slug resolves to a service
// with the given derived slug. Matching passes, in order: exact, substring in
// either direction, then comparison with the "-session" suffix stripped from
// both sides. The first pass that matches wins.
func MatchesServiceSlug(requested, derived string) bool {
	if requested == "" || derived == "" {
		return false
	}
	if requested == derived {
		return true
	}
	if strings.Contains(derived, requested) || strings.Contains(requested, derived) {
		return true
	}
	return strings.TrimSuffix(requested, "-session") == strings.TrimSuffix(derived, "-session")
}
