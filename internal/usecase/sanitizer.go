package usecase

import (
	"regexp"
	"strings"
)

// maxQueryLength bounds search queries before they reach any data source.
const maxQueryLength = 100

// Package-level compiled regex patterns for performance
var (
	// disallowedCharsPattern strips everything outside the allow-list of
	// letters (including Spanish accented letters), digits, and spaces.
	disallowedCharsPattern = regexp.MustCompile(`[^a-zA-Z0-9áéíóúñüÁÉÍÓÚÑÜ\s]`)

	// whitespacePattern collapses runs of whitespace
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeQuery cleans untrusted search input: trims, bounds length, and
// removes every character outside the allow-list. The result may be empty,
// which callers treat as "no targeted query".
func SanitizeQuery(query string) string {
	query = strings.TrimSpace(query)
	if runes := []rune(query); len(runes) > maxQueryLength {
		query = string(runes[:maxQueryLength])
	}

	query = disallowedCharsPattern.ReplaceAllString(query, "")
	query = whitespacePattern.ReplaceAllString(query, " ")
	return strings.TrimSpace(query)
}
