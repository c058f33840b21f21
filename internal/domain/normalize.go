package domain

import (
	"regexp"
	"strings"
)

// wordPattern accepts lowercase letters with optional inner hyphens
// ("cat", "well-being"), nothing else.
var wordPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// NormalizeWord prepares a headword for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - rejects anything that is not letters and inner hyphens
//
// Normalization is idempotent: NormalizeWord(w) == NormalizeWord(NormalizeWord(w))
// for every accepted input.
func NormalizeWord(text string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return "", NewValidationError("word", "required")
	}
	if !wordPattern.MatchString(normalized) {
		return "", NewValidationError("word", "must contain only letters and hyphens")
	}
	return normalized, nil
}
