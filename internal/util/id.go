package util

import (
	"crypto/rand"
	"fmt"
	"strings"
	"unicode"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortID returns a 6-character alphanumeric string using cryptographic
// randomness. Used for project and input ids, where a compact id that reads
// well in folder names matters more than global uniqueness.
func ShortID() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes), nil
}

// TaskID returns a task ID in the format t01, t02, ..., t99, t100, etc.
// Task ids are scoped to their parent plan.
func TaskID(index int) string {
	return fmt.Sprintf("t%02d", index+1)
}

// KebabCase converts a string to kebab-case: lowercased, spaces and
// underscores become hyphens, other non-alphanumerics are dropped,
// consecutive hyphens collapse, leading/trailing hyphens are trimmed.
func KebabCase(s string) string {
	var result strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('-')
		}
		// Other characters are dropped
	}

	str := result.String()
	for strings.Contains(str, "--") {
		str = strings.ReplaceAll(str, "--", "-")
	}

	return strings.Trim(str, "-")
}
