package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Length returns the number of runes in s. Field limits are expressed in
// characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
