// Package textutils provides common text extraction helpers shared by the
// parsers.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	isinRe       = regexp.MustCompile(`\b[A-Z]{2}[A-Z0-9]{9}[0-9]\b`)
)

// CollapseWhitespace trims the string and replaces every run of whitespace
// with a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ExtractISIN returns the first ISIN-shaped token in the text, or an empty
// string. The checksum digit is not verified; the statement itself is
// trusted to print valid identifiers.
func ExtractISIN(s string) string {
	return isinRe.FindString(s)
}
