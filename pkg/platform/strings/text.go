// Package strings provides text helpers shared by the evidence clients.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseWhitespace trims s and replaces every run of Unicode whitespace
// with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// TruncateRunes returns at most max runes of s without splitting a UTF-8
// sequence. A non-positive max disables truncation.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
