// Package utils provides common string cleanup helpers for scraped text.
package utils

import "strings"

// CollapseWhitespace trims the string and replaces any run of whitespace
// with a single space. Scraped table cells frequently carry stray newlines
// and non-breaking padding.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanCell normalizes a scraped cell value: collapses whitespace and maps
// placeholder values ("nan", "-", "n/a") to the empty string.
func CleanCell(s string) string {
	s = CollapseWhitespace(s)

	switch strings.ToLower(s) {
	case "nan", "-", "n/a", "none":
		return ""
	}

	return s
}

// StripPunctuation removes leading/trailing punctuation that sources attach
// to designator text (stray dots, commas, brackets).
func StripPunctuation(s string) string {
	return strings.Trim(s, ".,;:()[]")
}
