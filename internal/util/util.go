// internal/util/util.go
// Package util holds small text helpers for fitting values into terminal columns.
package util

import "unicode/utf8"

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// ColumnWidth returns the rune width of the widest of header and cells,
// capped at limit when limit is positive.
func ColumnWidth(header string, cells []string, limit int) int {
	width := utf8.RuneCountInString(header)
	for _, c := range cells {
		if n := utf8.RuneCountInString(c); n > width {
			width = n
		}
	}
	if limit > 0 && width > limit {
		return limit
	}
	return width
}
