package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateString truncates a string to a maximum number of runes with an
// ellipsis.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// PadString pads a string to a specific width
func PadString(s string, width int, padChar rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	return s + strings.Repeat(string(padChar), width-n)
}

// KeyHint is one entry in a help line, e.g. {"enter", "expand"}.
type KeyHint struct {
	Key  string
	Desc string
}

// FormatKeyHints joins hints as "key: desc • key: desc".
func FormatKeyHints(hints ...KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
