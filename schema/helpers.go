package schema

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatScore formats a score as "9.5/10".
func FormatScore(v, maxValue float64) string {
	return FormatValue(v) + "/" + FormatValue(maxValue)
}

// FormatValue prints a score with the shortest exact representation ("10", "9.5").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinItems joins pros/cons for single-cell outputs such as CSV.
func JoinItems(items []string) string {
	return strings.Join(items, "|")
}

// Truncate shortens s to at most width runes, ending with "...".
// Widths of 3 or less leave s unchanged.
func Truncate(s string, width int) string {
	if width <= 3 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
