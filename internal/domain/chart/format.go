package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count formats v as a whole number with thousands separators: "1,234".
func Count(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Percent formats a ratio as a percentage with one decimal: 0.534 -> "53.4%".
func Percent(ratio float64) string {
	return printer.Sprintf("%.1f%%", ratio*100)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
