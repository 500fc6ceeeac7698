package utils

import (
	"fmt"
	"math"
)

// TruncateChars shortens s to at most n characters (runes, so multi-byte
// text is never split mid-character).
func TruncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatINR formats an amount in Indian Rupee grouping (₹12,34,567.89):
// last three digits, then groups of two.
func FormatINR(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	// Round to paise first so a carry (999.999 → 1000.00) lands in the
	// integer part before it is grouped.
	amount = math.Round(amount*100) / 100

	intPart := int64(amount)
	frac := amount - float64(intPart)

	s := fmt.Sprintf("%d", intPart)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		grouped := ""
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		s = head + grouped + "," + tail
	}

	out := fmt.Sprintf("₹%s%s", s, fmt.Sprintf("%.2f", frac)[1:])
	if negative {
		return "-" + out
	}
	return out
}
