package services

import "strconv"

// FormatRupees formats a whole-rupee amount using the Indian numbering
// system: the rightmost 3 digits form the first group, then every 2
// digits form subsequent groups (e.g., ₹12,34,567).
func FormatRupees(amount int) string {
	return "₹" + groupIndian(amount)
}

// FormatRupeesASCII is FormatRupees with an ASCII currency marker for
// renderers whose built-in fonts cannot draw the rupee sign.
func FormatRupeesASCII(amount int) string {
	return "Rs. " + groupIndian(amount)
}

func groupIndian(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	result := applyIndianGrouping(strconv.Itoa(amount))
	if negative {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping inserts commas into an integer string: the last 3
// digits stay together, the rest is grouped in pairs from the right.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
