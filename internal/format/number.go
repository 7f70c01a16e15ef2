// Package format provides display-only string formatting for numeric values
// and durations. Formatting never affects stored numeric values.
package format

import (
	"math"
	"strconv"
)

// Number formats a numeric value for display. Values that are mathematically
// equal to their own truncation render as plain integers with no trailing
// decimal part; all other values are rounded to exactly two decimal places.
//
// Parameters:
//   - v: The number to format.
//
// Returns:
//   - string: The formatted number string.
func Number(v float64) string {
	if v == 0 {
		// Normalizes negative zero.
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Terms maps a slice of values through Number.
func Terms(values []float64) []string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = Number(v)
	}
	return formatted
}
