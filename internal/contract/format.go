package contract

import "fmt"

// FormatDuration renders seconds as "Hh Mm". A duration under one hour
// renders minutes only, so zero seconds comes out as "0m".
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatDecimalHours renders seconds as decimal hours, e.g. "3.5 hours".
func FormatDecimalHours(seconds int) string {
	return fmt.Sprintf("%.1f hours", float64(seconds)/3600)
}

// FormatPercent renders a percentage to one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// ClampScore rounds a productivity score and clamps it to [0, 100]. The
// provider occasionally reports fractional or out-of-range values.
func ClampScore(score float64) int {
	rounded := int(score + 0.5)
	if score < 0 {
		rounded = int(score - 0.5)
	}
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
