// Package progress converts page counts into the completion percentage
// shown on book cards.
package progress

import "math"

// Percent returns the completion percentage in [0, 100].
//
// A missing, zero, or negative total yields 0; whether to hide the
// progress bar entirely in that case is the display layer's call. A
// missing current page counts as 0, and the current page is clamped to
// [0, total] before the ratio, so a stale count past the end of the
// book still reads as 100%.
func Percent(totalPages, currentPage *int) int {
	if totalPages == nil || *totalPages <= 0 {
		return 0
	}
	total := *totalPages

	current := 0
	if currentPage != nil {
		current = *currentPage
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	pct := int(math.Round(float64(current) / float64(total) * 100))

	// Guard rounding artifacts.
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
