// Package dates holds the calendar-date helpers the book views are built
// on: validity checking, overdue checks, day counts, and display
// formatting. Every function takes the reference moment explicitly so
// callers (and tests) control "today" instead of the package reading the
// wall clock.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// InvalidDateError indicates a date string that does not parse to a
// calendar date. It is always surfaced to the caller; a silently
// defaulted date would yield misleading overdue and days-left figures.
type InvalidDateError struct {
	Op    string // operation that received the bad value
	Value string // the offending input, verbatim
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date passed to %s: %q", e.Op, e.Value)
}

// Accepted layouts, tried in order. Date-only values are interpreted in
// the reference moment's location so midnight normalization lines up.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts value to a time.Time in now's location. op names the
// calling operation for the error message.
func Parse(op, value string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, &InvalidDateError{Op: op, Value: value}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t.In(now.Location()), nil
		}
	}
	return time.Time{}, &InvalidDateError{Op: op, Value: value}
}

// Valid reports whether value parses to a calendar date.
func Valid(value string) bool {
	_, err := Parse("Valid", value, time.Now())
	return err == nil
}

// IsOverdue reports whether the date is strictly before now's calendar
// day. A date equal to today is not overdue.
func IsOverdue(value string, now time.Time) (bool, error) {
	date, err := Parse("IsOverdue", value, now)
	if err != nil {
		return false, err
	}
	return midnight(date).Before(midnight(now)), nil
}

// DaysUntil returns the signed number of days from now's calendar day to
// the date's: 0 for today, positive for future, negative for past. The
// count is the ceiling of the midnight-to-midnight duration divided by
// 24 hours.
func DaysUntil(value string, now time.Time) (int, error) {
	date, err := Parse("DaysUntil", value, now)
	if err != nil {
		return 0, err
	}
	diff := midnight(date).Sub(midnight(now))
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days, nil
}

// Format renders the date for display as e.g. "Oct 10, 2025".
func Format(value string, now time.Time) (string, error) {
	date, err := Parse("Format", value, now)
	if err != nil {
		return "", err
	}
	return date.Format("Jan 2, 2006"), nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
