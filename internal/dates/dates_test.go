package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference moment for all tests: 2025-10-10 15:30 local time.
var now = time.Date(2025, time.October, 10, 15, 30, 0, 0, time.Local)

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		overdue bool
	}{
		{"yesterday", "2025-10-09", true},
		{"today", "2025-10-10", false},
		{"today with time component", "2025-10-10T23:59:00Z", false},
		{"tomorrow", "2025-10-11", false},
		{"far past", "2020-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOverdue(tt.value, now)
			require.NoError(t, err)
			assert.Equal(t, tt.overdue, got)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		value string
		days  int
	}{
		{"today", "2025-10-10", 0},
		{"tomorrow", "2025-10-11", 1},
		{"ten days out", "2025-10-20", 10},
		{"yesterday", "2025-10-09", -1},
		{"five days ago", "2025-10-05", -5},
		{"across a year boundary", "2026-01-01", 83},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntil(tt.value, now)
			require.NoError(t, err)
			assert.Equal(t, tt.days, got)
		})
	}
}

// isOverdue and a negative daysUntil must agree for any valid date.
func TestOverdueMatchesNegativeDaysUntil(t *testing.T) {
	for offset := -30; offset <= 30; offset++ {
		date := now.AddDate(0, 0, offset).Format("2006-01-02")

		overdue, err := IsOverdue(date, now)
		require.NoError(t, err)
		days, err := DaysUntil(date, now)
		require.NoError(t, err)

		assert.Equal(t, days < 0, overdue, "date %s (offset %d)", date, offset)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"2025-01-01", "Jan 1, 2025"},
		{"2025-12-31", "Dec 31, 2025"},
		{"2025-10-10", "Oct 10, 2025"},
		{"2024-02-29", "Feb 29, 2024"},
	}
	for _, tt := range tests {
		got, err := Format(tt.value, now)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestInvalidInputs(t *testing.T) {
	invalid := []string{"", "   ", "not-a-date", "2025-13-45", "tomorrow"}

	for _, value := range invalid {
		t.Run("value "+value, func(t *testing.T) {
			_, err := IsOverdue(value, now)
			assertInvalidDate(t, err, "IsOverdue", value)

			_, err = DaysUntil(value, now)
			assertInvalidDate(t, err, "DaysUntil", value)

			_, err = Format(value, now)
			assertInvalidDate(t, err, "Format", value)
		})
	}
}

func assertInvalidDate(t *testing.T, err error, op, value string) {
	t.Helper()
	var invalidErr *InvalidDateError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, op, invalidErr.Op)
	assert.Equal(t, value, invalidErr.Value)
	assert.Contains(t, err.Error(), op)
	assert.Contains(t, err.Error(), value)
}

func TestParseLayouts(t *testing.T) {
	// Local-layout values keep their calendar day in now's location.
	for _, value := range []string{
		"2025-10-10",
		"2025-10-10T12:00:00",
		"2025-10-10 12:00:00",
	} {
		parsed, err := Parse("Parse", value, now)
		require.NoError(t, err, value)
		assert.Equal(t, "2025-10-10", parsed.Format("2006-01-02"), value)
	}

	// Zoned values keep their instant; compare in UTC to stay
	// independent of the machine's timezone.
	for _, value := range []string{
		"2025-10-10T12:00:00Z",
		"2025-10-10T12:00:00.123Z",
	} {
		parsed, err := Parse("Parse", value, now)
		require.NoError(t, err, value)
		assert.Equal(t, "2025-10-10", parsed.UTC().Format("2006-01-02"), value)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2025-10-10"))
	assert.True(t, Valid("2025-10-10T12:00:00Z"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("garbage"))

	// Valid never reports a typed error to callers, but Parse does.
	_, err := Parse("Parse", "garbage", now)
	var invalidErr *InvalidDateError
	assert.True(t, errors.As(err, &invalidErr))
}
