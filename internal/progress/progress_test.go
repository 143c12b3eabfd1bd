package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		total    *int
		current  *int
		expected int
	}{
		{"zero total", intPtr(0), intPtr(50), 0},
		{"negative total", intPtr(-10), intPtr(50), 0},
		{"missing total", nil, intPtr(50), 0},
		{"missing current counts as zero", intPtr(300), nil, 0},
		{"negative current clamps to zero", intPtr(300), intPtr(-50), 0},
		{"current past total clamps to full", intPtr(300), intPtr(500), 100},
		{"rounds to nearest", intPtr(464), intPtr(100), 22},
		{"halfway", intPtr(200), intPtr(100), 50},
		{"rounds half up", intPtr(200), intPtr(1), 1},
		{"finished exactly", intPtr(250), intPtr(250), 100},
		{"zero of zero pages", intPtr(0), intPtr(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.total, tt.current))
		})
	}
}

func TestPercentAlwaysInRange(t *testing.T) {
	for total := -5; total <= 50; total += 5 {
		for current := -20; current <= 80; current += 7 {
			got := Percent(intPtr(total), intPtr(current))
			assert.GreaterOrEqual(t, got, 0, "total=%d current=%d", total, current)
			assert.LessOrEqual(t, got, 100, "total=%d current=%d", total, current)
		}
	}
}
