package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0m"},
		{"under a minute", 59, "0m"},
		{"minutes only", 1740, "29m"},
		{"exactly one hour", 3600, "1h 0m"},
		{"hour and change", 3661, "1h 1m"},
		{"just under a day", 86399, "23h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDecimalHours(t *testing.T) {
	assert.Equal(t, "3.5 hours", FormatDecimalHours(12600))
	assert.Equal(t, "0.0 hours", FormatDecimalHours(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33.3%", FormatPercent(33.333))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"in range", 72, 72},
		{"fractional rounds", 72.6, 73},
		{"over range clamps", 3650, 100},
		{"under range clamps", -7150, 0},
		{"boundary low", 0, 0},
		{"boundary high", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampScore(tt.score))
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "a very ...", TruncateText("a very long activity name", 10))
	assert.Equal(t, "abc", TruncateText("abc", 3))
}
