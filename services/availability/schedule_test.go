package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  int
		close int
	}{
		{"regular hours", "08:00 - 20:00", 8, 20},
		{"overnight hours", "22:00 - 06:00", 22, 6},
		{"continuous", "00:00 - 24:00", 0, 24},
		{"non-stop alias", "Non-Stop", 0, 24},
		{"non stop with spaces", "deschis non stop", 0, 24},
		{"empty string", "", 0, 24},
		{"whitespace only", "   ", 0, 24},
		{"garbage", "garbage", 0, 24},
		{"missing close", "08:00 -", 0, 24},
		{"hour out of range", "25:00 - 30:00", 0, 24},
		{"minutes discarded", "09:30 - 17:45", 9, 17},
		{"no padding", "8:00-20:00", 8, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close := parseSchedule(tt.input)
			assert.Equal(t, tt.open, open)
			assert.Equal(t, tt.close, close)
		})
	}
}

func TestOpenSegments(t *testing.T) {
	// Regular hours: one segment.
	assert.Equal(t, []segment{{8, 20}}, openSegments(8, 20))

	// Overnight hours wrap across midnight: two segments.
	assert.Equal(t, []segment{{0, 6}, {22, 24}}, openSegments(22, 6))

	// Equal open and close: always open.
	assert.Equal(t, []segment{{0, 24}}, openSegments(7, 7))

	// Continuous operation parses to a single full-day segment.
	assert.Equal(t, []segment{{0, 24}}, openSegments(0, 24))
}
