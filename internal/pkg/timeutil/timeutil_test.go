package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Valid(t *testing.T) {
	c, err := ParseClock("08:00")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 8, Minute: 0}, c)

	c, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 23, Minute: 59}, c)
}

func TestParseClock_Invalid(t *testing.T) {
	for _, input := range []string{"", "8:00", "08:0", "25:00", "08:61", "0800", "ab:cd", "08:00:00"} {
		_, err := ParseClock(input)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", input)
	}
}

func TestParseClockOr_Fallback(t *testing.T) {
	fallback := Clock{Hour: 8, Minute: 0}
	assert.Equal(t, Clock{Hour: 9, Minute: 30}, ParseClockOr("09:30", fallback))
	assert.Equal(t, fallback, ParseClockOr("not a time", fallback))
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "08:05", Clock{Hour: 8, Minute: 5}.String())
	assert.Equal(t, "20:00", Clock{Hour: 20, Minute: 0}.String())
}

func TestClockFromTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 42, 11, 0, time.UTC)
	assert.Equal(t, Clock{Hour: 9, Minute: 42}, ClockFromTime(ts))
}

func TestMinutesBetween(t *testing.T) {
	assert.Equal(t, 5, MinutesBetween(Clock{20, 5}, Clock{20, 0}))
	assert.Equal(t, 0, MinutesBetween(Clock{8, 0}, Clock{8, 0}))
	assert.Equal(t, -60, MinutesBetween(Clock{19, 0}, Clock{20, 0}))
	assert.Equal(t, 125, MinutesBetween(Clock{10, 5}, Clock{8, 0}))
}

func TestFormatLateness(t *testing.T) {
	assert.Equal(t, "5min", FormatLateness(5))
	assert.Equal(t, "59min", FormatLateness(59))
	assert.Equal(t, "1h00", FormatLateness(60))
	assert.Equal(t, "1h05", FormatLateness(65))
	assert.Equal(t, "2h05", FormatLateness(125))
	assert.Equal(t, "1min", FormatLateness(1))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "9h00", FormatDuration(540))
	assert.Equal(t, "8h00", FormatDuration(480))
	assert.Equal(t, "0h00", FormatDuration(0))
}
