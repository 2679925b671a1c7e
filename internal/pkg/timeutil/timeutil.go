// Package timeutil handles the "HH:MM" wall-clock values the timeclock stores
// for scheduled and punched times. A Clock is a time of day with no date
// attached; differences between two Clocks are taken on the same nominal day.
package timeutil

import (
	"fmt"
	"time"
)

type Clock struct {
	Hour   int
	Minute int
}

var (
	ErrInvalidClock = fmt.Errorf("invalid HH:MM time")
)

// ParseClock parses a strict zero-padded 24-hour "HH:MM" string. Malformed
// input returns an error; callers that want the legacy behavior of falling
// back to a configured default should use ParseClockOr.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ParseClockOr parses s, substituting fallback when s is malformed.
func ParseClockOr(s string, fallback Clock) Clock {
	c, err := ParseClock(s)
	if err != nil {
		return fallback
	}
	return c
}

// ClockFromTime extracts the time of day from t.
func ClockFromTime(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// String renders the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// MinutesBetween returns a minus b in minutes, both taken on the same nominal
// day. A negative result means a is earlier in the day than b; cross-midnight
// intervals are not handled specially.
func MinutesBetween(a, b Clock) int {
	return a.Minutes() - b.Minutes()
}

// FormatLateness renders a lateness in minutes for display: "5min" under an
// hour, "1h05" from an hour up.
func FormatLateness(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dmin", minutes)
}

// FormatDuration renders a worked duration in minutes as "8h30".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
