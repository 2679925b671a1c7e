package employee

import "time"

type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

// Default scheduled hours per shift, applied when a new employee is created
// without explicit times.
const (
	DayDefaultEntryTime   = "08:00"
	DayDefaultExitTime    = "17:00"
	NightDefaultEntryTime = "20:00"
	NightDefaultExitTime  = "05:00"
)

type Employee struct {
	ID         int
	LastName   string
	FirstName  string
	Department string
	EntryTime  string // scheduled entry, "HH:MM"
	ExitTime   string // scheduled exit, "HH:MM"
	Active     bool
	Shift      Shift
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ValidShift(s Shift) bool {
	return s == ShiftDay || s == ShiftNight
}

// DefaultEntryTime returns the scheduled entry time for a shift.
func DefaultEntryTime(s Shift) string {
	if s == ShiftNight {
		return NightDefaultEntryTime
	}
	return DayDefaultEntryTime
}

// DefaultExitTime returns the scheduled exit time for a shift.
func DefaultExitTime(s Shift) string {
	if s == ShiftNight {
		return NightDefaultExitTime
	}
	return DayDefaultExitTime
}
