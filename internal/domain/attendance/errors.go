package attendance

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("an entry punch already exists for this employee today")
	ErrAlreadyClockedOut = errors.New("an exit punch already exists for this employee today")
	ErrPunchNotFound     = errors.New("punch not found")
)
