package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance entry not found")

	// ErrDuplicateEntry enforces at most one entry per employee per date,
	// across all creators.
	ErrDuplicateEntry = errors.New("attendance already recorded for this employee on this date")

	ErrFutureDate   = errors.New("attendance date cannot be in the future")
	ErrDateNotToday = errors.New("supervisors can only record attendance for today")
)
