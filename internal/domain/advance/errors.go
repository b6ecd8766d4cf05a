package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance entry not found")

	// ErrCapExceeded enforces the 50%-of-salary limit on cumulative
	// advances within a calendar month.
	ErrCapExceeded = errors.New("monthly advance cap exceeded")

	ErrDuplicateAdvance = errors.New("advance already recorded for this employee on this date")
)
