package payout

import "errors"

var (
	ErrPayoutNotFound = errors.New("payout entry not found")

	// ErrNothingPayable rejects a disbursement when the employee's net
	// payable for the month is already zero.
	ErrNothingPayable = errors.New("nothing payable for this employee in this month")

	ErrAmountExceedsPayable = errors.New("payout amount exceeds net payable for this month")
)
