package payout

import "context"

type PayoutService interface {
	List(ctx context.Context) ([]PayoutResponse, error)

	// Create records a disbursement against the requested month. The
	// amount defaults to the employee's current net payable and may not
	// exceed it.
	Create(ctx context.Context, req CreatePayoutRequest) (PayoutResponse, error)

	Delete(ctx context.Context, id string) error
}
