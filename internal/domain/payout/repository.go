package payout

import "context"

// PayoutRepository is the payout collection of the record store.
type PayoutRepository interface {
	List(ctx context.Context) ([]PayoutEntry, error)
	Insert(ctx context.Context, entry PayoutEntry) error
	Delete(ctx context.Context, id string) error
}
