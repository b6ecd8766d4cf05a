package postgresql

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepository{db: db}
}

func (r *payoutRepository) List(ctx context.Context) ([]payout.PayoutEntry, error) {
	q := GetQuerier(ctx, r.db)
	return loadCollection[payout.PayoutEntry](ctx, q, keyPayouts)
}

func (r *payoutRepository) Insert(ctx context.Context, entry payout.PayoutEntry) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[payout.PayoutEntry](ctx, q, keyPayouts)
	if err != nil {
		return err
	}
	items = append(items, entry)
	return saveCollection(ctx, q, keyPayouts, items)
}

func (r *payoutRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[payout.PayoutEntry](ctx, q, keyPayouts)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, entry := range items {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(items) {
		return payout.ErrPayoutNotFound
	}
	return saveCollection(ctx, q, keyPayouts, kept)
}
