package postgresql

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) List(ctx context.Context) ([]advance.AdvanceEntry, error) {
	q := GetQuerier(ctx, r.db)
	return loadCollection[advance.AdvanceEntry](ctx, q, keyAdvances)
}

func (r *advanceRepository) Insert(ctx context.Context, entry advance.AdvanceEntry) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[advance.AdvanceEntry](ctx, q, keyAdvances)
	if err != nil {
		return err
	}
	items = append(items, entry)
	return saveCollection(ctx, q, keyAdvances, items)
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[advance.AdvanceEntry](ctx, q, keyAdvances)
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
		return advance.ErrAdvanceNotFound
	}
	return saveCollection(ctx, q, keyAdvances, kept)
}
