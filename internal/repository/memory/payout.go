package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
)

type PayoutRepository struct {
	mu    sync.RWMutex
	items []payout.PayoutEntry
}

func NewPayoutRepository(seed ...payout.PayoutEntry) *PayoutRepository {
	return &PayoutRepository{items: append([]payout.PayoutEntry(nil), seed...)}
}

func (r *PayoutRepository) List(ctx context.Context) ([]payout.PayoutEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]payout.PayoutEntry(nil), r.items...), nil
}

func (r *PayoutRepository) Insert(ctx context.Context, entry payout.PayoutEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, entry)
	return nil
}

func (r *PayoutRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return payout.ErrPayoutNotFound
}
