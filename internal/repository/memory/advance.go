package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
)

type AdvanceRepository struct {
	mu    sync.RWMutex
	items []advance.AdvanceEntry
}

func NewAdvanceRepository(seed ...advance.AdvanceEntry) *AdvanceRepository {
	return &AdvanceRepository{items: append([]advance.AdvanceEntry(nil), seed...)}
}

func (r *AdvanceRepository) List(ctx context.Context) ([]advance.AdvanceEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]advance.AdvanceEntry(nil), r.items...), nil
}

func (r *AdvanceRepository) Insert(ctx context.Context, entry advance.AdvanceEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, entry)
	return nil
}

func (r *AdvanceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return advance.ErrAdvanceNotFound
}
