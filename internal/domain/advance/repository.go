package advance

import "context"

// AdvanceRepository is the advance collection of the record store.
type AdvanceRepository interface {
	List(ctx context.Context) ([]AdvanceEntry, error)
	Insert(ctx context.Context, entry AdvanceEntry) error
	Delete(ctx context.Context, id string) error
}
