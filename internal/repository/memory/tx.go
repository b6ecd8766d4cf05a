package memory

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type txManager struct{}

// NewTxManager returns a pass-through database.TxManager. The in-memory
// repositories mutate under their own locks, so there is nothing to
// coordinate.
func NewTxManager() database.TxManager {
	return txManager{}
}

func (txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
