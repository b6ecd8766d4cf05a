package database

import "context"

// TxManager runs a function inside a storage transaction. The transaction
// travels in the context so repositories pick it up transparently.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
