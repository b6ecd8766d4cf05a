package advance

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
)

type AdvanceService interface {
	// List returns entries visible to the caller. Supervisors see only
	// entries they created.
	List(ctx context.Context, actor auth.Identity) ([]AdvanceResponse, error)

	// Create runs the monthly cap check (50% of monthly salary) and the
	// one-advance-per-day check before inserting.
	Create(ctx context.Context, actor auth.Identity, req CreateAdvanceRequest) (AdvanceResponse, error)

	Delete(ctx context.Context, id string) error
}
