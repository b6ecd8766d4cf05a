package attendance

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	// List returns entries visible to the caller. Supervisors see only
	// entries they created.
	List(ctx context.Context, actor auth.Identity) ([]AttendanceResponse, error)

	// Create runs the duplicate-attendance check before inserting.
	// Supervisors may only record for today; nobody may record a future
	// date.
	Create(ctx context.Context, actor auth.Identity, req CreateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, id string) error
}
