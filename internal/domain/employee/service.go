package employee

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
)

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// Create adds an employee. When the request carries an initial
	// advance, a matching advance entry is recorded in the same
	// transaction.
	Create(ctx context.Context, actor auth.Identity, req CreateEmployeeRequest) (EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee. Entries referencing it are left in
	// place and resolve to "Unknown" at read time.
	Delete(ctx context.Context, id string) error
}
