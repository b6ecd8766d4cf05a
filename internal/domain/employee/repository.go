package employee

import "context"

// EmployeeRepository is the employee collection of the record store. The
// whole collection is read wholesale and written back wholesale on every
// mutation.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Insert(ctx context.Context, emp Employee) error
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
