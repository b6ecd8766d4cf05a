package postgresql

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	return loadCollection[employee.Employee](ctx, q, keyEmployees)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	items, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range items {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Insert(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[employee.Employee](ctx, q, keyEmployees)
	if err != nil {
		return err
	}
	items = append(items, emp)
	return saveCollection(ctx, q, keyEmployees, items)
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[employee.Employee](ctx, q, keyEmployees)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == emp.ID {
			items[i] = emp
			return saveCollection(ctx, q, keyEmployees, items)
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[employee.Employee](ctx, q, keyEmployees)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, emp := range items {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}
	if len(kept) == len(items) {
		return employee.ErrEmployeeNotFound
	}
	return saveCollection(ctx, q, keyEmployees, kept)
}
