package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu    sync.RWMutex
	items []employee.Employee
}

func NewEmployeeRepository(seed ...employee.Employee) *EmployeeRepository {
	return &EmployeeRepository{items: append([]employee.Employee(nil), seed...)}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]employee.Employee(nil), r.items...), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.items {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Insert(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, emp)
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == emp.ID {
			r.items[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}
