package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	advanceRepo  advance.AdvanceRepository
	txManager    database.TxManager
	now          func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	advanceRepo advance.AdvanceRepository,
	txManager database.TxManager,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		advanceRepo:  advanceRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Create implements employee.EmployeeService. An initial advance, when
// requested, is written in the same transaction as the employee so the
// two records cannot diverge.
func (s *EmployeeServiceImpl) Create(ctx context.Context, actor auth.Identity, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.UserID != nil {
		if err := s.checkUserIDFree(ctx, *req.UserID, ""); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	accessLevel := employee.AccessLevel(req.AccessLevel)
	if accessLevel == "" {
		accessLevel = employee.AccessStaff
	}

	emp := employee.Employee{
		ID:            identifier.New(identifier.PrefixEmployee),
		Name:          req.Name,
		Role:          req.Role,
		MonthlySalary: req.MonthlySalary,
		JoinDate:      req.JoinDate,
		PhotoURL:      req.PhotoURL,
		AccessLevel:   accessLevel,
		UserID:        req.UserID,
		Password:      req.Password,
		CreatedAt:     s.now().UTC(),
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.Insert(ctx, emp); err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
		if req.InitialAdvance == nil || !req.InitialAdvance.IsPositive() {
			return nil
		}
		opening := advance.AdvanceEntry{
			ID:         identifier.New(identifier.PrefixAdvance),
			EmployeeID: emp.ID,
			Amount:     *req.InitialAdvance,
			Date:       req.JoinDate,
			Reason:     advance.InitialAdvanceReason,
			CreatedAt:  s.now().UTC(),
			CreatedBy:  actor.UserID,
		}
		if err := s.advanceRepo.Insert(ctx, opening); err != nil {
			return fmt.Errorf("failed to insert initial advance: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(emp), nil
}

// Update implements employee.EmployeeService. Absent fields keep their
// stored values; an omitted password in particular is never cleared.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.UserID != nil {
		if err := s.checkUserIDFree(ctx, *req.UserID, emp.ID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.UserID = req.UserID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = *req.MonthlySalary
	}
	if req.JoinDate != nil {
		emp.JoinDate = *req.JoinDate
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = req.PhotoURL
	}
	if req.AccessLevel != nil {
		emp.AccessLevel = employee.AccessLevel(*req.AccessLevel)
	}
	if req.Password != nil {
		emp.Password = req.Password
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService. Attendance, advance and
// payout entries for the employee stay in place and resolve to "Unknown"
// on subsequent reads.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) checkUserIDFree(ctx context.Context, userID string, excludeEmployeeID string) error {
	if userID == auth.AdminUserID {
		return employee.ErrUserIDTaken
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	for _, other := range employees {
		if other.ID == excludeEmployeeID {
			continue
		}
		if other.UserID != nil && *other.UserID == userID {
			return employee.ErrUserIDTaken
		}
	}
	return nil
}
