package advance

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
	"github.com/shopspring/decimal"
)

var capRatio = decimal.NewFromFloat(0.5)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AdvanceServiceImpl {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// List implements advance.AdvanceService. Supervisors get only the
// entries they created.
func (s *AdvanceServiceImpl) List(ctx context.Context, actor auth.Identity) ([]advance.AdvanceResponse, error) {
	entries, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	responses := make([]advance.AdvanceResponse, 0, len(entries))
	for _, entry := range entries {
		if !actor.SeesAllEntries() && entry.CreatedBy != actor.UserID {
			continue
		}
		resp := advance.AdvanceResponse{AdvanceEntry: entry, EmployeeName: employee.UnknownName}
		if name, ok := names[entry.EmployeeID]; ok {
			resp.EmployeeName = name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Create implements advance.AdvanceService. The cap check sums the
// employee's existing advances within the request's calendar month; the
// new amount must keep the total at or under half the monthly salary.
func (s *AdvanceServiceImpl) Create(ctx context.Context, actor auth.Identity, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	entries, err := s.advanceRepo.List(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	month := payroll.MonthOf(req.Date)
	taken := decimal.Zero
	for _, existing := range entries {
		if existing.EmployeeID != req.EmployeeID {
			continue
		}
		if existing.Date == req.Date {
			return advance.AdvanceResponse{}, fmt.Errorf("%s already has an advance on %s: %w", emp.Name, req.Date, advance.ErrDuplicateAdvance)
		}
		if payroll.MonthOf(existing.Date) == month {
			taken = taken.Add(existing.Amount)
		}
	}

	limit := emp.MonthlySalary.Mul(capRatio)
	if taken.Add(req.Amount).GreaterThan(limit) {
		return advance.AdvanceResponse{}, fmt.Errorf(
			"%s already took %s of the %s limit for %s: %w",
			emp.Name, taken.String(), limit.String(), month, advance.ErrCapExceeded,
		)
	}

	entry := advance.AdvanceEntry{
		ID:         identifier.New(identifier.PrefixAdvance),
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Date:       req.Date,
		Reason:     req.Reason,
		CreatedAt:  s.now().UTC(),
		CreatedBy:  actor.UserID,
	}

	if err := s.advanceRepo.Insert(ctx, entry); err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to insert advance: %w", err)
	}

	return advance.AdvanceResponse{AdvanceEntry: entry, EmployeeName: emp.Name}, nil
}

// Delete implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}
