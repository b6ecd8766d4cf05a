package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/identifier"
	payrollsvc "github.com/facade-tech/workforce-backend-go/internal/service/payroll"
)

type PayoutServiceImpl struct {
	payoutRepo     payout.PayoutRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	now            func() time.Time
}

func NewPayoutService(
	payoutRepo payout.PayoutRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		payoutRepo:     payoutRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		now:            time.Now,
	}
}

// List implements payout.PayoutService.
func (s *PayoutServiceImpl) List(ctx context.Context) ([]payout.PayoutResponse, error) {
	entries, err := s.payoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	responses := make([]payout.PayoutResponse, 0, len(entries))
	for _, entry := range entries {
		resp := payout.PayoutResponse{PayoutEntry: entry, EmployeeName: employee.UnknownName}
		if name, ok := names[entry.EmployeeID]; ok {
			resp.EmployeeName = name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Create implements payout.PayoutService. The disbursable ceiling is the
// employee's net payable for the month at the time of the call; an
// omitted or zero amount disburses all of it.
func (s *PayoutServiceImpl) Create(ctx context.Context, req payout.CreatePayoutRequest) (payout.PayoutResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payout.PayoutResponse{}, err
	}

	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return payout.PayoutResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return payout.PayoutResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}
	payouts, err := s.payoutRepo.List(ctx)
	if err != nil {
		return payout.PayoutResponse{}, fmt.Errorf("failed to list payouts: %w", err)
	}

	summary := payrollsvc.SummarizeEmployee(emp, entries, advances, payouts, payroll.MonthWindow(req.Month))
	if summary.NetPayable.IsZero() {
		return payout.PayoutResponse{}, fmt.Errorf("%s has no outstanding balance for %s: %w", emp.Name, req.Month, payout.ErrNothingPayable)
	}

	amount := summary.NetPayable
	if req.Amount != nil && !req.Amount.IsZero() {
		amount = *req.Amount
		if amount.GreaterThan(summary.NetPayable) {
			return payout.PayoutResponse{}, fmt.Errorf(
				"requested %s but only %s is payable to %s for %s: %w",
				amount.String(), summary.NetPayable.String(), emp.Name, req.Month, payout.ErrAmountExceedsPayable,
			)
		}
	}

	entry := payout.PayoutEntry{
		ID:          identifier.New(identifier.PrefixPayout),
		EmployeeID:  req.EmployeeID,
		Amount:      amount,
		Date:        s.now().Format("2006-01-02"),
		Month:       req.Month,
		PaymentMode: payout.PaymentMode(req.PaymentMode),
		Reference:   req.Reference,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.payoutRepo.Insert(ctx, entry); err != nil {
		return payout.PayoutResponse{}, fmt.Errorf("failed to insert payout: %w", err)
	}

	return payout.PayoutResponse{PayoutEntry: entry, EmployeeName: emp.Name}, nil
}

// Delete implements payout.PayoutService.
func (s *PayoutServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payoutRepo.Delete(ctx, id)
}
