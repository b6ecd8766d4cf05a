package payroll

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	payoutRepo     payout.PayoutRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	payoutRepo payout.PayoutRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		payoutRepo:     payoutRepo,
	}
}

// EmployeeReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmployeeReport(ctx context.Context, w payroll.Window) ([]payroll.EmployeeSummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	payouts, err := s.payoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	summaries := make([]payroll.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		summaries = append(summaries, SummarizeEmployee(emp, entries, advances, payouts, w))
	}
	return summaries, nil
}

// ProjectReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) ProjectReport(ctx context.Context, w payroll.Window) ([]payroll.ProjectSummary, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	summaries := make([]payroll.ProjectSummary, 0, len(projects))
	for _, prj := range projects {
		summaries = append(summaries, SummarizeProject(prj, employees, entries, w))
	}
	return summaries, nil
}

// CompanyReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) CompanyReport(ctx context.Context, w payroll.Window) (payroll.CompanySummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.CompanySummary{}, fmt.Errorf("failed to list employees: %w", err)
	}
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return payroll.CompanySummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return payroll.CompanySummary{}, fmt.Errorf("failed to list advances: %w", err)
	}
	payouts, err := s.payoutRepo.List(ctx)
	if err != nil {
		return payroll.CompanySummary{}, fmt.Errorf("failed to list payouts: %w", err)
	}

	return SummarizeCompany(employees, entries, advances, payouts, w), nil
}

// ExportCSV implements payroll.PayrollService. Values are exactly the
// ones in the employee report for the same window.
func (s *PayrollServiceImpl) ExportCSV(ctx context.Context, w payroll.Window, out io.Writer) error {
	summaries, err := s.EmployeeReport(ctx, w)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"Employee", "Role", "Days Worked", "OT Hours", "Advances", "Net Payable"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range summaries {
		record := []string{
			row.EmployeeName,
			row.EmployeeRole,
			strconv.Itoa(row.TotalDays),
			strconv.FormatFloat(row.TotalOT, 'f', -1, 64),
			row.TotalAdvance.String(),
			row.NetPayable.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
