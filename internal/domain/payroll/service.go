package payroll

import (
	"context"
	"io"
)

// PayrollService exposes the read-only payroll projections. Every call
// recomputes from the current record store; nothing is cached.
type PayrollService interface {
	EmployeeReport(ctx context.Context, w Window) ([]EmployeeSummary, error)
	ProjectReport(ctx context.Context, w Window) ([]ProjectSummary, error)
	CompanyReport(ctx context.Context, w Window) (CompanySummary, error)

	// ExportCSV writes the employee report as CSV, one row per employee.
	ExportCSV(ctx context.Context, w Window, out io.Writer) error
}
