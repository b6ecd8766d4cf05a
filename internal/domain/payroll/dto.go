package payroll

import "github.com/shopspring/decimal"

// EmployeeSummary is the per-employee payroll projection for a reporting
// window. AlreadyPaid is reconciled for month windows only; it is zero
// for the all-time window.
type EmployeeSummary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeRole string          `json:"employee_role"`
	TotalDays    int             `json:"total_days"`
	TotalOT      float64         `json:"total_ot"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalEarned  decimal.Decimal `json:"total_earned"`
	AlreadyPaid  decimal.Decimal `json:"already_paid"`
	NetPayable   decimal.Decimal `json:"net_payable"`
	Settled      bool            `json:"settled"`
}

// ProjectSummary aggregates logged hours and labor cost per project.
type ProjectSummary struct {
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	ProjectLocation string          `json:"project_location"`
	TotalHours      float64         `json:"total_hours"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
}

// CompanySummary is the company-wide aggregation over a window, computed
// from the per-employee summaries.
type CompanySummary struct {
	RegularHours    float64         `json:"regular_hours"`
	OvertimeHours   float64         `json:"overtime_hours"`
	TotalAdvances   decimal.Decimal `json:"total_advances"`
	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalNetPayable decimal.Decimal `json:"total_net_payable"`
}
