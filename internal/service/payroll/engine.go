package payroll

import (
	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/shopspring/decimal"
)

// The engine is a set of pure functions over plain slices. It never
// mutates anything and recomputes from scratch on every call, so results
// always reflect the latest records.

var (
	thirty = decimal.NewFromInt(30)
	eight  = decimal.NewFromInt(8)
)

// DailyRate prorates the monthly salary over a fixed 30-day month.
func DailyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Div(thirty)
}

// HourlyRate is the daily rate over an 8-hour day. Overtime is paid at
// this plain rate; there is deliberately no premium multiplier.
func HourlyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	return DailyRate(monthlySalary).Div(eight)
}

// Earned computes the pay for one attendance entry. Regular hours scale
// the daily rate fractionally regardless of the entry's status flag.
func Earned(monthlySalary decimal.Decimal, entry attendance.AttendanceEntry) decimal.Decimal {
	base := decimal.NewFromFloat(entry.RegularHours).Div(eight).Mul(DailyRate(monthlySalary))
	ot := decimal.NewFromFloat(entry.OvertimeHours).Mul(HourlyRate(monthlySalary))
	return base.Add(ot)
}

// SummarizeEmployee aggregates one employee's records over a window.
// Payout reconciliation applies to month windows only.
func SummarizeEmployee(
	emp employee.Employee,
	entries []attendance.AttendanceEntry,
	advances []advance.AdvanceEntry,
	payouts []payout.PayoutEntry,
	w payroll.Window,
) payroll.EmployeeSummary {
	summary := payroll.EmployeeSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		EmployeeRole: emp.Role,
		TotalAdvance: decimal.Zero,
		TotalEarned:  decimal.Zero,
		AlreadyPaid:  decimal.Zero,
	}

	// totalDays counts distinct dates, not entries.
	seenDates := make(map[string]struct{})
	for _, e := range entries {
		if e.EmployeeID != emp.ID || !w.Contains(e.Date) {
			continue
		}
		seenDates[e.Date] = struct{}{}
		summary.TotalOT += e.OvertimeHours
		summary.TotalEarned = summary.TotalEarned.Add(Earned(emp.MonthlySalary, e))
	}
	summary.TotalDays = len(seenDates)

	for _, a := range advances {
		if a.EmployeeID == emp.ID && w.Contains(a.Date) {
			summary.TotalAdvance = summary.TotalAdvance.Add(a.Amount)
		}
	}

	if !w.IsAllTime() {
		for _, p := range payouts {
			if p.EmployeeID == emp.ID && p.Month == w.Month {
				summary.AlreadyPaid = summary.AlreadyPaid.Add(p.Amount)
			}
		}
	}

	// Net payable is rounded to the nearest whole unit and floored at
	// zero; liabilities never go negative.
	net := summary.TotalEarned.Sub(summary.TotalAdvance).Sub(summary.AlreadyPaid).Round(0)
	if net.IsNegative() {
		net = decimal.Zero
	}
	summary.NetPayable = net
	summary.Settled = net.IsZero()

	return summary
}

// SummarizeProject aggregates logged hours and labor cost for one
// project. Entries from deleted employees still count toward hours but
// contribute no cost, since no salary remains to price them.
func SummarizeProject(
	prj project.Project,
	employees []employee.Employee,
	entries []attendance.AttendanceEntry,
	w payroll.Window,
) payroll.ProjectSummary {
	salaries := make(map[string]decimal.Decimal, len(employees))
	for _, emp := range employees {
		salaries[emp.ID] = emp.MonthlySalary
	}

	summary := payroll.ProjectSummary{
		ProjectID:       prj.ID,
		ProjectName:     prj.Name,
		ProjectLocation: prj.Location,
		LaborCost:       decimal.Zero,
	}

	for _, e := range entries {
		if e.ProjectID != prj.ID || !w.Contains(e.Date) {
			continue
		}
		summary.TotalHours += e.RegularHours + e.OvertimeHours
		if salary, ok := salaries[e.EmployeeID]; ok {
			summary.LaborCost = summary.LaborCost.Add(Earned(salary, e))
		}
	}

	return summary
}

// SummarizeCompany rolls up the per-employee summaries plus the raw
// hour totals for a window.
func SummarizeCompany(
	employees []employee.Employee,
	entries []attendance.AttendanceEntry,
	advances []advance.AdvanceEntry,
	payouts []payout.PayoutEntry,
	w payroll.Window,
) payroll.CompanySummary {
	summary := payroll.CompanySummary{
		TotalAdvances:   decimal.Zero,
		TotalEarned:     decimal.Zero,
		TotalNetPayable: decimal.Zero,
	}

	for _, e := range entries {
		if !w.Contains(e.Date) {
			continue
		}
		summary.RegularHours += e.RegularHours
		summary.OvertimeHours += e.OvertimeHours
	}

	for _, emp := range employees {
		es := SummarizeEmployee(emp, entries, advances, payouts, w)
		summary.TotalAdvances = summary.TotalAdvances.Add(es.TotalAdvance)
		summary.TotalEarned = summary.TotalEarned.Add(es.TotalEarned)
		summary.TotalNetPayable = summary.TotalNetPayable.Add(es.NetPayable)
	}

	return summary
}
