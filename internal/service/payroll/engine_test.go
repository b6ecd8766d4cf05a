package payroll

import (
	"testing"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testEmployee(id string, salary int64) employee.Employee {
	return employee.Employee{
		ID:            id,
		Name:          "Test Employee",
		Role:          "Installer",
		MonthlySalary: decimal.NewFromInt(salary),
		JoinDate:      "2024-01-01",
		AccessLevel:   employee.AccessStaff,
		CreatedAt:     time.Now(),
	}
}

func entry(empID, date string, regular, overtime float64) attendance.AttendanceEntry {
	return attendance.AttendanceEntry{
		ID:            "att-" + empID + "-" + date,
		EmployeeID:    empID,
		ProjectID:     "prj-1",
		Date:          date,
		Status:        attendance.StatusPresent,
		RegularHours:  regular,
		OvertimeHours: overtime,
	}
}

func TestRates(t *testing.T) {
	salary := decimal.NewFromInt(24000)

	assert.True(t, DailyRate(salary).Equal(decimal.NewFromInt(800)))
	assert.True(t, HourlyRate(salary).Equal(decimal.NewFromInt(100)))
}

func TestEarnedFullDayWithOvertime(t *testing.T) {
	salary := decimal.NewFromInt(24000)

	// 8 regular hours = one daily rate, 2 OT hours at the plain hourly
	// rate with no premium.
	got := Earned(salary, entry("emp-1", "2024-06-03", 8, 2))
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}

func TestEarnedFractionalDay(t *testing.T) {
	salary := decimal.NewFromInt(24000)

	// 4 regular hours earn half the daily rate regardless of status.
	got := Earned(salary, entry("emp-1", "2024-06-03", 4, 0))
	assert.True(t, got.Equal(decimal.NewFromInt(400)), "got %s", got)
}

func TestSummarizeEmployeeNetPayable(t *testing.T) {
	emp := testEmployee("emp-1", 30000)

	// 10 full days earn 10000; 5000 advanced, 3000 already paid out.
	var entries []attendance.AttendanceEntry
	for day := 1; day <= 10; day++ {
		entries = append(entries, entry("emp-1", time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), 8, 0))
	}
	advances := []advance.AdvanceEntry{
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(5000), Date: "2024-06-05"},
	}
	payouts := []payout.PayoutEntry{
		{ID: "pay-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(3000), Month: "2024-06"},
	}

	summary := SummarizeEmployee(emp, entries, advances, payouts, payroll.MonthWindow("2024-06"))

	assert.Equal(t, 10, summary.TotalDays)
	assert.True(t, summary.TotalEarned.Equal(decimal.NewFromInt(10000)))
	assert.True(t, summary.TotalAdvance.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.AlreadyPaid.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.NetPayable.Equal(decimal.NewFromInt(2000)))
	assert.False(t, summary.Settled)
}

func TestSummarizeEmployeeNetPayableFloorsAtZero(t *testing.T) {
	emp := testEmployee("emp-1", 30000)

	entries := []attendance.AttendanceEntry{entry("emp-1", "2024-06-03", 8, 0)}
	advances := []advance.AdvanceEntry{
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(5000), Date: "2024-06-03"},
	}

	summary := SummarizeEmployee(emp, entries, advances, nil, payroll.MonthWindow("2024-06"))

	assert.True(t, summary.NetPayable.IsZero())
	assert.True(t, summary.Settled)
}

func TestSummarizeEmployeeCountsDistinctDates(t *testing.T) {
	emp := testEmployee("emp-1", 30000)

	// Two entries on the same date (a historical duplicate) still count
	// as one day worked, though both earn.
	entries := []attendance.AttendanceEntry{
		entry("emp-1", "2024-06-03", 8, 0),
		{ID: "att-dup", EmployeeID: "emp-1", ProjectID: "prj-2", Date: "2024-06-03", RegularHours: 8},
		entry("emp-1", "2024-06-04", 8, 0),
	}

	summary := SummarizeEmployee(emp, entries, nil, nil, payroll.MonthWindow("2024-06"))

	assert.Equal(t, 2, summary.TotalDays)
}

func TestSummarizeEmployeeWindowScoping(t *testing.T) {
	emp := testEmployee("emp-1", 30000)

	entries := []attendance.AttendanceEntry{
		entry("emp-1", "2024-05-31", 8, 0),
		entry("emp-1", "2024-06-01", 8, 0),
	}
	payouts := []payout.PayoutEntry{
		{ID: "pay-may", EmployeeID: "emp-1", Amount: decimal.NewFromInt(900), Month: "2024-05"},
	}

	june := SummarizeEmployee(emp, entries, nil, payouts, payroll.MonthWindow("2024-06"))
	assert.Equal(t, 1, june.TotalDays)
	// The May payout must not leak into June's reconciliation.
	assert.True(t, june.AlreadyPaid.IsZero())

	allTime := SummarizeEmployee(emp, entries, nil, payouts, payroll.AllTime)
	assert.Equal(t, 2, allTime.TotalDays)
	// All-time view skips payout reconciliation entirely.
	assert.True(t, allTime.AlreadyPaid.IsZero())
}

func TestSummarizeEmployeeIsIdempotent(t *testing.T) {
	emp := testEmployee("emp-1", 28000)

	entries := []attendance.AttendanceEntry{
		entry("emp-1", "2024-06-03", 8, 3),
		entry("emp-1", "2024-06-04", 4, 0),
	}
	advances := []advance.AdvanceEntry{
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(1200), Date: "2024-06-04"},
	}

	first := SummarizeEmployee(emp, entries, advances, nil, payroll.MonthWindow("2024-06"))
	second := SummarizeEmployee(emp, entries, advances, nil, payroll.MonthWindow("2024-06"))

	assert.Equal(t, first, second)
}

func TestSummarizeProjectOrphanEntriesCountHoursOnly(t *testing.T) {
	prj := projectFixture("prj-1")
	employees := []employee.Employee{testEmployee("emp-1", 24000)}

	entries := []attendance.AttendanceEntry{
		entry("emp-1", "2024-06-03", 8, 0),
		entry("emp-gone", "2024-06-03", 8, 2),
	}

	summary := SummarizeProject(prj, employees, entries, payroll.AllTime)

	assert.Equal(t, float64(18), summary.TotalHours)
	// Only the surviving employee's salary can price labor.
	assert.True(t, summary.LaborCost.Equal(decimal.NewFromInt(800)), "got %s", summary.LaborCost)
}

func TestSummarizeCompanyRollsUpEmployees(t *testing.T) {
	employees := []employee.Employee{
		testEmployee("emp-1", 24000),
		testEmployee("emp-2", 48000),
	}
	entries := []attendance.AttendanceEntry{
		entry("emp-1", "2024-06-03", 8, 0),
		entry("emp-2", "2024-06-03", 8, 1),
	}
	advances := []advance.AdvanceEntry{
		{ID: "adv-1", EmployeeID: "emp-2", Amount: decimal.NewFromInt(500), Date: "2024-06-03"},
	}

	summary := SummarizeCompany(employees, entries, advances, nil, payroll.MonthWindow("2024-06"))

	assert.Equal(t, float64(16), summary.RegularHours)
	assert.Equal(t, float64(1), summary.OvertimeHours)
	assert.True(t, summary.TotalAdvances.Equal(decimal.NewFromInt(500)))
	// emp-1: 800. emp-2: 1600 + 200 OT = 1800.
	assert.True(t, summary.TotalEarned.Equal(decimal.NewFromInt(2600)), "got %s", summary.TotalEarned)
	// Net: 800 + (1800 - 500) = 2100.
	assert.True(t, summary.TotalNetPayable.Equal(decimal.NewFromInt(2100)), "got %s", summary.TotalNetPayable)
}
