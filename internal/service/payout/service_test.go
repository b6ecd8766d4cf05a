package payout

import (
	"context"
	"testing"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// One full June day at 24000 salary earns 800.
func testSetup() *PayoutServiceImpl {
	svc := NewPayoutService(
		memory.NewPayoutRepository(),
		memory.NewEmployeeRepository(employee.Employee{
			ID: "emp-1", Name: "Bob Johnson", MonthlySalary: decimal.NewFromInt(24000),
		}),
		memory.NewAttendanceRepository(attendance.AttendanceEntry{
			ID: "att-1", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-03", RegularHours: 8,
		}),
		memory.NewAdvanceRepository(),
	)
	svc.now = func() time.Time { return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateDefaultsToNetPayable(t *testing.T) {
	svc := testSetup()

	resp, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		EmployeeID:  "emp-1",
		Month:       "2024-06",
		PaymentMode: "bank",
		Reference:   "TRX-100",
	})
	require.NoError(t, err)

	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(800)), "got %s", resp.Amount)
	assert.Equal(t, "2024-06-30", resp.Date)
	assert.Equal(t, payout.ModeBank, resp.PaymentMode)
	assert.Equal(t, "Bob Johnson", resp.EmployeeName)
}

func TestCreatePartialThenSettled(t *testing.T) {
	svc := testSetup()
	ctx := context.Background()

	_, err := svc.Create(ctx, payout.CreatePayoutRequest{
		EmployeeID: "emp-1", Month: "2024-06", Amount: decPtr(decimal.NewFromInt(300)), PaymentMode: "cash",
	})
	require.NoError(t, err)

	// The second payout defaults to the remaining 500.
	second, err := svc.Create(ctx, payout.CreatePayoutRequest{
		EmployeeID: "emp-1", Month: "2024-06", PaymentMode: "cash",
	})
	require.NoError(t, err)
	assert.True(t, second.Amount.Equal(decimal.NewFromInt(500)), "got %s", second.Amount)

	// Fully settled now.
	_, err = svc.Create(ctx, payout.CreatePayoutRequest{
		EmployeeID: "emp-1", Month: "2024-06", PaymentMode: "cash",
	})
	assert.ErrorIs(t, err, payout.ErrNothingPayable)
}

func TestCreateRejectsAmountOverNetPayable(t *testing.T) {
	svc := testSetup()

	_, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		EmployeeID: "emp-1", Month: "2024-06", Amount: decPtr(decimal.NewFromInt(900)), PaymentMode: "cheque",
	})
	assert.ErrorIs(t, err, payout.ErrAmountExceedsPayable)
}

func TestCreateNothingPayableForEmptyMonth(t *testing.T) {
	svc := testSetup()

	_, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		EmployeeID: "emp-1", Month: "2024-05", PaymentMode: "cash",
	})
	assert.ErrorIs(t, err, payout.ErrNothingPayable)
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := testSetup()

	_, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		EmployeeID: "emp-missing", Month: "2024-06", PaymentMode: "cash",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
