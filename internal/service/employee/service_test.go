package employee

import (
	"context"
	"testing"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminActor = auth.Identity{UserID: auth.AdminUserID, Name: "Administrator", Role: auth.RoleAdmin}

func strPtr(s string) *string                   { return &s }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func testSetup(seed ...employee.Employee) (*EmployeeServiceImpl, *memory.EmployeeRepository, *memory.AdvanceRepository) {
	employeeRepo := memory.NewEmployeeRepository(seed...)
	advanceRepo := memory.NewAdvanceRepository()
	svc := NewEmployeeService(employeeRepo, advanceRepo, memory.NewTxManager())
	return svc, employeeRepo, advanceRepo
}

func TestCreateDefaultsToStaff(t *testing.T) {
	svc, _, _ := testSetup()

	resp, err := svc.Create(context.Background(), adminActor, employee.CreateEmployeeRequest{
		Name:          "Sarah Wilson",
		Role:          "Technician",
		MonthlySalary: decimal.NewFromInt(28000),
		JoinDate:      "2023-05-20",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.AccessStaff, resp.AccessLevel)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateRecordsInitialAdvance(t *testing.T) {
	svc, _, advanceRepo := testSetup()
	ctx := context.Background()

	resp, err := svc.Create(ctx, adminActor, employee.CreateEmployeeRequest{
		Name:           "Bob Johnson",
		Role:           "Glass Cutter",
		MonthlySalary:  decimal.NewFromInt(35000),
		JoinDate:       "2023-02-10",
		InitialAdvance: decPtr(decimal.NewFromInt(2000)),
	})
	require.NoError(t, err)

	advances, err := advanceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, advances, 1)

	assert.Equal(t, resp.ID, advances[0].EmployeeID)
	assert.True(t, advances[0].Amount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "2023-02-10", advances[0].Date)
	assert.Equal(t, advance.InitialAdvanceReason, advances[0].Reason)
	assert.Equal(t, auth.AdminUserID, advances[0].CreatedBy)
}

func TestCreateZeroInitialAdvanceRecordsNothing(t *testing.T) {
	svc, _, advanceRepo := testSetup()
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, employee.CreateEmployeeRequest{
		Name:           "Sarah Wilson",
		Role:           "Technician",
		MonthlySalary:  decimal.NewFromInt(28000),
		JoinDate:       "2023-05-20",
		InitialAdvance: decPtr(decimal.Zero),
	})
	require.NoError(t, err)

	advances, err := advanceRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, advances)
}

func TestCreateRejectsTakenUserID(t *testing.T) {
	svc, _, _ := testSetup(employee.Employee{
		ID: "emp-1", Name: "John Doe", UserID: strPtr("john.doe"),
	})

	_, err := svc.Create(context.Background(), adminActor, employee.CreateEmployeeRequest{
		Name:          "Impostor",
		Role:          "Foreman",
		MonthlySalary: decimal.NewFromInt(45000),
		JoinDate:      "2024-01-01",
		AccessLevel:   string(employee.AccessSupervisor),
		UserID:        strPtr("john.doe"),
		Password:      strPtr("secret1"),
	})
	assert.ErrorIs(t, err, employee.ErrUserIDTaken)
}

func TestCreateRejectsAdminSentinelUserID(t *testing.T) {
	svc, _, _ := testSetup()

	_, err := svc.Create(context.Background(), adminActor, employee.CreateEmployeeRequest{
		Name:          "Sneaky",
		Role:          "Manager",
		MonthlySalary: decimal.NewFromInt(50000),
		JoinDate:      "2024-01-01",
		AccessLevel:   string(employee.AccessManager),
		UserID:        strPtr(auth.AdminUserID),
		Password:      strPtr("secret1"),
	})
	assert.ErrorIs(t, err, employee.ErrUserIDTaken)
}

func TestUpdatePartialFields(t *testing.T) {
	svc, _, _ := testSetup(employee.Employee{
		ID:            "emp-1",
		Name:          "Alice Smith",
		Role:          "Installer",
		MonthlySalary: decimal.NewFromInt(30000),
		JoinDate:      "2023-03-01",
		AccessLevel:   employee.AccessStaff,
		Password:      strPtr("keepme"),
	})

	salary := decimal.NewFromInt(32000)
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:            "emp-1",
		MonthlySalary: &salary,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", resp.Name)
	assert.True(t, resp.MonthlySalary.Equal(salary))

	// Stored password untouched by a partial update.
	stored, err := svc.employeeRepo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, stored.Password)
	assert.Equal(t, "keepme", *stored.Password)
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc, _, _ := testSetup()

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "emp-missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteLeavesEntriesInPlace(t *testing.T) {
	svc, employeeRepo, advanceRepo := testSetup(employee.Employee{ID: "emp-1", Name: "Alice Smith"})
	ctx := context.Background()

	require.NoError(t, advanceRepo.Insert(ctx, advance.AdvanceEntry{
		ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(100), Date: "2024-06-01",
	}))

	require.NoError(t, svc.Delete(ctx, "emp-1"))

	_, err := employeeRepo.GetByID(ctx, "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	advances, err := advanceRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, advances, 1)
}
