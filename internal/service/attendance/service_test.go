package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminActor      = auth.Identity{UserID: auth.AdminUserID, Name: "Administrator", Role: auth.RoleAdmin}
	supervisorActor = auth.Identity{UserID: "john.doe", Name: "John Doe", Role: auth.RoleSupervisor}
)

func fixedClock(date string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return parsed }
}

func testSetup() (*AttendanceServiceImpl, *memory.AttendanceRepository) {
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-1", Name: "Alice Smith", MonthlySalary: decimal.NewFromInt(30000)},
	)
	projectRepo := memory.NewProjectRepository(
		project.Project{ID: "prj-1", Name: "Skyline Tower"},
	)
	svc := NewAttendanceService(attendanceRepo, employeeRepo, projectRepo)
	svc.now = fixedClock("2024-06-10")
	return svc, attendanceRepo
}

func TestCreateRecordsEntry(t *testing.T) {
	svc, _ := testSetup()

	resp, err := svc.Create(context.Background(), adminActor, attendance.CreateAttendanceRequest{
		EmployeeID:   "emp-1",
		ProjectID:    "prj-1",
		Date:         "2024-06-03",
		RegularHours: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", resp.EmployeeName)
	assert.Equal(t, "Skyline Tower", resp.ProjectName)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, auth.AdminUserID, resp.CreatedBy)
}

func TestCreateRejectsDuplicateDateAcrossCreators(t *testing.T) {
	svc, repo := testSetup()
	ctx := context.Background()

	_, err := svc.Create(ctx, supervisorActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-10", RegularHours: 8,
	})
	require.NoError(t, err)

	// Same employee and date from a different creator and project.
	_, err = svc.Create(ctx, adminActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-10", RegularHours: 4,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateEntry)
	assert.ErrorContains(t, err, "Alice Smith")

	// The rejected entry must not have been stored.
	entries, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, entries, 1)
}

func TestCreateRejectsFutureDate(t *testing.T) {
	svc, _ := testSetup()

	_, err := svc.Create(context.Background(), adminActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-11", RegularHours: 8,
	})
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestCreateSupervisorPinnedToToday(t *testing.T) {
	svc, _ := testSetup()

	_, err := svc.Create(context.Background(), supervisorActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-09", RegularHours: 8,
	})
	assert.ErrorIs(t, err, attendance.ErrDateNotToday)

	// Admin may backfill past dates.
	_, err = svc.Create(context.Background(), adminActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-09", RegularHours: 8,
	})
	assert.NoError(t, err)
}

func TestCreateUnknownReferences(t *testing.T) {
	svc, _ := testSetup()

	_, err := svc.Create(context.Background(), adminActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-missing", ProjectID: "prj-1", Date: "2024-06-03", RegularHours: 8,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(context.Background(), adminActor, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1", ProjectID: "prj-missing", Date: "2024-06-03", RegularHours: 8,
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestListSupervisorSeesOnlyOwnEntries(t *testing.T) {
	svc, repo := testSetup()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, attendance.AttendanceEntry{
		ID: "att-1", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-01", CreatedBy: "john.doe",
	}))
	require.NoError(t, repo.Insert(ctx, attendance.AttendanceEntry{
		ID: "att-2", EmployeeID: "emp-1", ProjectID: "prj-1", Date: "2024-06-02", CreatedBy: auth.AdminUserID,
	}))

	own, err := svc.List(ctx, supervisorActor)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "att-1", own[0].ID)

	all, err := svc.List(ctx, adminActor)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListResolvesDanglingReferencesToUnknown(t *testing.T) {
	svc, repo := testSetup()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, attendance.AttendanceEntry{
		ID: "att-1", EmployeeID: "emp-gone", ProjectID: "prj-gone", Date: "2024-06-01", CreatedBy: auth.AdminUserID,
	}))

	entries, err := svc.List(ctx, adminActor)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, employee.UnknownName, entries[0].EmployeeName)
	assert.Equal(t, employee.UnknownName, entries[0].ProjectName)
}

func TestDeleteMissingEntry(t *testing.T) {
	svc, _ := testSetup()

	err := svc.Delete(context.Background(), "att-missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
