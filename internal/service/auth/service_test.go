package auth

import (
	"context"
	"testing"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/jwt"
	"github.com/facade-tech/workforce-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testSetup(seed ...employee.Employee) *AuthServiceImpl {
	return NewAuthService(
		memory.NewEmployeeRepository(seed...),
		memory.NewSettingsRepository(),
		jwt.NewJWTService("test-secret-key-for-jwt", "1h"),
	)
}

func supervisorFixture() employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		Name:          "John Doe",
		Role:          "Foreman",
		MonthlySalary: decimal.NewFromInt(45000),
		AccessLevel:   employee.AccessSupervisor,
		UserID:        strPtr("john.doe"),
		Password:      strPtr("password123"),
	}
}

func TestLoginAdminDefaultPassword(t *testing.T) {
	svc := testSetup()

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		UserID: "admin", Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleAdmin, resp.Role)
	assert.Equal(t, auth.AdminUserID, resp.UserID)
	assert.Equal(t, AdminDisplayName, resp.Name)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.ExpiresAt)
}

func TestLoginSupervisorCredentials(t *testing.T) {
	svc := testSetup(supervisorFixture())

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		UserID: "john.doe", Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, auth.RoleSupervisor, resp.Role)
	assert.Equal(t, "John Doe", resp.Name)
}

func TestLoginManagerRole(t *testing.T) {
	manager := supervisorFixture()
	manager.AccessLevel = employee.AccessManager
	svc := testSetup(manager)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		UserID: "john.doe", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleManager, resp.Role)
}

func TestLoginGenericFailure(t *testing.T) {
	staff := supervisorFixture()
	staff.ID = "emp-2"
	staff.AccessLevel = employee.AccessStaff
	staff.UserID = strPtr("alice.smith")
	svc := testSetup(supervisorFixture(), staff)

	cases := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"unknown user", auth.LoginRequest{UserID: "nobody", Password: "whatever"}},
		{"wrong password", auth.LoginRequest{UserID: "john.doe", Password: "wrong"}},
		{"wrong admin password", auth.LoginRequest{UserID: "admin", Password: "wrong"}},
		{"staff cannot log in", auth.LoginRequest{UserID: "alice.smith", Password: "password123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.req)
			// Same error for every failure mode; no user enumeration.
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestChangeAdminPassword(t *testing.T) {
	svc := testSetup()
	ctx := context.Background()

	err := svc.ChangeAdminPassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "stronger-pass",
		ConfirmPassword: "stronger-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{UserID: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{UserID: "admin", Password: "stronger-pass"})
	assert.NoError(t, err)
}

func TestChangeAdminPasswordWrongCurrent(t *testing.T) {
	svc := testSetup()

	err := svc.ChangeAdminPassword(context.Background(), auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "stronger-pass",
		ConfirmPassword: "stronger-pass",
	})
	assert.ErrorIs(t, err, auth.ErrCurrentPasswordIncorrect)
}
