package auth

import (
	"context"
	"fmt"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/settings"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/jwt"
)

// AdminDisplayName is the name carried in tokens issued to the admin
// sentinel, which has no employee record to take a name from.
const AdminDisplayName = "Administrator"

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
	jwtService   jwt.Service
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	jwtService jwt.Service,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Every failure path returns the same
// ErrInvalidCredentials so callers cannot probe which user IDs exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if req.UserID == auth.AdminUserID {
		return s.loginAdmin(ctx, req)
	}
	return s.loginEmployee(ctx, req)
}

func (s *AuthServiceImpl) loginAdmin(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	stored, err := s.settingsRepo.GetAdminPassword(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load admin password: %w", err)
	}
	if req.Password != stored {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	return s.issueToken(auth.AdminUserID, AdminDisplayName, auth.RoleAdmin)
}

func (s *AuthServiceImpl) loginEmployee(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	for _, emp := range employees {
		if emp.UserID == nil || *emp.UserID != req.UserID {
			continue
		}
		if !emp.AccessLevel.CanLogIn() || emp.Password == nil || *emp.Password != req.Password {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}

		role := auth.RoleSupervisor
		if emp.AccessLevel == employee.AccessManager {
			role = auth.RoleManager
		}
		return s.issueToken(*emp.UserID, emp.Name, role)
	}

	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

func (s *AuthServiceImpl) issueToken(userID, name string, role auth.Role) (auth.LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(userID, name, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      userID,
		Name:        name,
		Role:        role,
	}, nil
}

// ChangeAdminPassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangeAdminPassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	stored, err := s.settingsRepo.GetAdminPassword(ctx)
	if err != nil {
		return fmt.Errorf("failed to load admin password: %w", err)
	}
	if req.CurrentPassword != stored {
		return auth.ErrCurrentPasswordIncorrect
	}
	if err := s.settingsRepo.SetAdminPassword(ctx, req.NewPassword); err != nil {
		return fmt.Errorf("failed to store admin password: %w", err)
	}
	return nil
}
