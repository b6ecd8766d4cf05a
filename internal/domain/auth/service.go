package auth

import "context"

type AuthService interface {
	// Login resolves a credential pair against the admin sentinel or an
	// employee with supervisor or manager access.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ChangeAdminPassword replaces the stored admin password after
	// verifying the current one.
	ChangeAdminPassword(ctx context.Context, req ChangePasswordRequest) error
}
