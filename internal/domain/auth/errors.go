package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown user and
	// wrong password so login failures cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid user ID or password")

	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	ErrAdminAccessRequired      = errors.New("admin access required")
	ErrManagerAccessRequired    = errors.New("manager access required")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
)
