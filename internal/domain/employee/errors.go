package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUserIDTaken      = errors.New("login user ID already in use")
)
