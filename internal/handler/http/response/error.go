package response

import (
	"errors"
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/advance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/domain/audit"
	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/domain/employee"
	"github.com/facade-tech/workforce-backend-go/internal/domain/payout"
	"github.com/facade-tech/workforce-backend-go/internal/domain/project"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrCurrentPasswordIncorrect):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrAdminAccessRequired),
		errors.Is(err, auth.ErrManagerAccessRequired),
		errors.Is(err, auth.ErrSupervisorAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUserIDTaken):
		Conflict(w, "Login user ID already in use")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrDateNotToday):
		BadRequest(w, err.Error(), nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance entry not found")
	case errors.Is(err, advance.ErrDuplicateAdvance):
		Conflict(w, err.Error())
	case errors.Is(err, advance.ErrCapExceeded):
		BadRequest(w, err.Error(), nil)

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout entry not found")
	case errors.Is(err, payout.ErrNothingPayable),
		errors.Is(err, payout.ErrAmountExceedsPayable):
		BadRequest(w, err.Error(), nil)

	// Audit domain errors
	case errors.Is(err, audit.ErrAuditFailed):
		BadGateway(w, "Audit could not be completed, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
