package attendance

import (
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
)

var statuses = []string{
	string(StatusPresent),
	string(StatusHalfDay),
	string(StatusAbsent),
	string(StatusLeave),
}

type CreateAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	ProjectID     string  `json:"project_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status,omitempty"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'half-day', 'absent' or 'leave'"})
	}
	if !validator.IsValidHours(r.RegularHours) {
		errs = append(errs, validator.ValidationError{Field: "regular_hours", Message: "must be between 0 and 24"})
	}
	if !validator.IsValidHours(r.OvertimeHours) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse carries the entry with its references resolved.
// Deleted employees and projects resolve to "Unknown".
type AttendanceResponse struct {
	AttendanceEntry
	EmployeeName string `json:"employee_name"`
	ProjectName  string `json:"project_name"`
}
