package employee

import (
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var accessLevels = []string{
	string(AccessStaff),
	string(AccessSupervisor),
	string(AccessManager),
}

type CreateEmployeeRequest struct {
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	MonthlySalary  decimal.Decimal  `json:"monthly_salary"`
	JoinDate       string           `json:"join_date"`
	PhotoURL       *string          `json:"photo_url,omitempty"`
	AccessLevel    string           `json:"access_level,omitempty"`
	UserID         *string          `json:"user_id,omitempty"`
	Password       *string          `json:"password,omitempty"`
	InitialAdvance *decimal.Decimal `json:"initial_advance,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.AccessLevel != "" && !validator.IsInSlice(r.AccessLevel, accessLevels) {
		errs = append(errs, validator.ValidationError{Field: "access_level", Message: "must be 'staff', 'supervisor' or 'manager'"})
	}
	if AccessLevel(r.AccessLevel).CanLogIn() {
		if r.UserID == nil || !validator.IsValidLoginID(*r.UserID) {
			errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required for supervisor or manager access (3-50 chars, letters, digits, '.', '_', '-')"})
		}
		if r.Password == nil || validator.IsEmpty(*r.Password) {
			errs = append(errs, validator.ValidationError{Field: "password", Message: "is required for supervisor or manager access"})
		}
	}
	if r.InitialAdvance != nil && r.InitialAdvance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "initial_advance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Role          *string          `json:"role,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	JoinDate      *string          `json:"join_date,omitempty"`
	PhotoURL      *string          `json:"photo_url,omitempty"`
	AccessLevel   *string          `json:"access_level,omitempty"`
	UserID        *string          `json:"user_id,omitempty"`
	Password      *string          `json:"password,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.MonthlySalary != nil && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.AccessLevel != nil && !validator.IsInSlice(*r.AccessLevel, accessLevels) {
		errs = append(errs, validator.ValidationError{Field: "access_level", Message: "must be 'staff', 'supervisor' or 'manager'"})
	}
	if r.UserID != nil && !validator.IsValidLoginID(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be 3-50 chars of letters, digits, '.', '_', '-'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the employee as exposed over the API. The stored
// password never leaves the service layer.
type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	JoinDate      string          `json:"join_date"`
	PhotoURL      *string         `json:"photo_url,omitempty"`
	AccessLevel   AccessLevel     `json:"access_level"`
	UserID        *string         `json:"user_id,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Role:          e.Role,
		MonthlySalary: e.MonthlySalary,
		JoinDate:      e.JoinDate,
		PhotoURL:      e.PhotoURL,
		AccessLevel:   e.AccessLevel,
		UserID:        e.UserID,
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
