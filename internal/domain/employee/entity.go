package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	JoinDate      string          `json:"join_date"`
	PhotoURL      *string         `json:"photo_url,omitempty"`
	AccessLevel   AccessLevel     `json:"access_level"`
	UserID        *string         `json:"user_id,omitempty"`
	Password      *string         `json:"password,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AccessLevel is the employee's capability level. Exactly one level per
// employee; the global administrator is a separate sentinel identity, not
// an employee.
type AccessLevel string

const (
	AccessStaff      AccessLevel = "staff"
	AccessSupervisor AccessLevel = "supervisor"
	AccessManager    AccessLevel = "manager"
)

// UnknownName is the placeholder used when an entry references a deleted
// employee or project.
const UnknownName = "Unknown"

// CanLogIn reports whether this access level participates in credential
// login.
func (a AccessLevel) CanLogIn() bool {
	return a == AccessSupervisor || a == AccessManager
}
