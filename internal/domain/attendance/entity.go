package attendance

import "time"

type AttendanceEntry struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	ProjectID     string    `json:"project_id"`
	Date          string    `json:"date"`
	Status        Status    `json:"status"`
	RegularHours  float64   `json:"regular_hours"`
	OvertimeHours float64   `json:"overtime_hours"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}

// Status is descriptive only. Pay is derived from the logged hours, not
// from the status flag: an entry with 4 regular hours earns half a day
// regardless of status.
type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)
