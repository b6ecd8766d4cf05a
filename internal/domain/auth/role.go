package auth

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
)

// AdminUserID is the sentinel login identity for the global administrator.
// It is not backed by an employee record.
const AdminUserID = "admin"

// Identity is the authenticated caller as carried in the token claims.
type Identity struct {
	UserID string
	Name   string
	Role   Role
}

// SeesAllEntries reports whether the caller may list entries created by
// anyone. Supervisors only see entries they created themselves.
func (i Identity) SeesAllEntries() bool {
	return i.Role == RoleAdmin || i.Role == RoleManager
}
