package auth

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Admin - portal administrator account
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Requestor identifies the authenticated caller of a service operation.
// Claims are read once at the handler boundary and passed down explicitly,
// never re-read from ambient context inside the services.
type Requestor struct {
	SubjectID string
	Email     string
	Role      Role
}

// CanViewEmployee reports whether the requestor may read data belonging to
// the given employee. Admins may read anyone, employees only themselves.
func (r Requestor) CanViewEmployee(employeeID string) bool {
	if r.Role == RoleAdmin {
		return true
	}
	return r.Role == RoleEmployee && r.SubjectID == employeeID
}

func (r Requestor) IsAdmin() bool {
	return r.Role == RoleAdmin
}
