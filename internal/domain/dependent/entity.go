package dependent

import "time"

type Dependent struct {
	ID           string
	EmployeeID   string
	FullName     string
	Relationship string
	DOB          *time.Time
	CreatedAt    time.Time
}
