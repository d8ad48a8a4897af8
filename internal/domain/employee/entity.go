package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	DepartmentID *string
	FullName     string
	Email        string
	PasswordHash string
	BasicSalary  *decimal.Decimal
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}

// BasicSalaryOrZero returns the stored basic salary, defaulting to zero when
// none is configured.
func (e Employee) BasicSalaryOrZero() decimal.Decimal {
	if e.BasicSalary == nil {
		return decimal.Zero
	}
	return *e.BasicSalary
}
