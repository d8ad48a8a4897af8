package employee

import (
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	DepartmentID *string          `json:"department_id,omitempty"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
	HireDate     string           `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	DepartmentID   *string          `json:"department_id,omitempty"`
	DepartmentName *string          `json:"department_name,omitempty"`
	BasicSalary    *decimal.Decimal `json:"basic_salary,omitempty"`
	HireDate       string           `json:"hire_date"`
}
