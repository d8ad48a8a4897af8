package dependent

import (
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

type AddDependentRequest struct {
	EmployeeID   string  `json:"-"`
	FullName     string  `json:"full_name"`
	Relationship string  `json:"relationship"`
	DOB          *string `json:"dob,omitempty"`
}

var allowedRelationships = []string{"spouse", "child", "parent", "other"}

func (r *AddDependentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Relationship, allowedRelationships) {
		errs = append(errs, validator.ValidationError{Field: "relationship", Message: "must be one of spouse, child, parent, other"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DependentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Relationship string  `json:"relationship"`
	DOB          *string `json:"dob,omitempty"`
}
