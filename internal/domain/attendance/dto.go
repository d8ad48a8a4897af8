package attendance

import (
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeID  string  `json:"-"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hours_worked"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.HoursWorked < 0 || r.HoursWorked > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hours_worked"`
}
