package response

import (
	"errors"
	"net/http"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
	"github.com/empdesk/empdesk-backend-go/internal/domain/department"
	"github.com/empdesk/empdesk-backend-go/internal/domain/dependent"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/domain/leave"
	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "You are not allowed to access this resource")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Dependent domain errors
	case errors.Is(err, dependent.ErrDependentNotFound):
		NotFound(w, "Dependent not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, "Attendance already recorded for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payslip period", nil)
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
