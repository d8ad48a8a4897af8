package payroll

import (
	"context"

	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
)

type PayrollRepository interface {
	// Upsert inserts the record, or on a (employee, month, year) conflict
	// updates only the volatile fields: overtime pay, leave deductions and
	// net salary. Repeated calls with the same inputs are idempotent.
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
}

type PayslipService interface {
	GetPayslip(ctx context.Context, requestor auth.Requestor, employeeID string, month, year int) (PayslipResponse, error)
	QuickEstimate(ctx context.Context, requestor auth.Requestor, employeeID string, month, year int) (EstimateResponse, error)
	History(ctx context.Context, requestor auth.Requestor, employeeID string) ([]PayslipResponse, error)
}
