package payroll

import (
	"github.com/shopspring/decimal"
)

// PayslipResponse is the shared response shape for stored, freshly computed
// and projected payslips. The "overtime_hours" key carries the overtime pay
// equivalent (raw hours x 100), a naming kept from the persisted layout.
type PayslipResponse struct {
	EmployeeID      string          `json:"employee_id"`
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	Bonus           decimal.Decimal `json:"bonus"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	Allowances      decimal.Decimal `json:"allowances"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	PaymentDate     string          `json:"payment_date"`
	IsProjected     bool            `json:"is_projected,omitempty"`
}

// EstimateResponse is returned by the admin quick-estimate screen. It uses
// the hours-loaded insurance formula and leaves overtime as raw hours, so it
// is never persisted or mixed with payslip output.
type EstimateResponse struct {
	EmployeeID      string          `json:"employee_id"`
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	Bonus           decimal.Decimal `json:"bonus"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	Allowances      decimal.Decimal `json:"allowances"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}
