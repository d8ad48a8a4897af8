package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord - persisted payslip, one row per (employee, month, year).
// OvertimePay stores the monetary pay-equivalent of overtime, not the raw
// hour count; the exposed field keeps the historical "overtime_hours" name.
type PayrollRecord struct {
	ID              string
	EmployeeID      string
	PeriodMonth     int
	PeriodYear      int
	BasicSalary     decimal.Decimal
	OvertimePay     decimal.Decimal
	Bonus           decimal.Decimal
	Tax             decimal.Decimal
	Insurance       decimal.Decimal
	LeaveDeductions decimal.Decimal
	Allowances      decimal.Decimal
	NetSalary       decimal.Decimal
	PaymentDate     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CalculatorInput carries the aggregates a breakdown is derived from. All
// fields default to zero when the upstream read produced nothing.
type CalculatorInput struct {
	BasicSalary        decimal.Decimal
	OvertimeHoursRaw   float64
	TotalHoursWorked   float64
	ApprovedLeaveCount int
	DependentCount     int
}

// SalaryBreakdown is the transient decomposition of one month's salary.
// OvertimeHoursRaw and OvertimePay are kept distinct: the former is the hour
// count from attendance, the latter the monetary value that gets stored.
type SalaryBreakdown struct {
	BasicSalary      decimal.Decimal
	OvertimeHoursRaw float64
	OvertimePay      decimal.Decimal
	Bonus            decimal.Decimal
	Tax              decimal.Decimal
	Insurance        decimal.Decimal
	LeaveDeductions  decimal.Decimal
	Allowances       decimal.Decimal
	NetSalary        decimal.Decimal
}
