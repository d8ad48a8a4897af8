package payroll

import "errors"

var (
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
)
