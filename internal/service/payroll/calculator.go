package payroll

import (
	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Business rates. The percentage components scale with basic salary; the
// flat components are fixed currency amounts.
var (
	taxRate       = decimal.NewFromFloat(0.10)
	allowanceRate = decimal.NewFromFloat(0.05)
	bonusRate     = decimal.NewFromFloat(0.10)

	deductionPerLeave   = decimal.NewFromInt(1000)
	insuranceBase       = decimal.NewFromInt(1000)
	overtimeRatePerHour = decimal.NewFromInt(100)
)

const fullDayHours = 8.0

// ComputeBreakdown is the authoritative payslip formula set. Insurance is a
// flat amount per covered head (employee plus dependents) and overtime
// contributes its pay equivalent of 100 per raw hour. This is the only
// strategy whose output is ever persisted.
//
// Net salary is not clamped: it goes negative when deductions exceed
// earnings.
func ComputeBreakdown(in payroll.CalculatorInput) payroll.SalaryBreakdown {
	tax := in.BasicSalary.Mul(taxRate)
	allowances := in.BasicSalary.Mul(allowanceRate)
	bonus := in.BasicSalary.Mul(bonusRate)
	leaveDeductions := deductionPerLeave.Mul(decimal.NewFromInt(int64(in.ApprovedLeaveCount)))
	insurance := insuranceBase.Mul(decimal.NewFromInt(int64(1 + in.DependentCount)))
	overtimePay := overtimeRatePerHour.Mul(decimal.NewFromFloat(in.OvertimeHoursRaw))

	netSalary := in.BasicSalary.
		Sub(tax).
		Add(allowances).
		Sub(insurance).
		Add(overtimePay).
		Sub(leaveDeductions).
		Add(bonus)

	return payroll.SalaryBreakdown{
		BasicSalary:      in.BasicSalary,
		OvertimeHoursRaw: in.OvertimeHoursRaw,
		OvertimePay:      overtimePay,
		Bonus:            bonus,
		Tax:              tax,
		Insurance:        insurance,
		LeaveDeductions:  leaveDeductions,
		Allowances:       allowances,
		NetSalary:        netSalary,
	}
}

// ComputeQuickEstimate backs the admin salary-calculator screen. It differs
// from ComputeBreakdown in two ways inherited from that screen's original
// behaviour: insurance is loaded with 100 per hour worked beyond a full day,
// and overtime enters net salary as raw hours rather than as pay. Estimates
// are display-only and never written to payroll_records.
func ComputeQuickEstimate(in payroll.CalculatorInput) payroll.SalaryBreakdown {
	tax := in.BasicSalary.Mul(taxRate)
	allowances := in.BasicSalary.Mul(allowanceRate)
	bonus := in.BasicSalary.Mul(bonusRate)
	leaveDeductions := deductionPerLeave.Mul(decimal.NewFromInt(int64(in.ApprovedLeaveCount)))

	extraHours := in.TotalHoursWorked - fullDayHours
	if extraHours < 0 {
		extraHours = 0
	}
	insurance := insuranceBase.Mul(
		decimal.NewFromInt(int64(1 + in.DependentCount)).
			Add(decimal.NewFromFloat(100 * extraHours)),
	)
	overtime := decimal.NewFromFloat(in.OvertimeHoursRaw)

	netSalary := in.BasicSalary.
		Sub(tax).
		Add(allowances).
		Sub(insurance).
		Add(overtime).
		Sub(leaveDeductions).
		Add(bonus)

	return payroll.SalaryBreakdown{
		BasicSalary:      in.BasicSalary,
		OvertimeHoursRaw: in.OvertimeHoursRaw,
		OvertimePay:      overtime,
		Bonus:            bonus,
		Tax:              tax,
		Insurance:        insurance,
		LeaveDeductions:  leaveDeductions,
		Allowances:       allowances,
		NetSalary:        netSalary,
	}
}
