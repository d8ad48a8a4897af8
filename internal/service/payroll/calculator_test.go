package payroll

import (
	"testing"

	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func assertDecEqual(t *testing.T, expected int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(expected)), "%s: expected %d, got %s", field, expected, got)
}

func TestComputeBreakdown_FullInputs(t *testing.T) {
	got := ComputeBreakdown(payroll.CalculatorInput{
		BasicSalary:        dec(50000),
		OvertimeHoursRaw:   5,
		ApprovedLeaveCount: 1,
		DependentCount:     2,
	})

	assertDecEqual(t, 5000, got.Tax, "tax")
	assertDecEqual(t, 2500, got.Allowances, "allowances")
	assertDecEqual(t, 5000, got.Bonus, "bonus")
	assertDecEqual(t, 1000, got.LeaveDeductions, "leave_deductions")
	assertDecEqual(t, 3000, got.Insurance, "insurance")
	assertDecEqual(t, 500, got.OvertimePay, "overtime_pay")
	assertDecEqual(t, 49000, got.NetSalary, "net_salary")
}

func TestComputeBreakdown_NoOvertimeNoLeave(t *testing.T) {
	got := ComputeBreakdown(payroll.CalculatorInput{
		BasicSalary: dec(30000),
	})

	assertDecEqual(t, 3000, got.Tax, "tax")
	assertDecEqual(t, 1500, got.Allowances, "allowances")
	assertDecEqual(t, 3000, got.Bonus, "bonus")
	assertDecEqual(t, 0, got.LeaveDeductions, "leave_deductions")
	assertDecEqual(t, 1000, got.Insurance, "insurance")
	assertDecEqual(t, 0, got.OvertimePay, "overtime_pay")
	assertDecEqual(t, 30500, got.NetSalary, "net_salary")
}

func TestComputeBreakdown_ZeroBasicSalary(t *testing.T) {
	got := ComputeBreakdown(payroll.CalculatorInput{
		BasicSalary:    decimal.Zero,
		DependentCount: 3,
	})

	assertDecEqual(t, 0, got.Tax, "tax")
	assertDecEqual(t, 0, got.Bonus, "bonus")
	assertDecEqual(t, 4000, got.Insurance, "insurance")
	assertDecEqual(t, -4000, got.NetSalary, "net_salary")
}

func TestComputeBreakdown_NetCanGoNegative(t *testing.T) {
	got := ComputeBreakdown(payroll.CalculatorInput{
		BasicSalary:        dec(1000),
		ApprovedLeaveCount: 5,
	})

	// 1000 - 100 + 50 - 1000 + 0 - 5000 + 100
	assertDecEqual(t, -4950, got.NetSalary, "net_salary")
}

func TestComputeBreakdown_InsuranceScalesWithDependents(t *testing.T) {
	for deps := 0; deps < 4; deps++ {
		got := ComputeBreakdown(payroll.CalculatorInput{
			BasicSalary:    dec(10000),
			DependentCount: deps,
		})
		assertDecEqual(t, int64(1000*(1+deps)), got.Insurance, "insurance")
	}
}

func TestComputeBreakdown_LeaveDeductionsScaleLinearly(t *testing.T) {
	for leaves := 0; leaves < 4; leaves++ {
		got := ComputeBreakdown(payroll.CalculatorInput{
			BasicSalary:        dec(10000),
			ApprovedLeaveCount: leaves,
		})
		assertDecEqual(t, int64(1000*leaves), got.LeaveDeductions, "leave_deductions")
	}
}

func TestComputeQuickEstimate_HoursLoadedInsurance(t *testing.T) {
	got := ComputeQuickEstimate(payroll.CalculatorInput{
		BasicSalary:        dec(50000),
		OvertimeHoursRaw:   5,
		TotalHoursWorked:   10,
		ApprovedLeaveCount: 1,
		DependentCount:     2,
	})

	// 1000 * (1 + 2 + 100*(10-8))
	assertDecEqual(t, 203000, got.Insurance, "insurance")
	// Overtime enters net as raw hours, not pay.
	assertDecEqual(t, 5, got.OvertimePay, "overtime")
	// 50000 - 5000 + 2500 - 203000 + 5 - 1000 + 5000
	assertDecEqual(t, -151495, got.NetSalary, "net_salary")
}

func TestComputeQuickEstimate_NoExtraHours(t *testing.T) {
	got := ComputeQuickEstimate(payroll.CalculatorInput{
		BasicSalary:      dec(50000),
		TotalHoursWorked: 8,
		DependentCount:   2,
	})

	// At or below a full day the insurance matches the payslip formula.
	assertDecEqual(t, 3000, got.Insurance, "insurance")
	// 50000 - 5000 + 2500 - 3000 + 0 - 0 + 5000
	assertDecEqual(t, 49500, got.NetSalary, "net_salary")
}
