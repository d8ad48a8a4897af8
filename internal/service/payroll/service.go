package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
	"github.com/empdesk/empdesk-backend-go/internal/domain/dependent"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/domain/leave"
	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
)

type PayslipServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	dependentRepo  dependent.DependentRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewPayslipService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	dependentRepo dependent.DependentRepository,
	logger *slog.Logger,
) payroll.PayslipService {
	return &PayslipServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		dependentRepo:  dependentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// GetPayslip resolves one (employee, month, year) payslip request:
//
//   - future months return a projection from current basic salary and
//     dependent count, with zero overtime and leave deductions, never
//     persisted;
//   - the current month is computed from fresh aggregates and upserted as
//     the durable record;
//   - past months return the stored record verbatim, falling back to a
//     fresh, unpersisted computation when none was recorded.
func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, requestor auth.Requestor, employeeID string, month, year int) (payroll.PayslipResponse, error) {
	period := payroll.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !requestor.CanViewEmployee(employeeID) {
		return payroll.PayslipResponse{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayslipResponse{}, err
		}
		return payroll.PayslipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	switch period.StateAt(s.now()) {
	case payroll.PeriodFuture:
		// No attendance or leave data can exist yet; only the dependent
		// count is read.
		in := payroll.CalculatorInput{
			BasicSalary:    emp.BasicSalaryOrZero(),
			DependentCount: s.readDependentCount(ctx, employeeID),
		}
		breakdown := ComputeBreakdown(in)
		resp := breakdownToResponse(employeeID, period, breakdown)
		resp.IsProjected = true
		return resp, nil

	case payroll.PeriodCurrent:
		breakdown := ComputeBreakdown(s.readAggregates(ctx, emp, period))
		record := recordFromBreakdown(employeeID, period, breakdown)

		stored, err := s.payrollRepo.Upsert(ctx, record)
		if err != nil {
			// Non-fatal: the computed breakdown is still usable transiently.
			s.logger.Warn("payroll upsert failed, returning unpersisted breakdown",
				"employee_id", employeeID,
				"period_month", period.Month,
				"period_year", period.Year,
				"error", err,
			)
			return breakdownToResponse(employeeID, period, breakdown), nil
		}
		return recordToResponse(stored), nil

	default: // past
		stored, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, month, year)
		if err == nil {
			return recordToResponse(stored), nil
		}
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayslipResponse{}, fmt.Errorf("failed to look up payroll record: %w", err)
		}
		// Never recorded. Compute fresh but do not persist: a past month
		// must not be silently created as if it were current.
		breakdown := ComputeBreakdown(s.readAggregates(ctx, emp, period))
		return breakdownToResponse(employeeID, period, breakdown), nil
	}
}

// QuickEstimate runs the admin calculator formula set against the same
// aggregates. Admin only, never persisted.
func (s *PayslipServiceImpl) QuickEstimate(ctx context.Context, requestor auth.Requestor, employeeID string, month, year int) (payroll.EstimateResponse, error) {
	period := payroll.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return payroll.EstimateResponse{}, err
	}
	if !requestor.IsAdmin() {
		return payroll.EstimateResponse{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.EstimateResponse{}, err
		}
		return payroll.EstimateResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	breakdown := ComputeQuickEstimate(s.readAggregates(ctx, emp, period))

	return payroll.EstimateResponse{
		EmployeeID:      employeeID,
		PeriodMonth:     period.Month,
		PeriodYear:      period.Year,
		BasicSalary:     breakdown.BasicSalary,
		OvertimeHours:   breakdown.OvertimePay,
		Bonus:           breakdown.Bonus,
		Tax:             breakdown.Tax,
		Insurance:       breakdown.Insurance,
		LeaveDeductions: breakdown.LeaveDeductions,
		Allowances:      breakdown.Allowances,
		NetSalary:       breakdown.NetSalary,
	}, nil
}

func (s *PayslipServiceImpl) History(ctx context.Context, requestor auth.Requestor, employeeID string) ([]payroll.PayslipResponse, error) {
	if !requestor.CanViewEmployee(employeeID) {
		return nil, auth.ErrForbidden
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	result := make([]payroll.PayslipResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, recordToResponse(rec))
	}
	return result, nil
}

// readAggregates gathers the month's inputs with sequential reads. A failed
// aggregate read degrades to zero with a logged warning rather than failing
// the whole request.
func (s *PayslipServiceImpl) readAggregates(ctx context.Context, emp employee.Employee, period payroll.Period) payroll.CalculatorInput {
	in := payroll.CalculatorInput{BasicSalary: emp.BasicSalaryOrZero()}

	summary, err := s.attendanceRepo.SumHoursAndOvertime(ctx, emp.ID, period.Month, period.Year)
	if err != nil {
		s.logger.Warn("attendance aggregate unavailable, defaulting to zero",
			"employee_id", emp.ID, "error", err)
	} else {
		in.TotalHoursWorked = summary.TotalHours
		in.OvertimeHoursRaw = summary.OvertimeHours
	}

	leaveCount, err := s.leaveRepo.CountApprovedInMonth(ctx, emp.ID, period.Month, period.Year)
	if err != nil {
		s.logger.Warn("leave aggregate unavailable, defaulting to zero",
			"employee_id", emp.ID, "error", err)
	} else {
		in.ApprovedLeaveCount = leaveCount
	}

	in.DependentCount = s.readDependentCount(ctx, emp.ID)

	return in
}

func (s *PayslipServiceImpl) readDependentCount(ctx context.Context, employeeID string) int {
	count, err := s.dependentRepo.CountByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Warn("dependent count unavailable, defaulting to zero",
			"employee_id", employeeID, "error", err)
		return 0
	}
	return count
}

func recordFromBreakdown(employeeID string, period payroll.Period, b payroll.SalaryBreakdown) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		EmployeeID:      employeeID,
		PeriodMonth:     period.Month,
		PeriodYear:      period.Year,
		BasicSalary:     b.BasicSalary,
		OvertimePay:     b.OvertimePay,
		Bonus:           b.Bonus,
		Tax:             b.Tax,
		Insurance:       b.Insurance,
		LeaveDeductions: b.LeaveDeductions,
		Allowances:      b.Allowances,
		NetSalary:       b.NetSalary,
		PaymentDate:     period.PaymentDate(),
	}
}

func breakdownToResponse(employeeID string, period payroll.Period, b payroll.SalaryBreakdown) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		EmployeeID:      employeeID,
		PeriodMonth:     period.Month,
		PeriodYear:      period.Year,
		BasicSalary:     b.BasicSalary,
		OvertimeHours:   b.OvertimePay,
		Bonus:           b.Bonus,
		Tax:             b.Tax,
		Insurance:       b.Insurance,
		LeaveDeductions: b.LeaveDeductions,
		Allowances:      b.Allowances,
		NetSalary:       b.NetSalary,
		PaymentDate:     period.PaymentDate().Format("2006-01-02"),
	}
}

func recordToResponse(rec payroll.PayrollRecord) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		EmployeeID:      rec.EmployeeID,
		PeriodMonth:     rec.PeriodMonth,
		PeriodYear:      rec.PeriodYear,
		BasicSalary:     rec.BasicSalary,
		OvertimeHours:   rec.OvertimePay,
		Bonus:           rec.Bonus,
		Tax:             rec.Tax,
		Insurance:       rec.Insurance,
		LeaveDeductions: rec.LeaveDeductions,
		Allowances:      rec.Allowances,
		NetSalary:       rec.NetSalary,
		PaymentDate:     rec.PaymentDate.Format("2006-01-02"),
	}
}
