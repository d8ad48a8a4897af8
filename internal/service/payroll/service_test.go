package payroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
	"github.com/empdesk/empdesk-backend-go/internal/domain/dependent"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/domain/leave"
	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakePayrollRepo struct {
	upserts   []payroll.PayrollRecord
	upsertErr error
	stored    *payroll.PayrollRecord
	getErr    error
	history   []payroll.PayrollRecord
}

func (f *fakePayrollRepo) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.upserts = append(f.upserts, record)
	if f.upsertErr != nil {
		return payroll.PayrollRecord{}, f.upsertErr
	}
	record.ID = "rec-1"
	return record, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	if f.getErr != nil {
		return payroll.PayrollRecord{}, f.getErr
	}
	if f.stored != nil {
		return *f.stored, nil
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	return f.history, nil
}

type fakeEmployeeRepo struct {
	emp employee.Employee
	err error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type fakeAttendanceRepo struct {
	summary  attendance.MonthlySummary
	err      error
	sumCalls int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return attendance.Attendance{}, errors.New("not implemented")
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAttendanceRepo) SumHoursAndOvertime(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	f.sumCalls++
	if f.err != nil {
		return attendance.MonthlySummary{}, f.err
	}
	return f.summary, nil
}

type fakeLeaveRepo struct {
	approvedCount int
	err           error
	countCalls    int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, errors.New("not implemented")
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, errors.New("not implemented")
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	return errors.New("not implemented")
}

func (f *fakeLeaveRepo) CountApprovedInMonth(ctx context.Context, employeeID string, month, year int) (int, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return f.approvedCount, nil
}

type fakeDependentRepo struct {
	count int
	err   error
}

func (f *fakeDependentRepo) Create(ctx context.Context, dep dependent.Dependent) (dependent.Dependent, error) {
	return dependent.Dependent{}, errors.New("not implemented")
}

func (f *fakeDependentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]dependent.Dependent, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDependentRepo) Delete(ctx context.Context, id string, employeeID string) error {
	return errors.New("not implemented")
}

func (f *fakeDependentRepo) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

// ===== FIXTURE =====

type payslipFixture struct {
	payrollRepo    *fakePayrollRepo
	employeeRepo   *fakeEmployeeRepo
	attendanceRepo *fakeAttendanceRepo
	leaveRepo      *fakeLeaveRepo
	dependentRepo  *fakeDependentRepo
	svc            *PayslipServiceImpl
}

// newPayslipFixture wires the service against fakes with the clock pinned to
// mid June 2025.
func newPayslipFixture(t *testing.T) *payslipFixture {
	t.Helper()

	salary := decimal.NewFromInt(50000)
	f := &payslipFixture{
		payrollRepo: &fakePayrollRepo{},
		employeeRepo: &fakeEmployeeRepo{
			emp: employee.Employee{
				ID:          "emp-1",
				FullName:    "Test Employee",
				Email:       "employee@example.com",
				BasicSalary: &salary,
			},
		},
		attendanceRepo: &fakeAttendanceRepo{
			summary: attendance.MonthlySummary{TotalHours: 173, OvertimeHours: 5},
		},
		leaveRepo:     &fakeLeaveRepo{approvedCount: 1},
		dependentRepo: &fakeDependentRepo{count: 2},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPayslipService(f.payrollRepo, f.employeeRepo, f.attendanceRepo, f.leaveRepo, f.dependentRepo, logger)
	f.svc = svc.(*PayslipServiceImpl)
	f.svc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return f
}

var adminRequestor = auth.Requestor{SubjectID: "admin-1", Email: "admin@example.com", Role: auth.RoleAdmin}

func selfRequestor(employeeID string) auth.Requestor {
	return auth.Requestor{SubjectID: employeeID, Email: "employee@example.com", Role: auth.RoleEmployee}
}

// ===== RESOLVER TESTS =====

func TestGetPayslip_CurrentMonth_ComputesAndStores(t *testing.T) {
	f := newPayslipFixture(t)

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 6, 2025)
	require.NoError(t, err)

	assertDecEqual(t, 5000, got.Tax, "tax")
	assertDecEqual(t, 2500, got.Allowances, "allowances")
	assertDecEqual(t, 5000, got.Bonus, "bonus")
	assertDecEqual(t, 1000, got.LeaveDeductions, "leave_deductions")
	assertDecEqual(t, 3000, got.Insurance, "insurance")
	assertDecEqual(t, 500, got.OvertimeHours, "overtime")
	assertDecEqual(t, 49000, got.NetSalary, "net_salary")
	assert.False(t, got.IsProjected)
	assert.Equal(t, "2025-06-01", got.PaymentDate)

	require.Len(t, f.payrollRepo.upserts, 1)
	assertDecEqual(t, 49000, f.payrollRepo.upserts[0].NetSalary, "stored net_salary")
}

func TestGetPayslip_CurrentMonth_UpsertFailureStillReturnsBreakdown(t *testing.T) {
	f := newPayslipFixture(t)
	f.payrollRepo.upsertErr = errors.New("connection refused")

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 6, 2025)
	require.NoError(t, err)

	assertDecEqual(t, 49000, got.NetSalary, "net_salary")
}

func TestGetPayslip_FutureMonth_ReturnsProjection(t *testing.T) {
	f := newPayslipFixture(t)
	salary := decimal.NewFromInt(30000)
	f.employeeRepo.emp.BasicSalary = &salary
	f.dependentRepo.count = 0

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 7, 2025)
	require.NoError(t, err)

	assert.True(t, got.IsProjected)
	assertDecEqual(t, 0, got.OvertimeHours, "overtime")
	assertDecEqual(t, 0, got.LeaveDeductions, "leave_deductions")
	assertDecEqual(t, 1000, got.Insurance, "insurance")
	assertDecEqual(t, 30500, got.NetSalary, "net_salary")

	// Projections read no month aggregates and never persist.
	assert.Zero(t, f.attendanceRepo.sumCalls)
	assert.Zero(t, f.leaveRepo.countCalls)
	assert.Empty(t, f.payrollRepo.upserts)
}

func TestGetPayslip_PastMonth_ReturnsStoredRecordVerbatim(t *testing.T) {
	f := newPayslipFixture(t)
	f.payrollRepo.stored = &payroll.PayrollRecord{
		ID:          "rec-old",
		EmployeeID:  "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
		BasicSalary: decimal.NewFromInt(42000),
		NetSalary:   decimal.NewFromInt(40000),
		PaymentDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 3, 2025)
	require.NoError(t, err)

	// Stored values win even when current inputs would compute differently.
	assertDecEqual(t, 40000, got.NetSalary, "net_salary")
	assert.Zero(t, f.attendanceRepo.sumCalls)
	assert.Empty(t, f.payrollRepo.upserts)
}

func TestGetPayslip_PastMonth_MissingRecordComputesWithoutStoring(t *testing.T) {
	f := newPayslipFixture(t)

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 3, 2025)
	require.NoError(t, err)

	assertDecEqual(t, 49000, got.NetSalary, "net_salary")
	assert.Empty(t, f.payrollRepo.upserts)
}

func TestGetPayslip_InvalidMonth(t *testing.T) {
	f := newPayslipFixture(t)

	for _, month := range []int{0, 13, -1} {
		_, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", month, 2025)
		assert.ErrorIs(t, err, payroll.ErrInvalidPeriod, "month %d", month)
	}
	assert.Empty(t, f.payrollRepo.upserts)
}

func TestGetPayslip_EmployeeNotFound(t *testing.T) {
	f := newPayslipFixture(t)
	f.employeeRepo.err = employee.ErrEmployeeNotFound

	_, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-404", 6, 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetPayslip_EmployeeCannotViewOthers(t *testing.T) {
	f := newPayslipFixture(t)

	_, err := f.svc.GetPayslip(context.Background(), selfRequestor("emp-2"), "emp-1", 6, 2025)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestGetPayslip_EmployeeCanViewSelf(t *testing.T) {
	f := newPayslipFixture(t)

	got, err := f.svc.GetPayslip(context.Background(), selfRequestor("emp-1"), "emp-1", 6, 2025)
	require.NoError(t, err)
	assertDecEqual(t, 49000, got.NetSalary, "net_salary")
}

func TestGetPayslip_AggregateFailuresDefaultToZero(t *testing.T) {
	f := newPayslipFixture(t)
	f.attendanceRepo.err = errors.New("attendance store down")
	f.leaveRepo.err = errors.New("leave store down")
	f.dependentRepo.err = errors.New("dependent store down")

	got, err := f.svc.GetPayslip(context.Background(), adminRequestor, "emp-1", 6, 2025)
	require.NoError(t, err)

	// 50000 - 5000 + 2500 - 1000 + 0 - 0 + 5000
	assertDecEqual(t, 0, got.OvertimeHours, "overtime")
	assertDecEqual(t, 0, got.LeaveDeductions, "leave_deductions")
	assertDecEqual(t, 1000, got.Insurance, "insurance")
	assertDecEqual(t, 51500, got.NetSalary, "net_salary")
}

// ===== ESTIMATE TESTS =====

func TestQuickEstimate_AdminOnly(t *testing.T) {
	f := newPayslipFixture(t)

	_, err := f.svc.QuickEstimate(context.Background(), selfRequestor("emp-1"), "emp-1", 6, 2025)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestQuickEstimate_UsesHoursLoadedFormula(t *testing.T) {
	f := newPayslipFixture(t)
	f.attendanceRepo.summary = attendance.MonthlySummary{TotalHours: 10, OvertimeHours: 5}

	got, err := f.svc.QuickEstimate(context.Background(), adminRequestor, "emp-1", 6, 2025)
	require.NoError(t, err)

	assertDecEqual(t, 203000, got.Insurance, "insurance")
	assertDecEqual(t, 5, got.OvertimeHours, "overtime")
	assertDecEqual(t, -151495, got.NetSalary, "net_salary")
	assert.Empty(t, f.payrollRepo.upserts)
}

func TestQuickEstimate_InvalidMonth(t *testing.T) {
	f := newPayslipFixture(t)

	_, err := f.svc.QuickEstimate(context.Background(), adminRequestor, "emp-1", 13, 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

// ===== HISTORY TESTS =====

func TestHistory_ReturnsStoredRecords(t *testing.T) {
	f := newPayslipFixture(t)
	f.payrollRepo.history = []payroll.PayrollRecord{
		{
			EmployeeID:  "emp-1",
			PeriodMonth: 5,
			PeriodYear:  2025,
			NetSalary:   decimal.NewFromInt(48000),
			PaymentDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID:  "emp-1",
			PeriodMonth: 4,
			PeriodYear:  2025,
			NetSalary:   decimal.NewFromInt(47000),
			PaymentDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	got, err := f.svc.History(context.Background(), adminRequestor, "emp-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assertDecEqual(t, 48000, got[0].NetSalary, "net_salary")
	assert.Equal(t, "2025-05-01", got[0].PaymentDate)
}

func TestHistory_EmployeeCannotViewOthers(t *testing.T) {
	f := newPayslipFixture(t)

	_, err := f.svc.History(context.Background(), selfRequestor("emp-2"), "emp-1")
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
