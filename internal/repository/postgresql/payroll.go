package postgresql

import (
	"context"
	"fmt"

	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Upsert keys the record by (employee_id, period_month, period_year) so a
// recalculation never overwrites a different month. On conflict only the
// volatile fields change; basic salary, bonus, tax, insurance and allowances
// keep the values written on first insert.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_month, period_year, basic_salary, overtime_pay,
			bonus, tax, insurance, leave_deductions, allowances, net_salary, payment_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			overtime_pay = EXCLUDED.overtime_pay,
			leave_deductions = EXCLUDED.leave_deductions,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING id, employee_id, period_month, period_year, basic_salary, overtime_pay,
			bonus, tax, insurance, leave_deductions, allowances, net_salary, payment_date,
			created_at, updated_at
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodMonth, record.PeriodYear, record.BasicSalary, record.OvertimePay,
		record.Bonus, record.Tax, record.Insurance, record.LeaveDeductions, record.Allowances,
		record.NetSalary, record.PaymentDate,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BasicSalary, &rec.OvertimePay,
		&rec.Bonus, &rec.Tax, &rec.Insurance, &rec.LeaveDeductions, &rec.Allowances,
		&rec.NetSalary, &rec.PaymentDate, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_month, period_year, basic_salary, overtime_pay,
			   bonus, tax, insurance, leave_deductions, allowances, net_salary, payment_date,
			   created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BasicSalary, &rec.OvertimePay,
		&rec.Bonus, &rec.Tax, &rec.Insurance, &rec.LeaveDeductions, &rec.Allowances,
		&rec.NetSalary, &rec.PaymentDate, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_month, period_year, basic_salary, overtime_pay,
			   bonus, tax, insurance, leave_deductions, allowances, net_salary, payment_date,
			   created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1
		ORDER BY period_year DESC, period_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BasicSalary, &rec.OvertimePay,
			&rec.Bonus, &rec.Tax, &rec.Insurance, &rec.LeaveDeductions, &rec.Allowances,
			&rec.NetSalary, &rec.PaymentDate, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
