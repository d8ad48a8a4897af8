package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, hours_worked)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, hours_worked, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, att.EmployeeID, att.Date, att.HoursWorked).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.HoursWorked, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, hours_worked, created_at
		FROM attendances
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.HoursWorked, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

func (r *attendanceRepositoryImpl) SumHoursAndOvertime(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	// Daily overtime is GREATEST(hours_worked - 8, 0); months with no rows
	// aggregate to zero.
	query := `
		SELECT
			COALESCE(SUM(hours_worked), 0) as total_hours,
			COALESCE(SUM(GREATEST(hours_worked - 8, 0)), 0) as overtime_hours
		FROM attendances
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.TotalHours, &summary.OvertimeHours,
	)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to sum attendance hours: %w", err)
	}

	return summary, nil
}
