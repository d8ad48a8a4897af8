package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
	// SumHoursAndOvertime returns zero-valued sums when no rows exist for the
	// given month.
	SumHoursAndOvertime(ctx context.Context, employeeID string, month, year int) (MonthlySummary, error)
}

type AttendanceService interface {
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
}
