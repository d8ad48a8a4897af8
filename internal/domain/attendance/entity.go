package attendance

import "time"

// FullWorkDayHours is the daily threshold above which hours count as overtime.
const FullWorkDayHours = 8.0

type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	HoursWorked float64
	CreatedAt   time.Time
}

// MonthlySummary aggregates attendance rows for one employee and month.
// OvertimeHours is the sum of max(0, hours_worked-8) per day, not a stored
// column.
type MonthlySummary struct {
	TotalHours    float64
	OvertimeHours float64
}
