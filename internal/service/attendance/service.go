package attendance

import (
	"context"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		result = append(result, mapToResponse(att))
	}
	return result, nil
}

func mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:          att.ID,
		EmployeeID:  att.EmployeeID,
		Date:        att.Date.Format("2006-01-02"),
		HoursWorked: att.HoursWorked,
	}
}
