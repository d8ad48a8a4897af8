package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error
	// CountApprovedInMonth counts approved requests whose start date falls in
	// the given month; 0 when none.
	CountApprovedInMonth(ctx context.Context, employeeID string, month, year int) (int, error)
}

type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}
