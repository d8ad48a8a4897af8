package leave

import (
	"context"

	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/domain/leave"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapToResponses(requests), nil
}

func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return mapToResponses(requests), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, leave.StatusRejected)
}

// Only pending requests can be processed.
func (s *LeaveServiceImpl) transition(ctx context.Context, id string, status leave.LeaveStatus) error {
	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != leave.StatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return s.leaveRepo.UpdateStatus(ctx, id, status)
}

func mapToResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		StartDate:  lr.StartDate.Format("2006-01-02"),
		EndDate:    lr.EndDate.Format("2006-01-02"),
		Reason:     lr.Reason,
		Status:     string(lr.Status),
	}
}

func mapToResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	result := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		result = append(result, mapToResponse(lr))
	}
	return result
}
