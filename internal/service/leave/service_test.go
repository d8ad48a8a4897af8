package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests      map[string]leave.LeaveRequest
	statusUpdates int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = "leave-1"
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range f.requests {
		if req.Status == status {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	f.statusUpdates++
	return nil
}

func (f *fakeLeaveRepo) CountApprovedInMonth(ctx context.Context, employeeID string, month, year int) (int, error) {
	return 0, errors.New("not implemented")
}

type fakeEmployeeRepo struct {
	err error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	return employee.Employee{ID: id}, nil
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

func seedRequest(repo *fakeLeaveRepo, status leave.LeaveStatus) string {
	req := leave.LeaveRequest{
		ID:         "leave-seed",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
	repo.requests[req.ID] = req
	return req.ID
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})

	got, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-10",
		EndDate:    "2025-06-12",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), got.Status)
	assert.Equal(t, "2025-06-10", got.StartDate)
	assert.Equal(t, "2025-06-12", got.EndDate)
}

func TestSubmit_RejectsEndBeforeStart(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-12",
		EndDate:    "2025-06-10",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{err: employee.ErrEmployeeNotFound})

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-404",
		StartDate:  "2025-06-10",
		EndDate:    "2025-06-12",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove_PendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})
	id := seedRequest(repo, leave.StatusPending)

	require.NoError(t, svc.Approve(context.Background(), id))
	assert.Equal(t, leave.StatusApproved, repo.requests[id].Status)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})
	id := seedRequest(repo, leave.StatusApproved)

	err := svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Zero(t, repo.statusUpdates)
}

func TestReject_PendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})
	id := seedRequest(repo, leave.StatusPending)

	require.NoError(t, svc.Reject(context.Background(), id))
	assert.Equal(t, leave.StatusRejected, repo.requests[id].Status)
}

func TestReject_AlreadyRejected(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})
	id := seedRequest(repo, leave.StatusRejected)

	err := svc.Reject(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestApprove_NotFound(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, &fakeEmployeeRepo{})

	err := svc.Approve(context.Background(), "leave-404")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
