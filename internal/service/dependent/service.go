package dependent

import (
	"context"

	"github.com/empdesk/empdesk-backend-go/internal/domain/dependent"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
)

type DependentServiceImpl struct {
	dependentRepo dependent.DependentRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDependentService(
	dependentRepo dependent.DependentRepository,
	employeeRepo employee.EmployeeRepository,
) dependent.DependentService {
	return &DependentServiceImpl{
		dependentRepo: dependentRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *DependentServiceImpl) Add(ctx context.Context, req dependent.AddDependentRequest) (dependent.DependentResponse, error) {
	if err := req.Validate(); err != nil {
		return dependent.DependentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return dependent.DependentResponse{}, err
	}

	dep := dependent.Dependent{
		EmployeeID:   req.EmployeeID,
		FullName:     req.FullName,
		Relationship: req.Relationship,
	}
	if req.DOB != nil {
		dob, _ := validator.IsValidDate(*req.DOB)
		dep.DOB = &dob
	}

	created, err := s.dependentRepo.Create(ctx, dep)
	if err != nil {
		return dependent.DependentResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *DependentServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]dependent.DependentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	dependents, err := s.dependentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]dependent.DependentResponse, 0, len(dependents))
	for _, dep := range dependents {
		result = append(result, mapToResponse(dep))
	}
	return result, nil
}

func (s *DependentServiceImpl) Remove(ctx context.Context, id string, employeeID string) error {
	return s.dependentRepo.Delete(ctx, id, employeeID)
}

func mapToResponse(dep dependent.Dependent) dependent.DependentResponse {
	resp := dependent.DependentResponse{
		ID:           dep.ID,
		EmployeeID:   dep.EmployeeID,
		FullName:     dep.FullName,
		Relationship: dep.Relationship,
	}
	if dep.DOB != nil {
		dob := dep.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	return resp
}
