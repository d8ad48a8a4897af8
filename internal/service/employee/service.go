package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/empdesk/empdesk-backend-go/internal/domain/department"
	"github.com/empdesk/empdesk-backend-go/internal/domain/employee"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
	"github.com/empdesk/empdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.DepartmentID != nil {
			if _, err := s.departmentRepo.GetByID(txCtx, *req.DepartmentID); err != nil {
				return err
			}
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			DepartmentID: req.DepartmentID,
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: string(hash),
			BasicSalary:  req.BasicSalary,
			HireDate:     hireDate,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.DepartmentID != nil {
			if _, err := s.departmentRepo.GetByID(txCtx, *req.DepartmentID); err != nil {
				if errors.Is(err, department.ErrDepartmentNotFound) {
					return err
				}
				return fmt.Errorf("failed to check department: %w", err)
			}
		}

		return s.employeeRepo.Update(txCtx, req)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		BasicSalary:    emp.BasicSalary,
		HireDate:       emp.HireDate.Format("2006-01-02"),
	}
}
