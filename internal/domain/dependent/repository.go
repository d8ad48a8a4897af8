package dependent

import "context"

type DependentRepository interface {
	Create(ctx context.Context, dep Dependent) (Dependent, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Dependent, error)
	Delete(ctx context.Context, id string, employeeID string) error
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}

type DependentService interface {
	Add(ctx context.Context, req AddDependentRequest) (DependentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]DependentResponse, error)
	Remove(ctx context.Context, id string, employeeID string) error
}
