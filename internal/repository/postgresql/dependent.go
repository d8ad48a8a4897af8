package postgresql

import (
	"context"
	"fmt"

	"github.com/empdesk/empdesk-backend-go/internal/domain/dependent"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dependentRepositoryImpl struct {
	db *database.DB
}

func NewDependentRepository(db *database.DB) dependent.DependentRepository {
	return &dependentRepositoryImpl{db: db}
}

func (r *dependentRepositoryImpl) Create(ctx context.Context, dep dependent.Dependent) (dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dependents (employee_id, full_name, relationship, dob)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, full_name, relationship, dob, created_at
	`

	var d dependent.Dependent
	err := q.QueryRow(ctx, query, dep.EmployeeID, dep.FullName, dep.Relationship, dep.DOB).Scan(
		&d.ID, &d.EmployeeID, &d.FullName, &d.Relationship, &d.DOB, &d.CreatedAt,
	)
	if err != nil {
		return dependent.Dependent{}, fmt.Errorf("failed to create dependent: %w", err)
	}

	return d, nil
}

func (r *dependentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, full_name, relationship, dob, created_at
		FROM dependents
		WHERE employee_id = $1
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependents: %w", err)
	}
	defer rows.Close()

	var dependents []dependent.Dependent
	for rows.Next() {
		var d dependent.Dependent
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.FullName, &d.Relationship, &d.DOB, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dependent: %w", err)
		}
		dependents = append(dependents, d)
	}

	return dependents, rows.Err()
}

func (r *dependentRepositoryImpl) Delete(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM dependents WHERE id = $1 AND employee_id = $2 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id, employeeID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return dependent.ErrDependentNotFound
		}
		return fmt.Errorf("failed to delete dependent: %w", err)
	}

	return nil
}

func (r *dependentRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM dependents WHERE employee_id = $1`

	var count int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dependents: %w", err)
	}

	return count, nil
}
