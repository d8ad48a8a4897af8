package postgresql

import (
	"context"
	"fmt"

	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

func (r *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, full_name, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrAdminNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return a, nil
}

func (r *adminRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, full_name, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrAdminNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}
