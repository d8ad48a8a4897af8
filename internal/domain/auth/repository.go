package auth

import "context"

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
}

type AuthService interface {
	LoginAdmin(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginEmployee(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
