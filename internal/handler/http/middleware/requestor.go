package middleware

import (
	"context"

	"github.com/empdesk/empdesk-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// RequestorFromContext reads the verified token claims once and converts them
// into an explicit caller identity for the service layer.
func RequestorFromContext(ctx context.Context) (auth.Requestor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Requestor{}, auth.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return auth.Requestor{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return auth.Requestor{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return auth.Requestor{
		SubjectID: sub,
		Email:     email,
		Role:      auth.Role(role),
	}, nil
}
