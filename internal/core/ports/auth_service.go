package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, email, current, next string) error
}
