package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// AuthRepository defines the interface for user authentication persistence.
// It is the single user store: credentials and role are never kept anywhere else.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

// SessionStore maps issued session tokens to the email that owns them.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
}
