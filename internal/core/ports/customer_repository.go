package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// CustomerRepository persists customer profiles together with their policies.
type CustomerRepository interface {
	// Get returns a copy of the profile stored under email.
	Get(ctx context.Context, email string) (*domain.Customer, error)
	// Save inserts or replaces the whole profile.
	Save(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]*domain.Customer, error)
	// FindByPolicyID returns the customer owning the policy.
	FindByPolicyID(ctx context.Context, policyID string) (*domain.Customer, error)
}

// AdminRepository stores admin profiles keyed by email.
type AdminRepository interface {
	Save(ctx context.Context, admin *domain.Admin) error
	Get(ctx context.Context, email string) (*domain.Admin, error)
}

// ClaimRepository persists claims.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	Get(ctx context.Context, id string) (*domain.Claim, error)
	Update(ctx context.Context, claim *domain.Claim) error
	// List returns claims filtered by customer email and status; empty values match all.
	List(ctx context.Context, customerEmail string, status domain.ClaimStatus) ([]*domain.Claim, error)
}

// AuditLog is an append-only trail of user actions.
type AuditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	ListByActor(ctx context.Context, actor string) ([]domain.AuditEntry, error)
}
