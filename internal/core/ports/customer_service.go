package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// ProfileUpdate carries optional profile changes; nil fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	ContactNumber *string
	Address       *string
	CreditScore   *int
}

// NewPolicyInput describes a policy being added to a customer.
type NewPolicyInput struct {
	Type    string  `validate:"required,max=32"`
	Premium float64 `validate:"gt=0,lte=1000000000"`
}

// NewClaimInput describes a claim filed by a customer.
type NewClaimInput struct {
	PolicyID    string  `validate:"required"`
	Amount      float64 `validate:"gt=0,lte=1000000000"`
	Description string  `validate:"max=500"`
}

// CustomerService covers the customer portal and the user-profile menu.
type CustomerService interface {
	Profile(ctx context.Context, email string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.Customer, error)
	AddPolicy(ctx context.Context, email string, input NewPolicyInput) (*domain.Policy, error)
	RemovePolicy(ctx context.Context, email, policyID string) error
	ListPolicies(ctx context.Context, email string) ([]domain.Policy, error)
	TotalPremium(ctx context.Context, email string) (float64, error)
	FileClaim(ctx context.Context, email string, input NewClaimInput) (*domain.Claim, error)
	ListClaims(ctx context.Context, email string) ([]*domain.Claim, error)
	SaveSnapshot(ctx context.Context, email string) error
	LoadSnapshot(ctx context.Context, email string) (*domain.Customer, error)
}
