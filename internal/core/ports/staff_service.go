package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// PendingPolicy pairs a pending policy with its owner.
type PendingPolicy struct {
	CustomerEmail string
	CreditScore   int
	Policy        domain.Policy
}

// StaffService implements the agent, underwriter and claim adjuster menus.
type StaffService interface {
	// agent
	ListCustomers(ctx context.Context, actor *domain.User) ([]*domain.Customer, error)
	SellPolicy(ctx context.Context, actor *domain.User, customerEmail string, input NewPolicyInput) (*domain.Policy, error)
	CustomerPolicies(ctx context.Context, actor *domain.User, customerEmail string) ([]domain.Policy, error)

	// underwriter
	PendingPolicies(ctx context.Context, actor *domain.User) ([]PendingPolicy, error)
	QuotePremium(ctx context.Context, actor *domain.User, customerEmail, policyType string) (float64, error)
	ApprovePolicy(ctx context.Context, actor *domain.User, policyID string) (*domain.Policy, error)
	DeclinePolicy(ctx context.Context, actor *domain.User, policyID string) (*domain.Policy, error)

	// claim adjuster
	SubmittedClaims(ctx context.Context, actor *domain.User) ([]*domain.Claim, error)
	VerifyClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error)
	RejectClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error)
}
