package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
	"github.com/99minutos/insurance-system/internal/metrics"
)

// StaffService implements the agent, underwriter and claim adjuster menus.
type StaffService struct {
	users     ports.AuthRepository
	customers ports.CustomerRepository
	claims    ports.ClaimRepository
	audit     ports.AuditLog
	log       zerolog.Logger
}

func NewStaffService(
	users ports.AuthRepository,
	customers ports.CustomerRepository,
	claims ports.ClaimRepository,
	audit ports.AuditLog,
	log zerolog.Logger,
) *StaffService {
	return &StaffService{
		users:     users,
		customers: customers,
		claims:    claims,
		audit:     audit,
		log:       log,
	}
}

// ── Agent ─────────────────────────────────────────────────────────────────────

// ListCustomers returns the profiles of customer accounts, ordered by email.
func (s *StaffService) ListCustomers(ctx context.Context, actor *domain.User) ([]*domain.Customer, error) {
	if err := authorize(actor, domain.RoleAgent, domain.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	isCustomer := make(map[string]bool, len(users))
	for _, u := range users {
		isCustomer[u.Email] = u.Role == domain.RoleCustomer
	}

	profiles, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	// staff accounts keep a profile too; only customer accounts are listed
	out := make([]*domain.Customer, 0, len(profiles))
	for _, c := range profiles {
		if isCustomer[c.Email] {
			out = append(out, c)
		}
	}
	return out, nil
}

// SellPolicy adds a pending policy to a customer. Registered customers that
// never opened the portal get a profile created for them.
func (s *StaffService) SellPolicy(ctx context.Context, actor *domain.User, customerEmail string, input ports.NewPolicyInput) (*domain.Policy, error) {
	if err := authorize(actor, domain.RoleAgent); err != nil {
		return nil, err
	}
	policy, err := newPolicy(input)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerFor(ctx, customerEmail)
	if err != nil {
		return nil, err
	}

	customer.AddPolicy(policy)
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("sell policy: %w", err)
	}

	metrics.PoliciesCreatedTotal.WithLabelValues(policy.Type).Inc()
	recordAudit(ctx, s.audit, s.log, actor.Email, domain.AuditPolicyAdd,
		fmt.Sprintf("policy=%s customer=%s", policy.ID, customer.Email))
	return &policy, nil
}

func (s *StaffService) CustomerPolicies(ctx context.Context, actor *domain.User, customerEmail string) ([]domain.Policy, error) {
	if err := authorize(actor, domain.RoleAgent, domain.RoleUnderwriter); err != nil {
		return nil, err
	}
	customer, err := s.customers.Get(ctx, normalizeEmail(customerEmail))
	if err != nil {
		return nil, err
	}
	return customer.Policies, nil
}

// customerFor returns the profile of a registered customer account, creating
// an empty one when the customer never opened the portal. Any other email,
// including staff accounts that keep a profile, is ErrCustomerNotFound.
func (s *StaffService) customerFor(ctx context.Context, email string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if user.Role != domain.RoleCustomer {
		return nil, domain.ErrCustomerNotFound
	}

	customer, err := s.customers.Get(ctx, email)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return domain.NewCustomer(email), nil
	}
	return customer, err
}

// ── Underwriter ───────────────────────────────────────────────────────────────

// PendingPolicies lists every policy awaiting underwriting, ordered by
// customer email.
func (s *StaffService) PendingPolicies(ctx context.Context, actor *domain.User) ([]ports.PendingPolicy, error) {
	if err := authorize(actor, domain.RoleUnderwriter); err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []ports.PendingPolicy
	for _, c := range customers {
		for _, p := range c.Policies {
			if p.Status == domain.PolicyPending {
				out = append(out, ports.PendingPolicy{CustomerEmail: c.Email, CreditScore: c.CreditScore, Policy: p})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CustomerEmail < out[j].CustomerEmail })
	return out, nil
}

func (s *StaffService) QuotePremium(ctx context.Context, actor *domain.User, customerEmail, policyType string) (float64, error) {
	if err := authorize(actor, domain.RoleUnderwriter); err != nil {
		return 0, err
	}
	customer, err := s.customers.Get(ctx, normalizeEmail(customerEmail))
	if err != nil {
		return 0, err
	}
	return domain.QuotePremium(policyType, customer.CreditScore), nil
}

func (s *StaffService) ApprovePolicy(ctx context.Context, actor *domain.User, policyID string) (*domain.Policy, error) {
	if err := authorize(actor, domain.RoleUnderwriter); err != nil {
		return nil, err
	}
	return transitionPolicy(ctx, s.customers, s.audit, s.log, actor, policyID, domain.PolicyActive)
}

func (s *StaffService) DeclinePolicy(ctx context.Context, actor *domain.User, policyID string) (*domain.Policy, error) {
	if err := authorize(actor, domain.RoleUnderwriter); err != nil {
		return nil, err
	}
	return transitionPolicy(ctx, s.customers, s.audit, s.log, actor, policyID, domain.PolicyDeclined)
}

// ── Claim adjuster ────────────────────────────────────────────────────────────

func (s *StaffService) SubmittedClaims(ctx context.Context, actor *domain.User) ([]*domain.Claim, error) {
	if err := authorize(actor, domain.RoleClaimAdjuster); err != nil {
		return nil, err
	}
	return s.claims.List(ctx, "", domain.ClaimSubmitted)
}

func (s *StaffService) VerifyClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error) {
	if err := authorize(actor, domain.RoleClaimAdjuster); err != nil {
		return nil, err
	}
	return reviewClaim(ctx, s.claims, s.audit, s.log, actor, claimID, domain.ClaimVerified)
}

func (s *StaffService) RejectClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error) {
	if err := authorize(actor, domain.RoleClaimAdjuster); err != nil {
		return nil, err
	}
	return reviewClaim(ctx, s.claims, s.audit, s.log, actor, claimID, domain.ClaimRejected)
}
