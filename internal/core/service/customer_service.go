package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
	"github.com/99minutos/insurance-system/internal/metrics"
	"github.com/99minutos/insurance-system/internal/pkg/validation"
)

// CustomerService implements the customer portal and the user profile menu.
type CustomerService struct {
	customers ports.CustomerRepository
	claims    ports.ClaimRepository
	snapshots ports.SnapshotStore
	audit     ports.AuditLog
	log       zerolog.Logger
}

func NewCustomerService(
	customers ports.CustomerRepository,
	claims ports.ClaimRepository,
	snapshots ports.SnapshotStore,
	audit ports.AuditLog,
	log zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		claims:    claims,
		snapshots: snapshots,
		audit:     audit,
		log:       log,
	}
}

// Profile returns the customer profile for email, creating an empty one on
// first access.
func (s *CustomerService) Profile(ctx context.Context, email string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	c, err := s.customers.Get(ctx, email)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	c = domain.NewCustomer(email)
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.Debug().Str("email", email).Msg("customer profile created")
	return c, nil
}

type profileFields struct {
	Name          string `validate:"max=100"`
	ContactNumber string `validate:"max=32"`
	Address       string `validate:"max=200"`
	CreditScore   int    `validate:"gte=0,lte=850"`
}

func (s *CustomerService) UpdateProfile(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.Customer, error) {
	c, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		c.Name = strings.TrimSpace(*update.Name)
	}
	if update.ContactNumber != nil {
		c.ContactNumber = strings.TrimSpace(*update.ContactNumber)
	}
	if update.Address != nil {
		c.Address = strings.TrimSpace(*update.Address)
	}
	if update.CreditScore != nil {
		c.CreditScore = *update.CreditScore
	}

	if err := validation.Struct(profileFields{
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Address:       c.Address,
		CreditScore:   c.CreditScore,
	}); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	recordAudit(ctx, s.audit, s.log, c.Email, domain.AuditProfileUpdate, "")
	return c, nil
}

func (s *CustomerService) AddPolicy(ctx context.Context, email string, input ports.NewPolicyInput) (*domain.Policy, error) {
	policy, err := newPolicy(input)
	if err != nil {
		return nil, err
	}
	c, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}

	c.AddPolicy(policy)
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("add policy: %w", err)
	}

	metrics.PoliciesCreatedTotal.WithLabelValues(policy.Type).Inc()
	recordAudit(ctx, s.audit, s.log, c.Email, domain.AuditPolicyAdd, "policy="+policy.ID)
	return &policy, nil
}

func (s *CustomerService) RemovePolicy(ctx context.Context, email, policyID string) error {
	c, err := s.Profile(ctx, email)
	if err != nil {
		return err
	}
	if err := c.RemovePolicy(strings.TrimSpace(policyID)); err != nil {
		return err
	}
	if err := s.customers.Save(ctx, c); err != nil {
		return fmt.Errorf("remove policy: %w", err)
	}
	recordAudit(ctx, s.audit, s.log, c.Email, domain.AuditPolicyRemove, "policy="+policyID)
	return nil
}

func (s *CustomerService) ListPolicies(ctx context.Context, email string) ([]domain.Policy, error) {
	c, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	return c.Policies, nil
}

func (s *CustomerService) TotalPremium(ctx context.Context, email string) (float64, error) {
	c, err := s.Profile(ctx, email)
	if err != nil {
		return 0, err
	}
	return c.CalculateTotalPremium(), nil
}

// FileClaim opens a claim against one of the customer's active policies.
func (s *CustomerService) FileClaim(ctx context.Context, email string, input ports.NewClaimInput) (*domain.Claim, error) {
	input.PolicyID = strings.TrimSpace(input.PolicyID)
	input.Description = strings.TrimSpace(input.Description)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	c, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	policy, err := c.FindPolicy(input.PolicyID)
	if err != nil {
		return nil, err
	}
	if policy.Status != domain.PolicyActive {
		return nil, fmt.Errorf("%w: policy %s is %s", domain.ErrInvalidInput, policy.ID, policy.Status)
	}

	now := time.Now().UTC()
	claim := &domain.Claim{
		ID:            uuid.NewString(),
		PolicyID:      policy.ID,
		CustomerEmail: c.Email,
		Amount:        input.Amount,
		Description:   input.Description,
		Status:        domain.ClaimSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("file claim: %w", err)
	}

	metrics.ClaimsTotal.WithLabelValues(string(domain.ClaimSubmitted)).Inc()
	recordAudit(ctx, s.audit, s.log, c.Email, domain.AuditClaimFile, "claim="+claim.ID)
	return claim, nil
}

func (s *CustomerService) ListClaims(ctx context.Context, email string) ([]*domain.Claim, error) {
	return s.claims.List(ctx, normalizeEmail(email), "")
}

// SaveSnapshot writes the customer's profile and policies to the snapshot store.
func (s *CustomerService) SaveSnapshot(ctx context.Context, email string) error {
	c, err := s.Profile(ctx, email)
	if err != nil {
		return err
	}
	if err := s.snapshots.Save(ctx, c); err != nil {
		metrics.SnapshotOperationsTotal.WithLabelValues("save", "error").Inc()
		s.log.Error().Err(err).Str("email", c.Email).Msg("snapshot save failed")
		return fmt.Errorf("save snapshot: %w", err)
	}

	metrics.SnapshotOperationsTotal.WithLabelValues("save", "success").Inc()
	recordAudit(ctx, s.audit, s.log, c.Email, domain.AuditSnapshotSave, fmt.Sprintf("policies=%d", len(c.Policies)))
	return nil
}

// LoadSnapshot restores the stored snapshot into the customer's profile. A
// snapshot belonging to another email is refused.
func (s *CustomerService) LoadSnapshot(ctx context.Context, email string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	loaded, err := s.snapshots.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSnapshotNotFound):
			metrics.SnapshotOperationsTotal.WithLabelValues("load", "not_found").Inc()
		case errors.Is(err, domain.ErrSnapshotCorrupt):
			metrics.SnapshotOperationsTotal.WithLabelValues("load", "corrupt").Inc()
			s.log.Warn().Err(err).Msg("snapshot is malformed")
		default:
			metrics.SnapshotOperationsTotal.WithLabelValues("load", "error").Inc()
		}
		return nil, err
	}
	if normalizeEmail(loaded.Email) != email {
		return nil, fmt.Errorf("%w: snapshot belongs to %s", domain.ErrForbidden, loaded.Email)
	}

	loaded.Email = email
	if loaded.Policies == nil {
		loaded.Policies = []domain.Policy{}
	}
	if err := s.checkSnapshot(ctx, loaded); err != nil {
		if errors.Is(err, domain.ErrSnapshotCorrupt) {
			metrics.SnapshotOperationsTotal.WithLabelValues("load", "corrupt").Inc()
			s.log.Warn().Err(err).Str("email", email).Msg("snapshot rejected")
		}
		return nil, err
	}
	if err := s.customers.Save(ctx, loaded); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	metrics.SnapshotOperationsTotal.WithLabelValues("load", "success").Inc()
	recordAudit(ctx, s.audit, s.log, email, domain.AuditSnapshotLoad, fmt.Sprintf("policies=%d", len(loaded.Policies)))
	return loaded, nil
}

// checkSnapshot rejects a snapshot whose policies break the policy invariants
// or reuse a policy ID owned by another customer.
func (s *CustomerService) checkSnapshot(ctx context.Context, c *domain.Customer) error {
	if err := c.ValidatePolicies(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	for _, p := range c.Policies {
		owner, err := s.customers.FindByPolicyID(ctx, p.ID)
		switch {
		case errors.Is(err, domain.ErrPolicyNotFound):
		case err != nil:
			return fmt.Errorf("load snapshot: %w", err)
		case owner.Email != c.Email:
			return fmt.Errorf("%w: policy %s belongs to another customer", domain.ErrSnapshotCorrupt, p.ID)
		}
	}
	return nil
}
