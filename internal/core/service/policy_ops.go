package service

import (
	"context"
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

// newPolicy validates input and builds a pending policy.
func newPolicy(input ports.NewPolicyInput) (domain.Policy, error) {
	input.Type = strings.ToLower(strings.TrimSpace(input.Type))
	if err := validation.Struct(input); err != nil {
		return domain.Policy{}, err
	}
	return domain.Policy{
		ID:      uuid.NewString(),
		Type:    input.Type,
		Premium: input.Premium,
		Status:  domain.PolicyPending,
	}, nil
}

// transitionPolicy moves a policy, wherever it lives, to the next status.
func transitionPolicy(
	ctx context.Context,
	customers ports.CustomerRepository,
	audit ports.AuditLog,
	log zerolog.Logger,
	actor *domain.User,
	policyID string,
	next domain.PolicyStatus,
) (*domain.Policy, error) {
	policyID = strings.TrimSpace(policyID)
	customer, err := customers.FindByPolicyID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	policy, err := customer.FindPolicy(policyID)
	if err != nil {
		return nil, err
	}
	if !policy.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, policy.Status, next)
	}

	prev := policy.Status
	policy.Status = next
	if err := customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("update policy: %w", err)
	}

	metrics.PolicyTransitionsTotal.WithLabelValues(string(next)).Inc()
	recordAudit(ctx, audit, log, actor.Email, domain.AuditPolicyStatus,
		fmt.Sprintf("policy=%s %s->%s", policyID, prev, next))
	log.Info().
		Str("policy_id", policyID).
		Str("from", string(prev)).
		Str("to", string(next)).
		Str("actor", actor.Email).
		Msg("policy status changed")

	out := *policy
	return &out, nil
}

// reviewClaim verifies or rejects a submitted claim.
func reviewClaim(
	ctx context.Context,
	claims ports.ClaimRepository,
	audit ports.AuditLog,
	log zerolog.Logger,
	actor *domain.User,
	claimID string,
	status domain.ClaimStatus,
) (*domain.Claim, error) {
	claim, err := claims.Get(ctx, strings.TrimSpace(claimID))
	if err != nil {
		return nil, err
	}
	if err := claim.Review(status, actor.Email, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("%w (claim is %s)", err, claim.Status)
	}
	if err := claims.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("review claim: %w", err)
	}

	metrics.ClaimsTotal.WithLabelValues(string(status)).Inc()
	recordAudit(ctx, audit, log, actor.Email, domain.AuditClaimReview,
		fmt.Sprintf("claim=%s status=%s", claim.ID, status))
	return claim, nil
}
