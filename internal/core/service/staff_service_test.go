package service

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

func TestStaffService_RoleChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.mustUser(t, "cust@example.com", domain.RoleCustomer)
	agent := f.mustUser(t, "agent@example.com", domain.RoleAgent)

	if _, err := f.staff.ListCustomers(ctx, cust); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer listing customers: %v", err)
	}
	if _, err := f.staff.PendingPolicies(ctx, agent); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("agent listing pending policies: %v", err)
	}
	if _, err := f.staff.SubmittedClaims(ctx, agent); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("agent listing claims: %v", err)
	}
	if _, err := f.staff.ApprovePolicy(ctx, nil, "x"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("anonymous approve: %v", err)
	}
}

func TestStaffService_SellPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	agent := f.mustUser(t, "agent@example.com", domain.RoleAgent)
	f.mustUser(t, "cust@example.com", domain.RoleCustomer)
	f.mustUser(t, "uw@example.com", domain.RoleUnderwriter)

	sold, err := f.staff.SellPolicy(ctx, agent, "Cust@example.com", ports.NewPolicyInput{Type: "home", Premium: 800})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if sold.Status != domain.PolicyPending {
		t.Fatalf("sold policy should await underwriting, got %s", sold.Status)
	}

	policies, err := f.staff.CustomerPolicies(ctx, agent, "cust@example.com")
	if err != nil || len(policies) != 1 || policies[0].ID != sold.ID {
		t.Fatalf("unexpected policies: %+v %v", policies, err)
	}

	if _, err := f.staff.SellPolicy(ctx, agent, "uw@example.com", ports.NewPolicyInput{Type: "auto", Premium: 10}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("selling to staff: expected ErrCustomerNotFound, got %v", err)
	}
	if _, err := f.staff.SellPolicy(ctx, agent, "nobody@example.com", ports.NewPolicyInput{Type: "auto", Premium: 10}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("selling to unknown: expected ErrCustomerNotFound, got %v", err)
	}
	// a staff account that opened its own profile is still not a customer
	_, _ = f.customer.Profile(ctx, "uw@example.com")
	if _, err := f.staff.SellPolicy(ctx, agent, "uw@example.com", ports.NewPolicyInput{Type: "auto", Premium: 10}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("selling to staff with a profile: expected ErrCustomerNotFound, got %v", err)
	}
	if uw, _ := f.customers.Get(ctx, "uw@example.com"); uw == nil || len(uw.Policies) != 0 {
		t.Fatalf("staff profile gained policies: %+v", uw)
	}

	// the agent's own profile is not a customer
	_, _ = f.customer.Profile(ctx, "agent@example.com")
	customers, err := f.staff.ListCustomers(ctx, agent)
	if err != nil || len(customers) != 1 || customers[0].Email != "cust@example.com" {
		t.Fatalf("unexpected customers: %+v %v", customers, err)
	}
}

func TestStaffService_UnderwritingFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	agent := f.mustUser(t, "agent@example.com", domain.RoleAgent)
	uw := f.mustUser(t, "uw@example.com", domain.RoleUnderwriter)
	f.mustUser(t, "b@example.com", domain.RoleCustomer)
	f.mustUser(t, "a@example.com", domain.RoleCustomer)

	pb, _ := f.staff.SellPolicy(ctx, agent, "b@example.com", ports.NewPolicyInput{Type: "auto", Premium: 500})
	pa, _ := f.staff.SellPolicy(ctx, agent, "a@example.com", ports.NewPolicyInput{Type: "life", Premium: 300})

	pending, err := f.staff.PendingPolicies(ctx, uw)
	if err != nil || len(pending) != 2 {
		t.Fatalf("unexpected pending: %+v %v", pending, err)
	}
	if pending[0].CustomerEmail != "a@example.com" {
		t.Fatalf("pending not ordered by email: %+v", pending)
	}

	if p, err := f.staff.ApprovePolicy(ctx, uw, pa.ID); err != nil || p.Status != domain.PolicyActive {
		t.Fatalf("approve: %+v %v", p, err)
	}
	if p, err := f.staff.DeclinePolicy(ctx, uw, pb.ID); err != nil || p.Status != domain.PolicyDeclined {
		t.Fatalf("decline: %+v %v", p, err)
	}
	if _, err := f.staff.ApprovePolicy(ctx, uw, pb.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("approving declined policy: expected ErrInvalidTransition, got %v", err)
	}

	pending, _ = f.staff.PendingPolicies(ctx, uw)
	if len(pending) != 0 {
		t.Fatalf("expected no pending policies, got %+v", pending)
	}
}

func TestStaffService_QuotePremium(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uw := f.mustUser(t, "uw@example.com", domain.RoleUnderwriter)
	_, _ = f.customer.UpdateProfile(ctx, "cust@example.com", ports.ProfileUpdate{CreditScore: intPtr(780)})

	quote, err := f.staff.QuotePremium(ctx, uw, "cust@example.com", "auto")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote != domain.QuotePremium("auto", 780) {
		t.Fatalf("unexpected quote %v", quote)
	}
	if _, err := f.staff.QuotePremium(ctx, uw, "nobody@example.com", "auto"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestStaffService_ClaimAdjusterFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adj := f.mustUser(t, "adj@example.com", domain.RoleClaimAdjuster)
	p := f.seedPolicy(t, "cust@example.com", domain.PolicyActive, 100)

	c1, _ := f.customer.FileClaim(ctx, "cust@example.com", ports.NewClaimInput{PolicyID: p.ID, Amount: 10})
	c2, _ := f.customer.FileClaim(ctx, "cust@example.com", ports.NewClaimInput{PolicyID: p.ID, Amount: 20})

	submitted, err := f.staff.SubmittedClaims(ctx, adj)
	if err != nil || len(submitted) != 2 {
		t.Fatalf("unexpected submitted claims: %+v %v", submitted, err)
	}

	if c, err := f.staff.VerifyClaim(ctx, adj, c1.ID); err != nil || c.Status != domain.ClaimVerified {
		t.Fatalf("verify: %+v %v", c, err)
	}
	if c, err := f.staff.RejectClaim(ctx, adj, c2.ID); err != nil || c.Status != domain.ClaimRejected {
		t.Fatalf("reject: %+v %v", c, err)
	}
	if _, err := f.staff.RejectClaim(ctx, adj, c1.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	submitted, _ = f.staff.SubmittedClaims(ctx, adj)
	if len(submitted) != 0 {
		t.Fatalf("expected no submitted claims, got %d", len(submitted))
	}
	mine, _ := f.customer.ListClaims(ctx, "cust@example.com")
	if len(mine) != 2 {
		t.Fatalf("customer should still see both claims, got %d", len(mine))
	}
}
