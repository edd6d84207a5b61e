package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateTotalPremium_Empty(t *testing.T) {
	c := NewCustomer("erin@example.com")
	if got := c.CalculateTotalPremium(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCalculateTotalPremium_Sum(t *testing.T) {
	c := NewCustomer("erin@example.com")
	c.AddPolicy(Policy{ID: "p1", Type: "auto", Premium: 100, Status: PolicyActive})
	c.AddPolicy(Policy{ID: "p2", Type: "home", Premium: 250.5, Status: PolicyPending})

	if got := c.CalculateTotalPremium(); got != 350.5 {
		t.Fatalf("expected 350.5, got %v", got)
	}
}

func TestNewCustomer_NameFromEmail(t *testing.T) {
	c := NewCustomer("frank.smith@example.com")
	if c.Name != "frank.smith" {
		t.Fatalf("unexpected name: %q", c.Name)
	}
	if c.Policies == nil {
		t.Fatalf("expected non-nil policy slice")
	}
}

func TestCustomer_RemovePolicy(t *testing.T) {
	c := NewCustomer("erin@example.com")
	c.AddPolicy(Policy{ID: "p1", Premium: 10})
	c.AddPolicy(Policy{ID: "p2", Premium: 20})

	if err := c.RemovePolicy("p1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(c.Policies) != 1 || c.Policies[0].ID != "p2" {
		t.Fatalf("unexpected policies: %+v", c.Policies)
	}
	if err := c.RemovePolicy("missing"); !errors.Is(err, ErrPolicyNotFound) {
		t.Fatalf("expected ErrPolicyNotFound, got %v", err)
	}
}

func TestCustomer_CloneIsDeep(t *testing.T) {
	c := NewCustomer("erin@example.com")
	c.AddPolicy(Policy{ID: "p1", Premium: 10, Status: PolicyPending})

	clone := c.Clone()
	clone.Policies[0].Status = PolicyActive

	if c.Policies[0].Status != PolicyPending {
		t.Fatalf("clone shares policy storage with source")
	}
}

func TestCustomer_ValidatePolicies(t *testing.T) {
	valid := Policy{ID: "p1", Type: "auto", Premium: 100, Status: PolicyActive}

	tests := []struct {
		name     string
		policies []Policy
		ok       bool
	}{
		{"empty", nil, true},
		{"valid", []Policy{valid, {ID: "p2", Premium: 1, Status: PolicyPending}}, true},
		{"missing id", []Policy{{ID: " ", Premium: 1, Status: PolicyActive}}, false},
		{"duplicate id", []Policy{valid, valid}, false},
		{"zero premium", []Policy{{ID: "p1", Premium: 0, Status: PolicyActive}}, false},
		{"negative premium", []Policy{{ID: "p1", Premium: -500, Status: PolicyActive}}, false},
		{"infinite premium", []Policy{{ID: "p1", Premium: math.Inf(1), Status: PolicyActive}}, false},
		{"nan premium", []Policy{{ID: "p1", Premium: math.NaN(), Status: PolicyActive}}, false},
		{"unknown status", []Policy{{ID: "p1", Premium: 1, Status: "bogus"}}, false},
		{"empty status", []Policy{{ID: "p1", Premium: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Customer{Email: "a@example.com", Policies: tt.policies}
			if err := c.ValidatePolicies(); (err == nil) != tt.ok {
				t.Fatalf("ValidatePolicies() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
