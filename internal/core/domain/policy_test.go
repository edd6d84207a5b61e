package domain

import "testing"

func TestPolicyStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to PolicyStatus
		want     bool
	}{
		{PolicyPending, PolicyActive, true},
		{PolicyPending, PolicyDeclined, true},
		{PolicyPending, PolicyLapsed, false},
		{PolicyActive, PolicyCancelled, true},
		{PolicyActive, PolicyPending, false},
		{PolicyLapsed, PolicyActive, true},
		{PolicyCancelled, PolicyActive, false},
		{PolicyDeclined, PolicyActive, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestParsePolicyStatus(t *testing.T) {
	if st, ok := ParsePolicyStatus(" Active "); !ok || st != PolicyActive {
		t.Fatalf("expected active, got %q %v", st, ok)
	}
	if _, ok := ParsePolicyStatus("bogus"); ok {
		t.Fatalf("expected bogus status to be rejected")
	}
}

func TestQuotePremium(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		score  int
		expect float64
	}{
		{"excellent credit", "auto", 800, 425},
		{"good credit", "home", 700, 800},
		{"fair credit", "life", 600, 360},
		{"poor credit", "health", 500, 600},
		{"no score", "travel", 0, 150},
		{"unknown type", "boat", 700, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotePremium(tt.typ, tt.score); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
