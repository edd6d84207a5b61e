package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"Claim Adjuster", RoleClaimAdjuster, true},
		{"claim_adjuster", RoleClaimAdjuster, true},
		{"  underwriter ", RoleUnderwriter, true},
		{"", RoleUnset, true},
		{"superuser", RoleUnset, false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Email: "a@example.com", Role: RoleAgent}
	if !u.HasRole(RoleAdmin, RoleAgent) {
		t.Fatalf("expected agent to match")
	}
	if u.HasRole(RoleCustomer) {
		t.Fatalf("agent should not match customer")
	}
	var nilUser *User
	if nilUser.HasRole(RoleAgent) {
		t.Fatalf("nil user should hold no role")
	}
}
