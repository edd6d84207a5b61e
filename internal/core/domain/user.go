package domain

import (
	"strings"
	"time"
)

// Role selects which menu and operations are available to a user.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleAgent         Role = "agent"
	RoleUnderwriter   Role = "underwriter"
	RoleClaimAdjuster Role = "claim adjuster"
	RoleCustomer      Role = "customer"
	RoleUnset         Role = ""
)

// Roles lists every assignable role in menu order.
var Roles = []Role{RoleAdmin, RoleAgent, RoleUnderwriter, RoleClaimAdjuster, RoleCustomer}

// ParseRole normalises free-form input ("Claim Adjuster", "claim_adjuster")
// into a Role. Unknown values are reported with ok=false.
func ParseRole(s string) (Role, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.Join(strings.Fields(norm), " ")
	if norm == "" {
		return RoleUnset, true
	}
	for _, r := range Roles {
		if string(r) == norm {
			return r, true
		}
	}
	return RoleUnset, false
}

// Valid reports whether r is one of the known roles or unset.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleUnderwriter, RoleClaimAdjuster, RoleCustomer, RoleUnset:
		return true
	}
	return false
}

func (r Role) String() string {
	if r == RoleUnset {
		return "unset"
	}
	return string(r)
}

// User models an authenticated actor in the system. Email is the primary key.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds any of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Session is the in-memory record of which email is currently authenticated.
type Session struct {
	Token    string
	Email    string
	Role     Role
	IssuedAt time.Time
}
