package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Customer owns a collection of policies. Credentials live on the User with
// the same email; the customer profile never duplicates them.
type Customer struct {
	Email         string   `json:"email" bson:"_id"`
	Name          string   `json:"name" bson:"name"`
	ContactNumber string   `json:"contact_number" bson:"contact_number"`
	Address       string   `json:"address" bson:"address"`
	CreditScore   int      `json:"credit_score" bson:"credit_score"`
	Policies      []Policy `json:"policies" bson:"policies"`
}

// NewCustomer builds an empty profile, naming the customer after the local
// part of the email.
func NewCustomer(email string) *Customer {
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return &Customer{Email: email, Name: name, Policies: []Policy{}}
}

// CalculateTotalPremium sums the premiums over every policy.
func (c *Customer) CalculateTotalPremium() float64 {
	var total float64
	for _, p := range c.Policies {
		total += p.Premium
	}
	return total
}

// AddPolicy appends p to the customer's policies.
func (c *Customer) AddPolicy(p Policy) {
	c.Policies = append(c.Policies, p)
}

// RemovePolicy drops the policy with the given id.
func (c *Customer) RemovePolicy(id string) error {
	for i, p := range c.Policies {
		if p.ID == id {
			c.Policies = append(c.Policies[:i], c.Policies[i+1:]...)
			return nil
		}
	}
	return ErrPolicyNotFound
}

// FindPolicy returns a pointer into the customer's policy slice.
func (c *Customer) FindPolicy(id string) (*Policy, error) {
	for i := range c.Policies {
		if c.Policies[i].ID == id {
			return &c.Policies[i], nil
		}
	}
	return nil, ErrPolicyNotFound
}

// Clone returns a deep copy so repositories never share policy slices.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Policies = make([]Policy, len(c.Policies))
	copy(out.Policies, c.Policies)
	return &out
}

// ValidatePolicies checks that every policy has a unique non-empty ID, a
// positive finite premium and a known status.
func (c *Customer) ValidatePolicies() error {
	seen := make(map[string]struct{}, len(c.Policies))
	for _, p := range c.Policies {
		if strings.TrimSpace(p.ID) == "" {
			return errors.New("policy without id")
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate policy id %s", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Premium <= 0 || math.IsNaN(p.Premium) || math.IsInf(p.Premium, 0) {
			return fmt.Errorf("policy %s has invalid premium %v", p.ID, p.Premium)
		}
		if st, ok := ParsePolicyStatus(string(p.Status)); !ok || st != p.Status {
			return fmt.Errorf("policy %s has unknown status %q", p.ID, p.Status)
		}
	}
	return nil
}
