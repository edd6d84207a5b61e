package domain

import (
	"math"
	"strings"
)

// PolicyStatus represents the lifecycle state of a policy.
type PolicyStatus string

const (
	PolicyPending   PolicyStatus = "pending"
	PolicyActive    PolicyStatus = "active"
	PolicyDeclined  PolicyStatus = "declined"
	PolicyLapsed    PolicyStatus = "lapsed"
	PolicyCancelled PolicyStatus = "cancelled"
)

// validPolicyTransitions defines the allowed state machine transitions.
var validPolicyTransitions = map[PolicyStatus][]PolicyStatus{
	PolicyPending: {PolicyActive, PolicyDeclined},
	PolicyActive:  {PolicyLapsed, PolicyCancelled},
	PolicyLapsed:  {PolicyActive, PolicyCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s PolicyStatus) CanTransitionTo(next PolicyStatus) bool {
	for _, allowed := range validPolicyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParsePolicyStatus maps user input onto a known status.
func ParsePolicyStatus(s string) (PolicyStatus, bool) {
	st := PolicyStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case PolicyPending, PolicyActive, PolicyDeclined, PolicyLapsed, PolicyCancelled:
		return st, true
	}
	return "", false
}

// Policy is a single insured item owned by exactly one customer.
type Policy struct {
	ID      string       `json:"policy_id" bson:"policy_id"`
	Type    string       `json:"policy_type" bson:"policy_type"`
	Premium float64      `json:"premium" bson:"premium"`
	Status  PolicyStatus `json:"status" bson:"status"`
}

// baseRates holds the yearly base premium per policy type.
var baseRates = map[string]float64{
	"auto":   500,
	"home":   800,
	"life":   300,
	"health": 400,
	"travel": 120,
}

const defaultBaseRate = 600

// PolicyTypes returns the policy types with a known base rate, sorted.
func PolicyTypes() []string {
	return []string{"auto", "health", "home", "life", "travel"}
}

// QuotePremium prices a policy of the given type for a customer with the
// given credit score. Unknown types use defaultBaseRate.
func QuotePremium(policyType string, creditScore int) float64 {
	base, ok := baseRates[strings.ToLower(strings.TrimSpace(policyType))]
	if !ok {
		base = defaultBaseRate
	}
	return math.Round(base*creditFactor(creditScore)*100) / 100
}

func creditFactor(score int) float64 {
	switch {
	case score >= 750:
		return 0.85
	case score >= 650:
		return 1.0
	case score >= 550:
		return 1.2
	case score > 0:
		return 1.5
	default:
		// no score on file
		return 1.25
	}
}
