package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/99minutos/insurance-system/internal/core/ports"
)

func portsPolicy(policyType string, premium float64) ports.NewPolicyInput {
	return ports.NewPolicyInput{Type: policyType, Premium: premium}
}

func portsClaim(policyID string, amount float64) ports.NewClaimInput {
	return ports.NewClaimInput{PolicyID: policyID, Amount: amount, Description: "test"}
}

func mustFirstPolicy(t *testing.T, h *harness, email string) string {
	t.Helper()
	policies, err := h.svc.Customers.ListPolicies(context.Background(), email)
	require.NoError(t, err)
	require.NotEmpty(t, policies)
	return policies[0].ID
}
