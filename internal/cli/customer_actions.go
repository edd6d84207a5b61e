package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

var policyHeaders = []string{"Policy ID", "Type", "Premium", "Status"}

func policyRows(policies []domain.Policy) [][]string {
	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{p.ID, p.Type, formatMoney(p.Premium), string(p.Status)})
	}
	return rows
}

func (a *App) showPolicies(policies []domain.Policy) {
	if len(policies) == 0 {
		a.out.Info("No policies found.")
		return
	}
	a.out.Table(policyHeaders, policyRows(policies))
}

func (a *App) viewPolicies(ctx context.Context, user *domain.User) error {
	policies, err := a.svc.Customers.ListPolicies(ctx, user.Email)
	if err != nil {
		return err
	}
	a.out.Header("Your Policies")
	a.showPolicies(policies)
	return nil
}

// readPolicyInput prompts for a policy type and premium.
func (a *App) readPolicyInput() (ports.NewPolicyInput, error) {
	var in ports.NewPolicyInput
	a.out.Print("%s", a.out.Dim("Known types: " + strings.Join(domain.PolicyTypes(), ", ")))
	t, err := a.in.Line("Policy type")
	if err != nil {
		return in, err
	}
	premium, err := a.in.Float("Premium")
	if err != nil {
		return in, err
	}
	in.Type, in.Premium = t, premium
	return in, nil
}

func (a *App) addPolicy(ctx context.Context, user *domain.User) error {
	a.out.Header("Add Policy")
	in, err := a.readPolicyInput()
	if err != nil {
		return err
	}
	p, err := a.svc.Customers.AddPolicy(ctx, user.Email, in)
	if err != nil {
		return err
	}
	a.out.Success("Policy %s added and awaiting underwriting.", p.ID)
	return nil
}

func (a *App) removePolicy(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter policy ID")
	if err != nil {
		return err
	}
	if err := a.svc.Customers.RemovePolicy(ctx, user.Email, id); err != nil {
		return err
	}
	a.out.Success("Policy removed successfully!")
	return nil
}

func (a *App) fileClaim(ctx context.Context, user *domain.User) error {
	a.out.Header("File Claim")
	var in ports.NewClaimInput
	var err error
	if in.PolicyID, err = a.in.Line("Policy ID"); err != nil {
		return err
	}
	if in.Amount, err = a.in.Float("Amount"); err != nil {
		return err
	}
	if in.Description, err = a.in.Line("Description"); err != nil {
		return err
	}

	claim, err := a.svc.Customers.FileClaim(ctx, user.Email, in)
	if err != nil {
		return err
	}
	a.out.Success("Claim %s submitted.", claim.ID)
	return nil
}

var claimHeaders = []string{"Claim ID", "Policy ID", "Amount", "Status", "Reviewed By"}

func claimRows(claims []*domain.Claim) [][]string {
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, []string{c.ID, c.PolicyID, formatMoney(c.Amount), string(c.Status), c.ReviewedBy})
	}
	return rows
}

func (a *App) viewClaims(ctx context.Context, user *domain.User) error {
	claims, err := a.svc.Customers.ListClaims(ctx, user.Email)
	if err != nil {
		return err
	}
	a.out.Header("Your Claims")
	if len(claims) == 0 {
		a.out.Info("No claims found.")
		return nil
	}
	a.out.Table(claimHeaders, claimRows(claims))
	return nil
}

func (a *App) totalPremium(ctx context.Context, user *domain.User) error {
	total, err := a.svc.Customers.TotalPremium(ctx, user.Email)
	if err != nil {
		return err
	}
	a.out.Info("Total Premium: %s", formatMoney(total))
	return nil
}

func (a *App) saveData(ctx context.Context, user *domain.User) error {
	if err := a.svc.Customers.SaveSnapshot(ctx, user.Email); err != nil {
		a.log.Error().Err(err).Str("email", user.Email).Msg("save data failed")
		a.out.Error("Failed to save data.")
		return nil
	}
	a.out.Success("Data saved successfully!")
	return nil
}

func (a *App) loadData(ctx context.Context, user *domain.User) error {
	c, err := a.svc.Customers.LoadSnapshot(ctx, user.Email)
	if errors.Is(err, domain.ErrForbidden) {
		a.out.Error("The saved data belongs to another customer.")
		return nil
	}
	if err != nil {
		return err
	}
	a.out.Success("Data loaded successfully!")
	a.out.Info("Total Premium: %s", formatMoney(c.CalculateTotalPremium()))
	return nil
}
