package cli

import (
	"context"
	"strconv"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// ── Agent ─────────────────────────────────────────────────────────────────────

func (a *App) listCustomers(ctx context.Context, user *domain.User) error {
	customers, err := a.svc.Staff.ListCustomers(ctx, user)
	if err != nil {
		return err
	}
	a.out.Header("Customers")
	if len(customers) == 0 {
		a.out.Info("No customers found.")
		return nil
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.Email, c.Name, c.ContactNumber, strconv.Itoa(c.CreditScore),
			strconv.Itoa(len(c.Policies)), formatMoney(c.CalculateTotalPremium()),
		})
	}
	a.out.Table([]string{"Email", "Name", "Contact", "Credit Score", "Policies", "Total Premium"}, rows)
	return nil
}

func (a *App) sellPolicy(ctx context.Context, user *domain.User) error {
	a.out.Header("Sell Policy")
	email, err := a.in.Line("Customer email")
	if err != nil {
		return err
	}
	in, err := a.readPolicyInput()
	if err != nil {
		return err
	}
	p, err := a.svc.Staff.SellPolicy(ctx, user, email, in)
	if err != nil {
		return err
	}
	a.out.Success("Policy %s sold and sent to underwriting.", p.ID)
	return nil
}

func (a *App) customerPolicies(ctx context.Context, user *domain.User) error {
	email, err := a.in.Line("Customer email")
	if err != nil {
		return err
	}
	policies, err := a.svc.Staff.CustomerPolicies(ctx, user, email)
	if err != nil {
		return err
	}
	a.out.Header("Customer Policies")
	a.showPolicies(policies)
	return nil
}

// ── Underwriter ───────────────────────────────────────────────────────────────

func (a *App) pendingPolicies(ctx context.Context, user *domain.User) error {
	pending, err := a.svc.Staff.PendingPolicies(ctx, user)
	if err != nil {
		return err
	}
	a.out.Header("Pending Policies")
	if len(pending) == 0 {
		a.out.Info("No policies awaiting review.")
		return nil
	}
	rows := make([][]string, 0, len(pending))
	for _, p := range pending {
		rows = append(rows, []string{
			p.CustomerEmail, strconv.Itoa(p.CreditScore), p.Policy.ID, p.Policy.Type,
			formatMoney(p.Policy.Premium), formatMoney(domain.QuotePremium(p.Policy.Type, p.CreditScore)),
		})
	}
	a.out.Table([]string{"Customer", "Credit Score", "Policy ID", "Type", "Premium", "Quote"}, rows)
	return nil
}

func (a *App) quotePremium(ctx context.Context, user *domain.User) error {
	email, err := a.in.Line("Customer email")
	if err != nil {
		return err
	}
	policyType, err := a.in.Line("Policy type")
	if err != nil {
		return err
	}
	quote, err := a.svc.Staff.QuotePremium(ctx, user, email, policyType)
	if err != nil {
		return err
	}
	a.out.Info("Quoted premium: %s", formatMoney(quote))
	return nil
}

func (a *App) approvePolicy(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter policy ID")
	if err != nil {
		return err
	}
	if _, err := a.svc.Staff.ApprovePolicy(ctx, user, id); err != nil {
		return err
	}
	a.out.Success("Policy approved.")
	return nil
}

func (a *App) declinePolicy(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter policy ID")
	if err != nil {
		return err
	}
	if _, err := a.svc.Staff.DeclinePolicy(ctx, user, id); err != nil {
		return err
	}
	a.out.Success("Policy declined.")
	return nil
}

// ── Claim adjuster ────────────────────────────────────────────────────────────

func (a *App) submittedClaims(ctx context.Context, user *domain.User) error {
	claims, err := a.svc.Staff.SubmittedClaims(ctx, user)
	if err != nil {
		return err
	}
	a.out.Header("Submitted Claims")
	if len(claims) == 0 {
		a.out.Info("No claims awaiting review.")
		return nil
	}
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, []string{c.ID, c.CustomerEmail, c.PolicyID, formatMoney(c.Amount), c.Description})
	}
	a.out.Table([]string{"Claim ID", "Customer", "Policy ID", "Amount", "Description"}, rows)
	return nil
}

func (a *App) verifyClaim(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter claim ID")
	if err != nil {
		return err
	}
	if _, err := a.svc.Staff.VerifyClaim(ctx, user, id); err != nil {
		return err
	}
	a.out.Success("Claim verified successfully!")
	return nil
}

func (a *App) rejectClaim(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter claim ID")
	if err != nil {
		return err
	}
	if _, err := a.svc.Staff.RejectClaim(ctx, user, id); err != nil {
		return err
	}
	a.out.Success("Claim rejected.")
	return nil
}
