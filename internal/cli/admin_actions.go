package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

func (a *App) createAdminAccount(ctx context.Context, user *domain.User) error {
	a.out.Header("Create Admin Account")
	var in ports.CreateAdminInput
	var err error
	if in.Email, err = a.in.Line("Enter admin email"); err != nil {
		return err
	}
	if in.Password, err = a.in.Line("Enter admin password"); err != nil {
		return err
	}
	if in.Name, err = a.in.Line("Enter name"); err != nil {
		return err
	}
	if in.Department, err = a.in.Line("Enter department"); err != nil {
		return err
	}
	if in.AccessLevel, err = a.in.Line("Enter access level"); err != nil {
		return err
	}

	admin, err := a.svc.Admin.CreateAdminAccount(ctx, user, in)
	if err != nil {
		return err
	}
	a.out.Success("Admin account %s created and configured successfully!", admin.Email)
	return nil
}

func (a *App) adminVerifyClaim(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter claim ID")
	if err != nil {
		return err
	}
	if _, err := a.svc.Admin.VerifyClaim(ctx, user, id); err != nil {
		return err
	}
	a.out.Success("Claim verified successfully!")
	return nil
}

func (a *App) managePolicy(ctx context.Context, user *domain.User) error {
	id, err := a.in.Line("Enter policy ID")
	if err != nil {
		return err
	}
	answer, err := a.in.Line("New status (active, declined, lapsed, cancelled)")
	if err != nil {
		return err
	}
	status, ok := domain.ParsePolicyStatus(answer)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, answer)
	}

	p, err := a.svc.Admin.ManagePolicy(ctx, user, id, status)
	if err != nil {
		return err
	}
	a.out.Success("Policy %s is now %s.", p.ID, p.Status)
	return nil
}

func (a *App) generateReport(ctx context.Context, user *domain.User) error {
	report, err := a.svc.Admin.GenerateReport(ctx, user)
	if err != nil {
		return err
	}
	a.out.Header("Admin Report")
	rows := report.Rows()
	kv := make([][2]string, 0, len(rows))
	for _, r := range rows {
		kv = append(kv, [2]string{r.Key, r.Value})
	}
	a.out.KeyValues(kv)
	return nil
}

func (a *App) auditUserActions(ctx context.Context, user *domain.User) error {
	email, err := a.in.Line("Enter user email")
	if err != nil {
		return err
	}
	entries, err := a.svc.Admin.AuditUserActions(ctx, user, email)
	if err != nil {
		return err
	}

	a.out.Header("User Actions")
	if len(entries) == 0 {
		a.out.Info("No actions found.")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.At.Format(time.RFC3339), e.Action, e.Detail})
	}
	a.out.Table([]string{"Time", "Action", "Detail"}, rows)
	return nil
}

func (a *App) listUsers(ctx context.Context, user *domain.User) error {
	users, err := a.svc.Admin.ListUsers(ctx, user)
	if err != nil {
		return err
	}
	a.out.Header("Users")
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Email, u.Role.String(), u.CreatedAt.Format("2006-01-02")})
	}
	a.out.Table([]string{"Email", "Role", "Created"}, rows)
	return nil
}
