package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

var profileMenu = []MenuItem{
	{"View Profile", "view_profile", (*App).viewProfile},
	{"Update Profile", "update_profile", (*App).updateProfile},
	{"Change Password", "change_password", (*App).changePassword},
}

// userProfile runs the profile sub-menu until the user goes back.
func (a *App) userProfile(ctx context.Context, user *domain.User) error {
	labels := make([]string, 0, len(profileMenu)+1)
	for _, it := range profileMenu {
		labels = append(labels, it.Label)
	}
	labels = append(labels, "Back")

	for {
		idx, err := a.choose("User Profile", labels)
		if err != nil {
			return err
		}
		if idx < 0 {
			continue
		}
		if idx == len(profileMenu) {
			return nil
		}

		if user, err = a.currentUser(ctx); err != nil {
			return err
		}
		if err := a.report(profileMenu[idx].Action(a, ctx, user)); err != nil {
			return err
		}
	}
}

func (a *App) viewProfile(ctx context.Context, user *domain.User) error {
	c, err := a.svc.Customers.Profile(ctx, user.Email)
	if err != nil {
		return err
	}
	rows := [][2]string{
		{"Email", user.Email},
		{"Role", user.Role.String()},
		{"Name", c.Name},
		{"Contact Number", c.ContactNumber},
		{"Address", c.Address},
		{"Credit Score", strconv.Itoa(c.CreditScore)},
		{"Member Since", user.CreatedAt.Format("2006-01-02")},
	}

	var missingAdmin bool
	if user.Role == domain.RoleAdmin {
		admin, err := a.svc.Admin.AdminProfile(ctx, user)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			missingAdmin = true
		case err != nil:
			return err
		default:
			rows = append(rows,
				[2]string{"Admin Name", admin.Name},
				[2]string{"Department", admin.Department},
				[2]string{"Access Level", admin.AccessLevel},
			)
		}
	}

	a.out.Header("Profile")
	a.out.KeyValues(rows)
	if missingAdmin {
		a.out.Warning("No admin record on file for %s.", user.Email)
	}
	return nil
}

func (a *App) updateProfile(ctx context.Context, user *domain.User) error {
	c, err := a.svc.Customers.Profile(ctx, user.Email)
	if err != nil {
		return err
	}

	a.out.Header("Update Profile")
	a.out.Print("%s", a.out.Dim("Leave a field blank to keep its current value."))
	var update ports.ProfileUpdate
	if update.Name, err = a.in.Optional("Name", c.Name); err != nil {
		return err
	}
	if update.ContactNumber, err = a.in.Optional("Contact number", c.ContactNumber); err != nil {
		return err
	}
	if update.Address, err = a.in.Optional("Address", c.Address); err != nil {
		return err
	}
	if update.CreditScore, err = a.in.OptionalInt("Credit score", c.CreditScore); err != nil {
		return err
	}

	if _, err := a.svc.Customers.UpdateProfile(ctx, user.Email, update); err != nil {
		return err
	}
	a.out.Success("Profile updated successfully!")
	return nil
}

func (a *App) changePassword(ctx context.Context, user *domain.User) error {
	a.out.Header("Change Password")
	current, err := a.in.Line("Current password")
	if err != nil {
		return err
	}
	next, err := a.in.Line("New password")
	if err != nil {
		return err
	}
	confirm, err := a.in.Line("Confirm new password")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	if err := a.svc.Auth.ChangePassword(ctx, user.Email, current, next); err != nil {
		return err
	}
	a.out.Success("Password changed successfully!")
	return nil
}
