package service

import (
	"fmt"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// authorize enforces role-based access control for service operations.
func authorize(actor *domain.User, allowed ...domain.Role) error {
	if actor == nil {
		return domain.ErrNotAuthenticated
	}
	if !actor.HasRole(allowed...) {
		return fmt.Errorf("%w: role %s", domain.ErrForbidden, actor.Role)
	}
	return nil
}
