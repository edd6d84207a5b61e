package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// CreateAdminInput carries the details of a new admin account.
type CreateAdminInput struct {
	Email       string
	Password    string
	Name        string
	Department  string
	AccessLevel string
}

// AdminService implements the admin menu. Every call takes the acting user
// so the service can enforce the admin role.
type AdminService interface {
	CreateAdminAccount(ctx context.Context, actor *domain.User, input CreateAdminInput) (*domain.Admin, error)
	AdminProfile(ctx context.Context, actor *domain.User) (*domain.Admin, error)
	VerifyClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error)
	ManagePolicy(ctx context.Context, actor *domain.User, policyID string, status domain.PolicyStatus) (*domain.Policy, error)
	GenerateReport(ctx context.Context, actor *domain.User) (*domain.Report, error)
	AuditUserActions(ctx context.Context, actor *domain.User, email string) ([]domain.AuditEntry, error)
	ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error)
}
