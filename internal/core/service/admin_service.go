package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

// AdminService implements the admin management menu.
type AdminService struct {
	auth      ports.AuthService
	users     ports.AuthRepository
	admins    ports.AdminRepository
	customers ports.CustomerRepository
	claims    ports.ClaimRepository
	audit     ports.AuditLog
	log       zerolog.Logger
}

func NewAdminService(
	auth ports.AuthService,
	users ports.AuthRepository,
	admins ports.AdminRepository,
	customers ports.CustomerRepository,
	claims ports.ClaimRepository,
	audit ports.AuditLog,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		auth:      auth,
		users:     users,
		admins:    admins,
		customers: customers,
		claims:    claims,
		audit:     audit,
		log:       log,
	}
}

// CreateAdminAccount registers a new admin user and stores its profile.
func (s *AdminService) CreateAdminAccount(ctx context.Context, actor *domain.User, in ports.CreateAdminInput) (*domain.Admin, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.auth.Register(ctx, in.Email, in.Password, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		UserID:      user.ID,
		Name:        strings.TrimSpace(in.Name),
		Email:       user.Email,
		AccessLevel: strings.TrimSpace(in.AccessLevel),
		Department:  strings.TrimSpace(in.Department),
		CreatedAt:   time.Now().UTC(),
	}
	if admin.Name == "" {
		admin.Name = domain.NewCustomer(user.Email).Name
	}
	if admin.AccessLevel == "" {
		admin.AccessLevel = domain.DefaultAccessLevel
	}
	if err := s.admins.Save(ctx, admin); err != nil {
		// the user exists from here on; View Profile reports the missing record
		s.log.Error().Err(err).
			Str("actor", actor.Email).
			Str("admin", admin.Email).
			Msg("admin user registered without admin profile")
		return nil, fmt.Errorf("create admin profile for %s: %w", admin.Email, err)
	}

	recordAudit(ctx, s.audit, s.log, actor.Email, domain.AuditCreateAdmin, "admin="+admin.Email)
	return admin, nil
}

// AdminProfile returns the admin record of the acting admin. Admins created
// through registration rather than Create Admin Account have none.
func (s *AdminService) AdminProfile(ctx context.Context, actor *domain.User) (*domain.Admin, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.admins.Get(ctx, actor.Email)
}

func (s *AdminService) VerifyClaim(ctx context.Context, actor *domain.User, claimID string) (*domain.Claim, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return reviewClaim(ctx, s.claims, s.audit, s.log, actor, claimID, domain.ClaimVerified)
}

// ManagePolicy sets the status of any customer's policy.
func (s *AdminService) ManagePolicy(ctx context.Context, actor *domain.User, policyID string, status domain.PolicyStatus) (*domain.Policy, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return transitionPolicy(ctx, s.customers, s.audit, s.log, actor, policyID, status)
}

func (s *AdminService) GenerateReport(ctx context.Context, actor *domain.User) (*domain.Report, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: list users: %w", err)
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: list customers: %w", err)
	}
	claims, err := s.claims.List(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("report: list claims: %w", err)
	}

	report := &domain.Report{
		GeneratedAt:    time.Now().UTC(),
		GeneratedBy:    actor.Email,
		UsersByRole:    make(map[domain.Role]int),
		TotalUsers:     len(users),
		TotalCustomers: len(customers),
		ClaimsByStatus: make(map[domain.ClaimStatus]int),
	}
	for _, u := range users {
		report.UsersByRole[u.Role]++
	}
	for _, c := range customers {
		report.TotalPolicies += len(c.Policies)
		report.TotalPremium += c.CalculateTotalPremium()
	}
	for _, c := range claims {
		report.ClaimsByStatus[c.Status]++
	}
	return report, nil
}

func (s *AdminService) AuditUserActions(ctx context.Context, actor *domain.User, email string) ([]domain.AuditEntry, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.audit.ListByActor(ctx, normalizeEmail(email))
}

func (s *AdminService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}
