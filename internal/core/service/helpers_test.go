package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/infrastructure/db/memory"
)

// stubSnapshotStore keeps one snapshot in memory and can be told to fail.
type stubSnapshotStore struct {
	saved   *domain.Customer
	saveErr error
	loadErr error
}

func (s *stubSnapshotStore) Save(_ context.Context, c *domain.Customer) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = c.Clone()
	return nil
}

func (s *stubSnapshotStore) Load(_ context.Context) (*domain.Customer, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.saved == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return s.saved.Clone(), nil
}

// fixture wires every service over fresh in-memory stores.
type fixture struct {
	users     *memory.UserRepository
	sessions  *memory.SessionStore
	customers *memory.CustomerRepository
	admins    *memory.AdminRepository
	claims    *memory.ClaimRepository
	audit     *memory.AuditLog
	snapshots *stubSnapshotStore

	auth     *AuthService
	customer *CustomerService
	admin    *AdminService
	staff    *StaffService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:     memory.NewUserRepository(),
		sessions:  memory.NewSessionStore(),
		customers: memory.NewCustomerRepository(),
		admins:    memory.NewAdminRepository(),
		claims:    memory.NewClaimRepository(),
		audit:     memory.NewAuditLog(),
		snapshots: &stubSnapshotStore{},
	}
	log := zerolog.Nop()
	f.auth = NewAuthService(f.users, f.sessions, f.audit, "secret", 0, log)
	f.customer = NewCustomerService(f.customers, f.claims, f.snapshots, f.audit, log)
	f.admin = NewAdminService(f.auth, f.users, f.admins, f.customers, f.claims, f.audit, log)
	f.staff = NewStaffService(f.users, f.customers, f.claims, f.audit, log)
	return f
}

// mustUser registers email with role and returns the stored user.
func (f *fixture) mustUser(t *testing.T, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), email, "password1", role)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return u
}

func (f *fixture) seedPolicy(t *testing.T, email string, status domain.PolicyStatus, premium float64) domain.Policy {
	t.Helper()
	ctx := context.Background()
	c, err := f.customer.Profile(ctx, email)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	p := domain.Policy{ID: uuid.NewString(), Type: "auto", Premium: premium, Status: status}
	c.AddPolicy(p)
	if err := f.customers.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	return p
}
