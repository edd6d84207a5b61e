package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (r *CustomerRepository) Get(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c.Clone(), nil
}

func (r *CustomerRepository) Save(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.Email] = customer.Clone()
	return nil
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *CustomerRepository) FindByPolicyID(_ context.Context, policyID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emails := make([]string, 0, len(r.customers))
	for email := range r.customers {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	for _, email := range emails {
		c := r.customers[email]
		if _, err := c.FindPolicy(policyID); err == nil {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrPolicyNotFound
}

// AdminRepository stores admin profiles.
type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]domain.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: make(map[string]domain.Admin)}
}

func (r *AdminRepository) Save(_ context.Context, admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.Email] = *admin
	return nil
}

func (r *AdminRepository) Get(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &a, nil
}
