package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

type ClaimRepository struct {
	mu     sync.RWMutex
	claims map[string]domain.Claim
}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{claims: make(map[string]domain.Claim)}
}

func (r *ClaimRepository) Create(_ context.Context, claim *domain.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[claim.ID] = *claim
	return nil
}

func (r *ClaimRepository) Get(_ context.Context, id string) (*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.claims[id]
	if !ok {
		return nil, domain.ErrClaimNotFound
	}
	return &c, nil
}

func (r *ClaimRepository) Update(_ context.Context, claim *domain.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.claims[claim.ID]; !ok {
		return domain.ErrClaimNotFound
	}
	r.claims[claim.ID] = *claim
	return nil
}

// List returns matching claims, oldest first.
func (r *ClaimRepository) List(_ context.Context, customerEmail string, status domain.ClaimStatus) ([]*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Claim
	for _, c := range r.claims {
		if customerEmail != "" && c.CustomerEmail != customerEmail {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
