package ports

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// SnapshotStore saves and loads a single customer snapshot.
type SnapshotStore interface {
	// Save writes the customer's fields and policies.
	Save(ctx context.Context, customer *domain.Customer) error
	// Load returns domain.ErrSnapshotNotFound when nothing was saved and
	// domain.ErrSnapshotCorrupt when the stored data cannot be decoded.
	Load(ctx context.Context) (*domain.Customer, error)
}
