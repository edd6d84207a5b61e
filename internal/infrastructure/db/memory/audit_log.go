package memory

import (
	"context"
	"sync"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// AuditLog is an append-only, in-process audit trail.
type AuditLog struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (l *AuditLog) Record(_ context.Context, entry domain.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// ListByActor returns the actor's entries in the order they were recorded.
func (l *AuditLog) ListByActor(_ context.Context, actor string) ([]domain.AuditEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.AuditEntry
	for _, e := range l.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out, nil
}
