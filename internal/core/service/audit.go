package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
)

// recordAudit appends to the audit trail. Failures are logged, never returned.
func recordAudit(ctx context.Context, audit ports.AuditLog, log zerolog.Logger, actor, action, detail string) {
	if audit == nil {
		return
	}
	entry := domain.AuditEntry{Actor: actor, Action: action, Detail: detail, At: time.Now().UTC()}
	if err := audit.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Str("actor", actor).Str("action", action).Msg("failed to record audit entry")
	}
}
