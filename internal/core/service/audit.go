package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// AuditRecorder writes one entry per mutating admin action. A failed write is
// logged and swallowed: auditing is best-effort observability, not a
// transactional guarantee.
type AuditRecorder struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditRecorder(repo ports.AuditRepository, logger zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, logger: logger}
}

func (r *AuditRecorder) Record(ctx context.Context, actor domain.AdminPrincipal, action, entityType, entityID string) {
	entry := &domain.AuditLogEntry{
		AdminID:    actor.ID,
		AdminName:  actor.FullName,
		AdminEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.repo.Insert(ctx, entry); err != nil {
		r.logger.Warn().Err(err).
			Str("admin_id", actor.ID).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to write audit entry")
	}
}
