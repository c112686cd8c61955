package ports

import (
	"context"

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

// AuditRepository persists and lists append-only audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLogEntry) error
	ListRecent(ctx context.Context, limit int64) ([]*domain.AuditLogEntry, error)
}

// AuditRecorder records one entry per mutating admin action. Recording is
// best-effort observability: failures are logged and swallowed, never
// propagated to the caller.
type AuditRecorder interface {
	Record(ctx context.Context, actor domain.AdminPrincipal, action, entityType, entityID string)
}
