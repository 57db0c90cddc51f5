package ports

import (
	"context"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
