package interfaces

import (
	"context"

	"mecanica_gestao/internal/domain/entities"
)

// IAuditLogRepository is the append-only audit table. Entries are never updated or deleted.
type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditLogEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.AuditLogEntry, error)
}

// IAuditLogger records an action without blocking or failing the caller.
type IAuditLogger interface {
	Log(userID string, action string, details any)
}
