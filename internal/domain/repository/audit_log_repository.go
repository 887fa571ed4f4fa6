package repository

import (
	"context"

	"matchdeportivo/internal/domain/entity"
)

// AuditLogRepository stores the append-only audit trail.
type AuditLogRepository interface {
	// Create appends an entry.
	Create(ctx context.Context, log *entity.AuditLog) error

	// FindRecent lists entries newest first.
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
}
