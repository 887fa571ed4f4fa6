package usecase

import (
	"context"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditUsecase records and reads the audit trail.
type AuditUsecase interface {
	// Record appends an entry. Failures are logged and swallowed.
	Record(ctx context.Context, userID *uuid.UUID, action entity.AuditAction, detail string)

	ListLogs(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
}
