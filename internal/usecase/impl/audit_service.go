package impl

import (
	"context"
	"log/slog"
	"time"

	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type auditService struct {
	auditRepo repository.AuditLogRepository
	logger    *slog.Logger
}

// NewAuditService creates a new audit service instance
func NewAuditService(auditRepo repository.AuditLogRepository, logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends an audit entry. The action being audited already happened,
// so a failed write is only logged.
func (s *auditService) Record(ctx context.Context, userID *uuid.UUID, action entity.AuditAction, detail string) {
	entry := &entity.AuditLog{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit log",
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

// ListLogs returns the most recent audit entries
func (s *auditService) ListLogs(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	limit, offset = pageBounds(limit, offset)

	logs, err := s.auditRepo.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return logs, nil
}
