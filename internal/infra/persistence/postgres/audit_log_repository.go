package postgres

import (
	"context"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends an audit entry.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := &model.AuditLogModel{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    string(log.Action),
		Detail:    log.Detail,
		CreatedAt: log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindRecent lists audit entries newest first.
func (repo *auditLogRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	var logModels []*model.AuditLogModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.AuditLog{
			ID:        logM.ID,
			UserID:    logM.UserID,
			Action:    entity.AuditAction(logM.Action),
			Detail:    logM.Detail,
			CreatedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}
