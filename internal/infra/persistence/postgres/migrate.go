package postgres

import (
	"context"
	"log/slog"

	"matchdeportivo/config"
	"matchdeportivo/internal/errors"
	"matchdeportivo/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema from the persistence models. It is a
// no-op unless database.autoMigrate is enabled.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Database.AutoMigrate {
		return nil
	}

	if err := AutoMigrate(db.WithContext(ctx)); err != nil {
		return err
	}

	logger.Info("Database schema migrated")

	return nil
}

// AutoMigrate runs GORM auto-migration for every model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
