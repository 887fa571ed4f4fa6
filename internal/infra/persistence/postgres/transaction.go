// Package postgres implements the domain repositories on PostgreSQL through GORM.
package postgres

import (
	"context"

	"matchdeportivo/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxTxAttempts bounds reruns of a transaction that lost a serialization
// conflict or deadlock. The rolled back body is safe to run again.
const maxTxAttempts = 3

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) NewActivityRepository() repository.ActivityRepository {
	return NewActivityRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, including on panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&gormRepositoryFactory{tx: tx})
		})
		if err == nil || !isTransientTxError(err) || ctx.Err() != nil {
			break
		}
	}

	if isTransientTxError(err) {
		return errors.Wrapf(err, "transaction failed after %d attempts", maxTxAttempts)
	}

	return err
}
