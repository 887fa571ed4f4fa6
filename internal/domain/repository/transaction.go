package repository

import "context"

// TransactionManager runs use case steps atomically. fn may be run more than
// once when the database aborts it on a conflict, so it must not have effects
// outside the repositories it is given.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProfileRepository() ProfileRepository
	NewActivityRepository() ActivityRepository
}
