// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by login handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity. ID and timestamps are filled in.
	Create(ctx context.Context, user *entity.User) error

	// List returns accounts oldest first with their profiles preloaded.
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
