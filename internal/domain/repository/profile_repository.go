package repository

import (
	"context"
	"errors"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence for player profiles.
type ProfileRepository interface {
	// Create persists a new profile for an existing user.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update overwrites the mutable profile fields.
	Update(ctx context.Context, profile *entity.Profile) error

	// FindBySport returns every profile whose preferred sport equals sport
	// ignoring case, excluding excludeUserID. Location and radius are not
	// checked here.
	FindBySport(ctx context.Context, sport string, excludeUserID uuid.UUID) ([]*entity.Profile, error)
}
