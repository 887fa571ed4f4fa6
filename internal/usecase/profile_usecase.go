package usecase

import (
	"context"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Nickname       *string
	Icon           *string
	PreferredSport *string
	Level          *entity.Level
	Schedule       *string
	LocationLabel  *string
	Latitude       *float64 // Must be given together with Longitude.
	Longitude      *float64
	ClearLocation  bool // Removes the saved location. Ignored when coordinates are given.
	RadiusKm       *int // 1-50.
	ClearRadius    bool // Removes the radius, opting out of nearby notifications.
}

// PublicProfile is what other players see of an account. The home location
// and search radius stay private.
type PublicProfile struct {
	UserID         uuid.UUID
	Username       string
	Name           string
	HasProfile     bool
	Nickname       string
	Icon           string
	PreferredSport string
	Level          entity.Level
	Schedule       string
}

// ProfileUsecase defines the interface for profile management.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
