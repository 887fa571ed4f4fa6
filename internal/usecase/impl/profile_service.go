// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the sports profile of a user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.logger.Debug("Getting profile", "userID", userID)

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// GetPublicProfile returns the card other players see for userID. An account
// without a profile row still has a card, with HasProfile false.
func (srv *profileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*usecase.PublicProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	card := &usecase.PublicProfile{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
	if profile := user.Profile; profile != nil {
		card.HasProfile = true
		card.Nickname = profile.Nickname
		card.Icon = profile.Icon
		card.PreferredSport = profile.PreferredSport
		card.Level = profile.Level
		card.Schedule = profile.Schedule
	}

	return card, nil
}

// UpdateProfile applies a partial update to the user's profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.logger.Info("Updating profile", "userID", userID)

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if err := applyProfileUpdate(profile, input); err != nil {
			return err
		}
		profile.UpdatedAt = time.Now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) error {
	if input.Nickname != nil {
		profile.Nickname = strings.TrimSpace(*input.Nickname)
	}
	if input.Icon != nil {
		profile.Icon = strings.TrimSpace(*input.Icon)
	}
	if input.PreferredSport != nil {
		// empty clears the preference and stops nearby notifications
		profile.PreferredSport = ""
		if strings.TrimSpace(*input.PreferredSport) != "" {
			sport, ok := entity.NormalizeSport(*input.PreferredSport)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("deporte desconocido: " + *input.PreferredSport)
			}
			profile.PreferredSport = sport
		}
	}
	if input.Level != nil {
		profile.Level = ""
		if strings.TrimSpace(string(*input.Level)) != "" {
			level, ok := entity.ParseLevel(string(*input.Level))
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("nivel desconocido: " + string(*input.Level))
			}
			profile.Level = level
		}
	}
	if input.Schedule != nil {
		profile.Schedule = strings.TrimSpace(*input.Schedule)
	}
	if input.LocationLabel != nil {
		profile.LocationLabel = strings.TrimSpace(*input.LocationLabel)
	}

	switch {
	case (input.Latitude == nil) != (input.Longitude == nil):
		return domainerrors.ErrInvalidLocation
	case input.Latitude != nil:
		location := geo.NewGeoPoint(*input.Latitude, *input.Longitude)
		if _, err := location.Point(); err != nil {
			return errors.Wrap(domainerrors.ErrInvalidLocation, err.Error())
		}
		profile.Location = location
	case input.ClearLocation:
		profile.Location = geo.GeoPoint{}
	}

	switch {
	case input.RadiusKm != nil:
		radius := *input.RadiusKm
		if radius < constants.MinSearchRadiusKm || radius > constants.MaxSearchRadiusKm {
			return domainerrors.ErrInvalidRadius
		}
		profile.RadiusKm = &radius
	case input.ClearRadius:
		profile.RadiusKm = nil
	}

	return nil
}
