package postgres

import (
	"context"
	"strings"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile for an existing user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile of a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// Update overwrites the mutable profile fields. Absent coordinates and radius are written as NULL.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Select("nickname", "icon", "preferred_sport", "level", "schedule",
			"location_label", "latitude", "longitude", "radius_km", "updated_at").
		Updates(profileM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRadius
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindBySport returns profiles preferring sport, ignoring case, other than excludeUserID.
func (repo *profileRepository) FindBySport(ctx context.Context, sport string, excludeUserID uuid.UUID) ([]*entity.Profile, error) {
	sport = strings.TrimSpace(sport)
	if sport == "" {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(preferred_sport) = LOWER(?) AND user_id <> ?", sport, excludeUserID).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by sport")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:         data.UserID,
		Nickname:       data.Nickname,
		Icon:           data.Icon,
		PreferredSport: data.PreferredSport,
		Level:          entity.Level(data.Level),
		Schedule:       data.Schedule,
		LocationLabel:  data.LocationLabel,
		Location:       geo.GeoPoint{Latitude: data.Latitude, Longitude: data.Longitude},
		RadiusKm:       data.RadiusKm,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:         data.UserID,
		Nickname:       data.Nickname,
		Icon:           data.Icon,
		PreferredSport: data.PreferredSport,
		Level:          string(data.Level),
		Schedule:       data.Schedule,
		LocationLabel:  data.LocationLabel,
		Latitude:       data.Location.Latitude,
		Longitude:      data.Location.Longitude,
		RadiusKm:       data.RadiusKm,
		UpdatedAt:      data.UpdatedAt,
	}
}
