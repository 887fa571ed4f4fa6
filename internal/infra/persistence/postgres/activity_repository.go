package postgres

import (
	"context"
	"strings"
	"time"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

var errActivityRejected = domainerrors.ErrInvalidActivity.WithDetails("la actividad tiene datos fuera de rango")

// Create persists a new activity with an empty roster.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Omit("Participants").Create(activityM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(errActivityRejected, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// FindByID retrieves an activity with its participant IDs.
func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants", participantOrder).
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by ID")
	}

	return toActivityDomain(&activityM), nil
}

// FindByIDForUpdate locks the activity row with SELECT ... FOR UPDATE, then
// loads the roster. Concurrent joins on the same activity queue on the lock.
func (repo *activityRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to lock activity")
	}

	if err := participantOrder(repo.db.WithContext(ctx)).
		Where("activity_id = ?", id).
		Find(&activityM.Participants).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load participants")
	}

	return toActivityDomain(&activityM), nil
}

// FindAll lists activities newest first, optionally narrowed to one sport.
func (repo *activityRepository) FindAll(ctx context.Context, filter entity.ActivityFilter) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Preload("Participants", participantOrder)

	if sport := strings.TrimSpace(filter.Sport); sport != "" {
		query = query.Where("LOWER(sport) = LOWER(?)", sport)
	}

	var activityModels []*model.ActivityModel
	if err := query.Order("created_at DESC").Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return toActivitiesDomain(activityModels), nil
}

// FindByOrganizer lists the activities userID organizes.
func (repo *activityRepository) FindByOrganizer(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants", participantOrder).
		Where("organizer_id = ?", userID).
		Order("date ASC, start_time ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activities by organizer")
	}

	return toActivitiesDomain(activityModels), nil
}

// FindJoinedBy lists the activities userID joined without organizing them.
func (repo *activityRepository) FindJoinedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants", participantOrder).
		Joins("JOIN activity_participants ap ON ap.activity_id = activities.id").
		Where("ap.user_id = ? AND activities.organizer_id <> ?", userID, userID).
		Order("activities.date ASC, activities.start_time ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find joined activities")
	}

	return toActivitiesDomain(activityModels), nil
}

// Update overwrites the editable fields, capacity and slots included.
func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Select("title", "sport", "description", "place", "latitude", "longitude", "date",
			"start_time", "end_time", "level", "capacity", "slots", "updated_at").
		Updates(activityM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrCapacityBelowParticipants
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// Delete removes an activity and its roster.
func (repo *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&model.ActivityParticipantModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete participants")
		}

		result := tx.Where("id = ?", id).Delete(&model.ActivityModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete activity")
		}
		if result.RowsAffected == 0 {
			return repository.ErrActivityNotFound
		}

		return nil
	})
}

// AddParticipant inserts a roster row.
func (repo *activityRepository) AddParticipant(ctx context.Context, activityID, userID uuid.UUID) error {
	participant := &model.ActivityParticipantModel{
		ActivityID: activityID,
		UserID:     userID,
		JoinedAt:   time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(participant).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return errors.Wrap(err, "failed to add participant")
	}

	return nil
}

// RemoveParticipant deletes a roster row.
func (repo *activityRepository) RemoveParticipant(ctx context.Context, activityID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Delete(&model.ActivityParticipantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove participant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// TakeSlot decrements slots with a conditional UPDATE, so the row never goes below zero.
func (repo *activityRepository) TakeSlot(ctx context.Context, activityID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ? AND slots > 0", activityID).
		UpdateColumn("slots", gorm.Expr("slots - 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to take slot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoSlotsLeft
	}

	return nil
}

// ReleaseSlot increments slots with a conditional UPDATE, so the row never exceeds capacity.
func (repo *activityRepository) ReleaseSlot(ctx context.Context, activityID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ? AND slots < capacity", activityID).
		UpdateColumn("slots", gorm.Expr("slots + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release slot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSlotsAtCapacity
	}

	return nil
}

func participantOrder(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC")
}

// --- Mapper Functions ---

func toActivitiesDomain(models []*model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(models))
	for _, activityM := range models {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities
}

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	participantIDs := make([]uuid.UUID, 0, len(data.Participants))
	for _, participant := range data.Participants {
		participantIDs = append(participantIDs, participant.UserID)
	}

	return &entity.Activity{
		ID:             data.ID,
		OrganizerID:    data.OrganizerID,
		Title:          data.Title,
		Sport:          data.Sport,
		Description:    data.Description,
		Place:          data.Place,
		Location:       geo.GeoPoint{Latitude: data.Latitude, Longitude: data.Longitude},
		Date:           data.Date,
		StartTime:      data.StartTime,
		EndTime:        data.EndTime,
		Level:          entity.Level(data.Level),
		Capacity:       data.Capacity,
		Slots:          data.Slots,
		ParticipantIDs: participantIDs,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
// The roster is managed through AddParticipant and RemoveParticipant only.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:          data.ID,
		OrganizerID: data.OrganizerID,
		Title:       data.Title,
		Sport:       data.Sport,
		Description: data.Description,
		Place:       data.Place,
		Latitude:    data.Location.Latitude,
		Longitude:   data.Location.Longitude,
		Date:        data.Date,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Level:       string(data.Level),
		Capacity:    data.Capacity,
		Slots:       data.Slots,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
