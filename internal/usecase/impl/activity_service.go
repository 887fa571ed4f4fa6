package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "matchdeportivo/internal/delivery/context"
	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/proximity"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/domain/service"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const clockLayout = "15:04"

type activityService struct {
	txManager     repository.TransactionManager
	activityRepo  repository.ActivityRepository
	profileRepo   repository.ProfileRepository
	notifications usecase.NotificationUsecase
	audit         usecase.AuditUsecase
	qrCode        service.QRCodeService
	logger        *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ActivityRepo  repository.ActivityRepository
	ProfileRepo   repository.ProfileRepository
	Notifications usecase.NotificationUsecase
	Audit         usecase.AuditUsecase
	QRCode        service.QRCodeService
	Logger        *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:     params.TxManager,
		activityRepo:  params.ActivityRepo,
		profileRepo:   params.ProfileRepo,
		notifications: params.Notifications,
		audit:         params.Audit,
		qrCode:        params.QRCode,
		logger:        params.Logger,
	}
}

func (s *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListActivities returns the viewer's own activities followed by the ones
// within their search radius.
func (s *activityService) ListActivities(ctx context.Context, viewerID uuid.UUID, filter entity.ActivityFilter) (*proximity.Listing, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to load viewer profile")
		}
		profile = nil
	}

	filter.Sport = strings.TrimSpace(filter.Sport)
	candidates, err := s.activityRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	listing := proximity.FilterNearby(viewerID, profile, candidates)
	for _, id := range listing.Skipped {
		s.log(ctx).Warn("Skipping activity with unreadable location", slog.String("activity_id", id.String()))
	}
	if listing.Advisory == proximity.AdvisoryLocationInvalid {
		s.log(ctx).Warn("Viewer location unreadable, listing unfiltered", slog.String("user_id", viewerID.String()))
	}

	return &listing, nil
}

// GetActivity returns a single activity with its roster
func (s *activityService) GetActivity(ctx context.Context, activityID uuid.UUID) (*entity.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, mapActivityError(err, "failed to find activity")
	}

	return activity, nil
}

// CreateActivity stores a new activity and runs the nearby fan-out.
func (s *activityService) CreateActivity(ctx context.Context, organizerID uuid.UUID, input *usecase.CreateActivityInput) (*usecase.CreateActivityOutput, error) {
	sport, ok := entity.NormalizeSport(input.Sport)
	if !ok {
		return nil, domainerrors.ErrInvalidActivity.WithDetails("deporte desconocido: " + input.Sport)
	}

	level, ok := entity.ParseLevel(string(input.Level))
	if !ok {
		return nil, domainerrors.ErrInvalidActivity.WithDetails("nivel desconocido: " + string(input.Level))
	}

	location := geo.NewGeoPoint(input.Latitude, input.Longitude)
	if _, err := location.Point(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidLocation, err.Error())
	}

	now := time.Now()
	activity := &entity.Activity{
		ID:             uuid.New(),
		OrganizerID:    organizerID,
		Title:          strings.TrimSpace(input.Title),
		Sport:          sport,
		Description:    input.Description,
		Place:          strings.TrimSpace(input.Place),
		Location:       location,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Level:          level,
		Capacity:       input.Capacity,
		Slots:          input.Capacity,
		ParticipantIDs: []uuid.UUID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := validateActivity(activity); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.log(ctx).Error("Failed to create activity", slog.String("organizer_id", organizerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create activity")
	}

	s.log(ctx).Info("Activity created",
		slog.String("activity_id", activity.ID.String()),
		slog.String("sport", activity.Sport),
	)
	s.audit.Record(ctx, &organizerID, entity.AuditCreateActivity, activity.Title)

	report := s.notifications.NotifyNearbyUsers(ctx, activity)

	return &usecase.CreateActivityOutput{Activity: activity, FanOut: report}, nil
}

// UpdateActivity applies a partial update. Only the organizer may edit.
func (s *activityService) UpdateActivity(ctx context.Context, organizerID, activityID uuid.UUID, input *usecase.UpdateActivityInput) (*entity.Activity, error) {
	var updated *entity.Activity
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.NewActivityRepository()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			return mapActivityError(err, "failed to lock activity")
		}
		if !activity.IsOrganizer(organizerID) {
			return domainerrors.ErrNotOrganizer
		}

		if err := applyActivityUpdate(activity, input); err != nil {
			return err
		}
		activity.UpdatedAt = time.Now()

		if err := activityRepo.Update(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to update activity")
		}
		updated = activity

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute activity update transaction")
	}

	return updated, nil
}

// DeleteActivity removes an activity. Only the organizer may delete.
func (s *activityService) DeleteActivity(ctx context.Context, organizerID, activityID uuid.UUID) error {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return mapActivityError(err, "failed to find activity")
	}
	if !activity.IsOrganizer(organizerID) {
		return domainerrors.ErrNotOrganizer
	}

	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		return mapActivityError(err, "failed to delete activity")
	}

	s.log(ctx).Info("Activity deleted", slog.String("activity_id", activityID.String()))

	return nil
}

// ListMyActivities returns the activities the user organizes and, separately,
// the ones they joined as a participant.
func (s *activityService) ListMyActivities(ctx context.Context, userID uuid.UUID) (*usecase.MyActivities, error) {
	organized, err := s.activityRepo.FindByOrganizer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organized activities")
	}

	joined, err := s.activityRepo.FindJoinedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list joined activities")
	}

	onlyJoined := make([]*entity.Activity, 0, len(joined))
	for _, activity := range joined {
		if !activity.IsOrganizer(userID) {
			onlyJoined = append(onlyJoined, activity)
		}
	}

	return &usecase.MyActivities{Organized: organized, Joined: onlyJoined}, nil
}

// JoinActivity takes one slot for userID.
func (s *activityService) JoinActivity(ctx context.Context, userID, activityID uuid.UUID) (*entity.Activity, error) {
	var joined *entity.Activity
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.NewActivityRepository()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			return mapActivityError(err, "failed to lock activity")
		}
		if activity.HasParticipant(userID) {
			return domainerrors.ErrAlreadyParticipant
		}
		if activity.Slots <= 0 {
			return domainerrors.ErrActivityFull
		}

		if err := activityRepo.AddParticipant(ctx, activityID, userID); err != nil {
			return mapActivityError(err, "failed to add participant")
		}
		if err := activityRepo.TakeSlot(ctx, activityID); err != nil {
			return mapActivityError(err, "failed to take slot")
		}

		activity.Slots--
		activity.ParticipantIDs = append(activity.ParticipantIDs, userID)
		joined = activity

		return nil
	})
	if err != nil {
		s.log(ctx).Info("Join rejected",
			slog.String("user_id", userID.String()),
			slog.String("activity_id", activityID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute join transaction")
	}

	s.log(ctx).Info("Player joined activity",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activityID.String()),
		slog.Int("slots", joined.Slots),
	)
	s.audit.Record(ctx, &userID, entity.AuditJoinActivity, joined.Title)

	if err := s.notifications.NotifyJoinConfirmed(ctx, userID, joined); err != nil {
		s.log(ctx).Error("Failed to write join confirmation", slog.String("user_id", userID.String()), slog.Any("error", err))
	}

	return joined, nil
}

// LeaveActivity gives the caller's slot back.
func (s *activityService) LeaveActivity(ctx context.Context, userID, activityID uuid.UUID) (*entity.Activity, error) {
	activity, err := s.releaseSlot(ctx, activityID, userID, nil)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, &userID, entity.AuditLeaveActivity, activity.Title)

	return activity, nil
}

// RemoveParticipant drops participantID from the roster. Only the organizer may do this.
func (s *activityService) RemoveParticipant(ctx context.Context, organizerID, activityID, participantID uuid.UUID) (*entity.Activity, error) {
	activity, err := s.releaseSlot(ctx, activityID, participantID, &organizerID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, &participantID, entity.AuditLeaveActivity, "retirado por el organizador: "+activity.Title)

	return activity, nil
}

// releaseSlot removes userID from the roster and frees one slot. When
// organizerID is set the caller must organize the activity.
func (s *activityService) releaseSlot(ctx context.Context, activityID, userID uuid.UUID, organizerID *uuid.UUID) (*entity.Activity, error) {
	var released *entity.Activity
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.NewActivityRepository()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			return mapActivityError(err, "failed to lock activity")
		}
		if organizerID != nil && !activity.IsOrganizer(*organizerID) {
			return domainerrors.ErrNotOrganizer
		}

		if err := activityRepo.RemoveParticipant(ctx, activityID, userID); err != nil {
			return mapActivityError(err, "failed to remove participant")
		}

		switch err := activityRepo.ReleaseSlot(ctx, activityID); {
		case err == nil:
			activity.Slots++
		case errors.Is(err, repository.ErrSlotsAtCapacity):
			// the roster row is still removed, slots stay at capacity
			s.log(ctx).Warn("Slots already at capacity on release", slog.String("activity_id", activityID.String()))
		default:
			return errors.Wrap(err, "failed to release slot")
		}

		activity.ParticipantIDs = removeID(activity.ParticipantIDs, userID)
		released = activity

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute leave transaction")
	}

	s.log(ctx).Info("Participant left activity",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activityID.String()),
		slog.Int("slots", released.Slots),
	)

	return released, nil
}

// GenerateInviteQR renders the invite QR code of an existing activity
func (s *activityService) GenerateInviteQR(ctx context.Context, activityID uuid.UUID) ([]byte, error) {
	if _, err := s.activityRepo.FindByID(ctx, activityID); err != nil {
		return nil, mapActivityError(err, "failed to find activity")
	}

	png, err := s.qrCode.GenerateInviteQR(activityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return png, nil
}

// JoinByInvite joins the activity referenced by a scanned invite payload
func (s *activityService) JoinByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Activity, error) {
	activityID, err := s.qrCode.ParseInviteQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInviteCode, err.Error())
	}

	return s.JoinActivity(ctx, userID, activityID)
}

func applyActivityUpdate(activity *entity.Activity, input *usecase.UpdateActivityInput) error {
	if input.Title != nil {
		activity.Title = strings.TrimSpace(*input.Title)
	}
	if input.Sport != nil {
		sport, ok := entity.NormalizeSport(*input.Sport)
		if !ok {
			return domainerrors.ErrInvalidActivity.WithDetails("deporte desconocido: " + *input.Sport)
		}
		activity.Sport = sport
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.Place != nil {
		activity.Place = strings.TrimSpace(*input.Place)
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrInvalidLocation.WithDetails("latitud y longitud deben enviarse juntas")
	}
	if input.Latitude != nil {
		location := geo.NewGeoPoint(*input.Latitude, *input.Longitude)
		if _, err := location.Point(); err != nil {
			return errors.Wrap(domainerrors.ErrInvalidLocation, err.Error())
		}
		activity.Location = location
	}
	if input.Date != nil {
		activity.Date = *input.Date
	}
	if input.StartTime != nil {
		activity.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		activity.EndTime = *input.EndTime
	}
	if input.Level != nil {
		level, ok := entity.ParseLevel(string(*input.Level))
		if !ok {
			return domainerrors.ErrInvalidActivity.WithDetails("nivel desconocido: " + string(*input.Level))
		}
		activity.Level = level
	}
	if input.Capacity != nil {
		participants := len(activity.ParticipantIDs)
		if *input.Capacity < participants {
			return domainerrors.ErrCapacityBelowParticipants
		}
		activity.Capacity = *input.Capacity
		activity.Slots = activity.Capacity - participants
	}

	return validateActivity(activity)
}

func validateActivity(activity *entity.Activity) error {
	switch {
	case activity.Title == "":
		return domainerrors.ErrInvalidActivity.WithDetails("el título es obligatorio")
	case activity.Place == "":
		return domainerrors.ErrInvalidActivity.WithDetails("el lugar es obligatorio")
	case activity.Date.IsZero():
		return domainerrors.ErrInvalidActivity.WithDetails("la fecha es obligatoria")
	case activity.Capacity < 1:
		return domainerrors.ErrInvalidActivity.WithDetails("los cupos deben ser al menos 1")
	}

	start, err := time.Parse(clockLayout, activity.StartTime)
	if err != nil {
		return domainerrors.ErrInvalidActivity.WithDetails("hora de inicio inválida, use HH:MM")
	}
	if activity.EndTime != "" {
		end, err := time.Parse(clockLayout, activity.EndTime)
		if err != nil {
			return domainerrors.ErrInvalidActivity.WithDetails("hora de término inválida, use HH:MM")
		}
		if !end.After(start) {
			return domainerrors.ErrInvalidActivity.WithDetails("la hora de término debe ser posterior a la de inicio")
		}
	}

	return nil
}

// mapActivityError turns repository errors into their user-facing counterparts.
func mapActivityError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return domainerrors.ErrActivityNotFound
	case errors.Is(err, repository.ErrNoSlotsLeft):
		return domainerrors.ErrActivityFull
	case errors.Is(err, repository.ErrDuplicateParticipant):
		return domainerrors.ErrAlreadyParticipant
	case errors.Is(err, repository.ErrParticipantNotFound):
		return domainerrors.ErrNotParticipant
	default:
		return errors.Wrap(err, message)
	}
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}

	return out
}
