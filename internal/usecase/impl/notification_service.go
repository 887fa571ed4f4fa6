package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "matchdeportivo/internal/delivery/context"
	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/proximity"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/domain/service"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100

	nearbyPushTitle = "Nueva actividad cerca de ti"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ProfileRepo      repository.ProfileRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		profileRepo:      params.ProfileRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyNearbyUsers writes a NEW_NEARBY_ACTIVITY notification for every
// player the activity is near. Each write is independent: a failure is kept
// in the report and the loop moves on.
func (s *notificationService) NotifyNearbyUsers(ctx context.Context, activity *entity.Activity) *usecase.FanOutReport {
	report := &usecase.FanOutReport{ActivityID: activity.ID}
	logger := s.log(ctx).With(slog.String("activity_id", activity.ID.String()))

	if _, err := activity.Location.Point(); err != nil {
		logger.Warn("Skipping nearby fan-out, activity location unreadable", slog.Any("error", err))
		report.Err = err

		return report
	}

	profiles, err := s.profileRepo.FindBySport(ctx, activity.Sport, activity.OrganizerID)
	if err != nil {
		logger.Error("Failed to load candidate profiles for fan-out", slog.Any("error", err))
		report.Err = errors.Wrap(err, "failed to load candidate profiles")

		return report
	}

	targets, err := proximity.FindNearbyUsers(activity, profiles)
	if err != nil {
		logger.Warn("Skipping nearby fan-out", slog.Any("error", err))
		report.Err = err

		return report
	}

	report.Skipped = targets.Skipped
	for _, userID := range targets.Skipped {
		logger.Warn("Skipping profile with unreadable location", slog.String("user_id", userID.String()))
	}

	report.Results = make([]usecase.DeliveryResult, 0, len(targets.Matches))
	for _, match := range targets.Matches {
		report.Results = append(report.Results, s.writeNearbyNotification(ctx, logger, activity, match))
	}

	logger.Info("Nearby fan-out finished",
		slog.Int("candidates", len(profiles)),
		slog.Int("matched", len(targets.Matches)),
		slog.Int("delivered", len(report.Delivered())),
		slog.Int("failed", len(report.Failed())),
		slog.Int("skipped", len(targets.Skipped)),
	)

	s.publishPush(ctx, logger, activity, report)

	return report
}

func (s *notificationService) writeNearbyNotification(ctx context.Context, logger *slog.Logger, activity *entity.Activity, match proximity.Match) usecase.DeliveryResult {
	result := usecase.DeliveryResult{UserID: match.UserID, DistanceKm: match.DistanceKm}

	activityID := activity.ID
	notification := &entity.Notification{
		UserID:     match.UserID,
		ActivityID: &activityID,
		Type:       entity.NotificationNewNearbyActivity,
		Message:    nearbyActivityMessage(activity, match.DistanceKm),
		CreatedAt:  time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to write nearby notification",
			slog.String("user_id", match.UserID.String()),
			slog.Any("error", err),
		)
		result.Err = err

		return result
	}

	result.NotificationID = notification.ID

	return result
}

// publishPush hands the delivered recipients to the push worker. Push is an
// extra channel on top of the stored notifications, so failures only log.
func (s *notificationService) publishPush(ctx context.Context, logger *slog.Logger, activity *entity.Activity, report *usecase.FanOutReport) {
	delivered := report.Delivered()
	if len(delivered) == 0 || s.publisher == nil {
		return
	}

	recipients := make([]string, 0, len(delivered))
	for _, res := range delivered {
		recipients = append(recipients, res.UserID.String())
	}

	event := &service.NotificationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.New().String(),
		ActivityID:   activity.ID.String(),
		Title:        nearbyPushTitle,
		Body:         fmt.Sprintf("%s · %s", sportLabel(activity.Sport), activity.Title),
		RecipientIDs: recipients,
	}

	for _, part := range event.Split(constants.MaxRecipientsPerEvent) {
		if err := s.publisher.PublishNotificationEvent(ctx, part); err != nil {
			logger.Warn("Failed to publish push event",
				slog.String("event_id", part.EventID),
				slog.Any("error", err),
			)
		}
	}
}

// NotifyJoinConfirmed writes a JOIN_CONFIRMED notification for userID.
func (s *notificationService) NotifyJoinConfirmed(ctx context.Context, userID uuid.UUID, activity *entity.Activity) error {
	activityID := activity.ID
	notification := &entity.Notification{
		UserID:     userID,
		ActivityID: &activityID,
		Type:       entity.NotificationJoinConfirmed,
		Message:    fmt.Sprintf("¡Confirmado! Estás inscrito en %s el %s.", activity.Title, activity.Date.Format("02/01/2006")),
		CreatedAt:  time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create join notification")
	}

	return nil
}

// ListNotifications returns a page of the user's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	limit = min(limit, maxNotificationPageSize)
	offset = max(offset, 0)

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnread returns how many notifications the user has not read
func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one of the user's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	// other users' notifications look missing rather than forbidden
	if notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound
	}

	if notification.Read {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags every notification of the user as read
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return updated, nil
}

func nearbyActivityMessage(activity *entity.Activity, distanceKm float64) string {
	return fmt.Sprintf("¡Nueva actividad de %s cerca de ti! %s a %.1f km.", sportLabel(activity.Sport), activity.Title, distanceKm)
}

func sportLabel(sport string) string {
	return cases.Title(language.Spanish).String(sport)
}
