package impl

import (
	"context"
	"testing"
	"time"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/domain/service"
	mockRepo "matchdeportivo/internal/mocks/repository"
	mockSvc "matchdeportivo/internal/mocks/service"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	profileRepo      *mockRepo.MockProfileRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		ProfileRepo:      profileRepo,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		publisher:        publisher,
	}
}

func nearbyProfile(userID uuid.UUID, lat, lng float64, radius int) *entity.Profile {
	return &entity.Profile{
		UserID:         userID,
		PreferredSport: entity.SportFutbol,
		Location:       geo.NewGeoPoint(lat, lng),
		RadiusKm:       &radius,
	}
}

func TestNotificationService_NotifyNearbyUsers_PartialFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	organizerID := uuid.New()
	activity := &entity.Activity{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		Title:       "Pichanga del sábado",
		Sport:       entity.SportFutbol,
		Location:    geo.NewGeoPoint(-33.4489, -70.6693),
	}

	okUser, failingUser, farUser, brokenUser := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	broken := nearbyProfile(brokenUser, 0, 0, 10)
	broken.Location.Latitude = geo.ParseCoordinate("n/a")
	profiles := []*entity.Profile{
		nearbyProfile(okUser, -33.4489, -70.6693, 5),
		nearbyProfile(failingUser, -33.45, -70.67, 5),
		nearbyProfile(farUser, -33.0472, -71.6127, 10), // Valparaíso, ~100 km away
		broken,
	}

	fx.profileRepo.EXPECT().FindBySport(ctx, entity.SportFutbol, organizerID).Return(profiles, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.UserID == okUser })).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return n.UserID == failingUser })).
		Return(errors.New("connection reset"))

	var published *service.NotificationEvent
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, event *service.NotificationEvent) { published = event }).
		Return(nil)

	report := fx.service.NotifyNearbyUsers(ctx, activity)

	require.NoError(t, report.Err)
	assert.Equal(t, activity.ID, report.ActivityID)
	assert.Equal(t, []uuid.UUID{brokenUser}, report.Skipped)
	require.Len(t, report.Results, 2)

	delivered := report.Delivered()
	require.Len(t, delivered, 1)
	assert.Equal(t, okUser, delivered[0].UserID)
	assert.NotEqual(t, uuid.Nil, delivered[0].NotificationID)
	assert.InDelta(t, 0.0, delivered[0].DistanceKm, 1e-9)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, failingUser, failed[0].UserID)
	assert.Error(t, failed[0].Err)

	require.NotNil(t, published)
	assert.Equal(t, []string{okUser.String()}, published.RecipientIDs)
	assert.Equal(t, activity.ID.String(), published.ActivityID)
	assert.Equal(t, "Futbol · Pichanga del sábado", published.Body)
	assert.NotEmpty(t, published.EventID)
}

func TestNotificationService_NotifyNearbyUsers_MessageText(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	activity := &entity.Activity{
		ID:          uuid.New(),
		OrganizerID: uuid.New(),
		Title:       "Partido en el parque",
		Sport:       entity.SportFutbol,
		Location:    geo.NewGeoPoint(0, 0),
	}
	userID := uuid.New()

	// 0.1 degrees of longitude at the equator is ~11.1 km
	fx.profileRepo.EXPECT().
		FindBySport(ctx, entity.SportFutbol, activity.OrganizerID).
		Return([]*entity.Profile{nearbyProfile(userID, 0, 0.1, 20)}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Type == entity.NotificationNewNearbyActivity &&
				n.ActivityID != nil && *n.ActivityID == activity.ID &&
				n.Message == "¡Nueva actividad de Futbol cerca de ti! Partido en el parque a 11.1 km."
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	report := fx.service.NotifyNearbyUsers(ctx, activity)

	require.Len(t, report.Delivered(), 1)
	assert.InDelta(t, 11.1, report.Results[0].DistanceKm, 1e-9)
}

func TestNotificationService_NotifyNearbyUsers_ActivityWithoutLocation(t *testing.T) {
	fx := createTestNotificationService(t)

	activity := &entity.Activity{ID: uuid.New(), Sport: entity.SportTenis}

	report := fx.service.NotifyNearbyUsers(context.Background(), activity)

	assert.True(t, errors.Is(report.Err, geo.ErrLocationNotSet))
	assert.Empty(t, report.Results)
}

func TestNotificationService_NotifyNearbyUsers_NoMatchesSkipsPublish(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	activity := &entity.Activity{
		ID:          uuid.New(),
		OrganizerID: uuid.New(),
		Sport:       entity.SportFutbol,
		Location:    geo.NewGeoPoint(10, 10),
	}

	withoutRadius := nearbyProfile(uuid.New(), 10, 10, 1)
	withoutRadius.RadiusKm = nil

	fx.profileRepo.EXPECT().
		FindBySport(ctx, entity.SportFutbol, activity.OrganizerID).
		Return([]*entity.Profile{withoutRadius}, nil)

	report := fx.service.NotifyNearbyUsers(ctx, activity)

	require.NoError(t, report.Err)
	assert.Empty(t, report.Results)
}

func TestNotificationService_NotifyJoinConfirmed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := &entity.Activity{
		ID:    uuid.New(),
		Title: "Básquet 3x3",
		Date:  time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == userID &&
				n.Type == entity.NotificationJoinConfirmed &&
				n.Message == "¡Confirmado! Estás inscrito en Básquet 3x3 el 07/03/2026."
		})).
		Return(nil)

	require.NoError(t, fx.service.NotifyJoinConfirmed(ctx, userID, activity))
}

func TestNotificationService_ListNotifications_PageBounds(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: -3, wantLimit: 20, wantOffset: 0},
		{name: "clamped", limit: 500, offset: 40, wantLimit: 100, wantOffset: 40},
		{name: "as given", limit: 10, offset: 10, wantLimit: 10, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			ctx := context.Background()
			userID := uuid.New()
			expected := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

			fx.notificationRepo.EXPECT().FindByUser(ctx, userID, tt.wantLimit, tt.wantOffset).Return(expected, nil)

			got, err := fx.service.ListNotifications(ctx, userID, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()

	tests := []struct {
		name      string
		found     *entity.Notification
		findErr   error
		expectSet bool
		wantErr   error
	}{
		{
			name:      "unread notification",
			found:     &entity.Notification{ID: notificationID, UserID: userID},
			expectSet: true,
		},
		{
			name:  "already read",
			found: &entity.Notification{ID: notificationID, UserID: userID, Read: true},
		},
		{
			name:    "belongs to another user",
			found:   &entity.Notification{ID: notificationID, UserID: uuid.New()},
			wantErr: domainerrors.ErrNotificationNotFound,
		},
		{
			name:    "missing",
			findErr: repository.ErrNotificationNotFound,
			wantErr: domainerrors.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)
			ctx := context.Background()

			fx.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(tt.found, tt.findErr)
			if tt.expectSet {
				fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID).Return(nil)
			}

			err := fx.service.MarkRead(ctx, userID, notificationID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNotificationService_CountAndMarkAll(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil)
	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(3), nil)

	count, err := fx.service.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	updated, err := fx.service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
