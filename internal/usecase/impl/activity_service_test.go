package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/proximity"
	"matchdeportivo/internal/domain/repository"
	mockRepo "matchdeportivo/internal/mocks/repository"
	mockSvc "matchdeportivo/internal/mocks/service"
	mockUsecase "matchdeportivo/internal/mocks/usecase"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service       usecase.ActivityUsecase
	txManager     *mockRepo.MockTransactionManager
	activityRepo  *mockRepo.MockActivityRepository
	profileRepo   *mockRepo.MockProfileRepository
	notifications *mockUsecase.MockNotificationUsecase
	audit         *mockUsecase.MockAuditUsecase
	qrCode        *mockSvc.MockQRCodeService
	txFactory     *mockRepo.MockRepositoryFactory
	txActivities  *mockRepo.MockActivityRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	fx := activityServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		activityRepo:  mockRepo.NewMockActivityRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		audit:         mockUsecase.NewMockAuditUsecase(t),
		qrCode:        mockSvc.NewMockQRCodeService(t),
		txFactory:     mockRepo.NewMockRepositoryFactory(t),
		txActivities:  mockRepo.NewMockActivityRepository(t),
	}

	fx.service = NewActivityService(ActivityServiceParams{
		TxManager:     fx.txManager,
		ActivityRepo:  fx.activityRepo,
		ProfileRepo:   fx.profileRepo,
		Notifications: fx.notifications,
		Audit:         fx.audit,
		QRCode:        fx.qrCode,
		Logger:        newDiscardLogger(),
	})

	return fx
}

// expectActivityTx runs the transaction body against the fixture's tx-bound activity repository.
func (fx activityServiceFixtures) expectActivityTx(ctx context.Context) {
	expectTx(ctx, fx.txManager, fx.txFactory)
	fx.txFactory.EXPECT().NewActivityRepository().Return(fx.txActivities)
}

func sampleActivity(organizerID uuid.UUID, capacity int) *entity.Activity {
	return &entity.Activity{
		ID:             uuid.New(),
		OrganizerID:    organizerID,
		Title:          "Pichanga del sábado",
		Sport:          entity.SportFutbol,
		Place:          "Parque O'Higgins",
		Location:       geo.NewGeoPoint(-33.4645, -70.6610),
		Date:           time.Date(2026, time.November, 7, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "12:00",
		Level:          entity.LevelIntermediate,
		Capacity:       capacity,
		Slots:          capacity,
		ParticipantIDs: []uuid.UUID{},
	}
}

func validCreateInput() *usecase.CreateActivityInput {
	return &usecase.CreateActivityInput{
		Title:     " Pichanga del sábado ",
		Sport:     "Futbol",
		Place:     "Parque O'Higgins",
		Latitude:  -33.4645,
		Longitude: -70.6610,
		Date:      time.Date(2026, time.November, 7, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Level:     "Intermedio",
		Capacity:  10,
	}
}

func TestActivityService_CreateActivity_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	organizerID := uuid.New()
	input := validCreateInput()

	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
	fx.audit.EXPECT().Record(ctx, &organizerID, entity.AuditCreateActivity, "Pichanga del sábado").Return()

	report := &usecase.FanOutReport{}
	fx.notifications.EXPECT().
		NotifyNearbyUsers(ctx, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.OrganizerID == organizerID && a.Sport == entity.SportFutbol
		})).
		Return(report)

	output, err := fx.service.CreateActivity(ctx, organizerID, input)

	require.NoError(t, err)
	assert.Same(t, report, output.FanOut)

	activity := output.Activity
	assert.Equal(t, "Pichanga del sábado", activity.Title)
	assert.Equal(t, entity.SportFutbol, activity.Sport)
	assert.Equal(t, entity.LevelIntermediate, activity.Level)
	assert.Equal(t, 10, activity.Capacity)
	assert.Equal(t, 10, activity.Slots)
	assert.Empty(t, activity.ParticipantIDs)
	assert.NotEqual(t, uuid.Nil, activity.ID)
}

func TestActivityService_CreateActivity_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *usecase.CreateActivityInput)
		wantCode string
	}{
		{name: "unknown sport", mutate: func(in *usecase.CreateActivityInput) { in.Sport = "curling" }, wantCode: "INVALID_ACTIVITY"},
		{name: "unknown level", mutate: func(in *usecase.CreateActivityInput) { in.Level = "experto" }, wantCode: "INVALID_ACTIVITY"},
		{name: "latitude out of range", mutate: func(in *usecase.CreateActivityInput) { in.Latitude = 95 }, wantCode: "INVALID_LOCATION"},
		{name: "missing title", mutate: func(in *usecase.CreateActivityInput) { in.Title = "  " }, wantCode: "INVALID_ACTIVITY"},
		{name: "zero capacity", mutate: func(in *usecase.CreateActivityInput) { in.Capacity = 0 }, wantCode: "INVALID_ACTIVITY"},
		{name: "bad start time", mutate: func(in *usecase.CreateActivityInput) { in.StartTime = "10am" }, wantCode: "INVALID_ACTIVITY"},
		{name: "end before start", mutate: func(in *usecase.CreateActivityInput) { in.EndTime = "09:30" }, wantCode: "INVALID_ACTIVITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestActivityService(t)

			input := validCreateInput()
			tt.mutate(input)

			output, err := fx.service.CreateActivity(context.Background(), uuid.New(), input)

			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr), "got %v", err)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestActivityService_CreateActivity_OpenEnded(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.EndTime = ""

	fx.activityRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.audit.EXPECT().Record(ctx, mock.Anything, entity.AuditCreateActivity, mock.Anything).Return()
	fx.notifications.EXPECT().NotifyNearbyUsers(ctx, mock.Anything).Return(&usecase.FanOutReport{})

	output, err := fx.service.CreateActivity(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Empty(t, output.Activity.EndTime)
}

func TestActivityService_ListActivities(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	radius := 5

	mine := sampleActivity(viewerID, 4)
	mine.Location = geo.NewGeoPoint(10, 10)
	near := sampleActivity(uuid.New(), 4)
	near.Location = geo.NewGeoPoint(-33.45, -70.67)
	far := sampleActivity(uuid.New(), 4)
	far.Location = geo.NewGeoPoint(-33.0472, -71.6127)

	fx.profileRepo.EXPECT().FindByUserID(ctx, viewerID).Return(&entity.Profile{
		UserID:   viewerID,
		Location: geo.NewGeoPoint(-33.4489, -70.6693),
		RadiusKm: &radius,
	}, nil)
	fx.activityRepo.EXPECT().
		FindAll(ctx, entity.ActivityFilter{Sport: "futbol"}).
		Return([]*entity.Activity{far, near, mine}, nil)

	listing, err := fx.service.ListActivities(ctx, viewerID, entity.ActivityFilter{Sport: " futbol "})

	require.NoError(t, err)
	assert.Equal(t, proximity.AdvisoryNone, listing.Advisory)
	require.Len(t, listing.Activities, 2)
	assert.Same(t, mine, listing.Activities[0].Activity)
	assert.Nil(t, listing.Activities[0].DistanceKm)
	assert.Same(t, near, listing.Activities[1].Activity)
	require.NotNil(t, listing.Activities[1].DistanceKm)
}

func TestActivityService_ListActivities_NoProfile(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	activity := sampleActivity(uuid.New(), 4)

	fx.profileRepo.EXPECT().FindByUserID(ctx, viewerID).Return(nil, repository.ErrProfileNotFound)
	fx.activityRepo.EXPECT().FindAll(ctx, entity.ActivityFilter{}).Return([]*entity.Activity{activity}, nil)

	listing, err := fx.service.ListActivities(ctx, viewerID, entity.ActivityFilter{})

	require.NoError(t, err)
	assert.Equal(t, proximity.AdvisoryLocationNotConfigured, listing.Advisory)
	require.Len(t, listing.Activities, 1)
}

func TestActivityService_JoinActivity_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := sampleActivity(uuid.New(), 2)

	fx.expectActivityTx(ctx)
	fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	fx.txActivities.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
	fx.txActivities.EXPECT().TakeSlot(ctx, activity.ID).Return(nil)
	fx.audit.EXPECT().Record(ctx, &userID, entity.AuditJoinActivity, activity.Title).Return()
	fx.notifications.EXPECT().NotifyJoinConfirmed(ctx, userID, activity).Return(errors.New("db down"))

	joined, err := fx.service.JoinActivity(ctx, userID, activity.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, joined.Slots)
	assert.Equal(t, []uuid.UUID{userID}, joined.ParticipantIDs)
}

func TestActivityService_JoinActivity_Rejected(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx activityServiceFixtures, ctx context.Context, activity *entity.Activity)
		wantErr error
	}{
		{
			name: "activity full",
			setup: func(fx activityServiceFixtures, ctx context.Context, activity *entity.Activity) {
				activity.Slots = 0
				fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
			},
			wantErr: domainerrors.ErrActivityFull,
		},
		{
			name: "already joined",
			setup: func(fx activityServiceFixtures, ctx context.Context, activity *entity.Activity) {
				activity.ParticipantIDs = []uuid.UUID{userID}
				activity.Slots--
				fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
			},
			wantErr: domainerrors.ErrAlreadyParticipant,
		},
		{
			name: "missing activity",
			setup: func(fx activityServiceFixtures, ctx context.Context, activity *entity.Activity) {
				fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(nil, repository.ErrActivityNotFound)
			},
			wantErr: domainerrors.ErrActivityNotFound,
		},
		{
			name: "slot taken by a concurrent writer",
			setup: func(fx activityServiceFixtures, ctx context.Context, activity *entity.Activity) {
				fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
				fx.txActivities.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
				fx.txActivities.EXPECT().TakeSlot(ctx, activity.ID).Return(repository.ErrNoSlotsLeft)
			},
			wantErr: domainerrors.ErrActivityFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestActivityService(t)
			ctx := context.Background()
			activity := sampleActivity(uuid.New(), 3)

			fx.expectActivityTx(ctx)
			tt.setup(fx, ctx, activity)

			joined, err := fx.service.JoinActivity(ctx, userID, activity.ID)

			assert.Nil(t, joined)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestActivityService_LeaveActivity(t *testing.T) {
	t.Run("participant leaves", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		userID, otherID := uuid.New(), uuid.New()
		activity := sampleActivity(uuid.New(), 3)
		activity.ParticipantIDs = []uuid.UUID{otherID, userID}
		activity.Slots = 1

		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		fx.txActivities.EXPECT().RemoveParticipant(ctx, activity.ID, userID).Return(nil)
		fx.txActivities.EXPECT().ReleaseSlot(ctx, activity.ID).Return(nil)
		fx.audit.EXPECT().Record(ctx, &userID, entity.AuditLeaveActivity, activity.Title).Return()

		left, err := fx.service.LeaveActivity(ctx, userID, activity.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, left.Slots)
		assert.Equal(t, []uuid.UUID{otherID}, left.ParticipantIDs)
	})

	t.Run("not a participant", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		userID := uuid.New()
		activity := sampleActivity(uuid.New(), 3)

		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		fx.txActivities.EXPECT().RemoveParticipant(ctx, activity.ID, userID).Return(repository.ErrParticipantNotFound)

		left, err := fx.service.LeaveActivity(ctx, userID, activity.ID)

		assert.Nil(t, left)
		assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
	})

	t.Run("slots already at capacity", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		userID := uuid.New()
		activity := sampleActivity(uuid.New(), 3)
		activity.ParticipantIDs = []uuid.UUID{userID}

		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		fx.txActivities.EXPECT().RemoveParticipant(ctx, activity.ID, userID).Return(nil)
		fx.txActivities.EXPECT().ReleaseSlot(ctx, activity.ID).Return(repository.ErrSlotsAtCapacity)
		fx.audit.EXPECT().Record(ctx, &userID, entity.AuditLeaveActivity, activity.Title).Return()

		left, err := fx.service.LeaveActivity(ctx, userID, activity.ID)

		require.NoError(t, err)
		assert.Equal(t, 3, left.Slots)
		assert.Empty(t, left.ParticipantIDs)
	})
}

func TestActivityService_RemoveParticipant(t *testing.T) {
	t.Run("organizer removes participant", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		organizerID, participantID := uuid.New(), uuid.New()
		activity := sampleActivity(organizerID, 2)
		activity.ParticipantIDs = []uuid.UUID{participantID}
		activity.Slots = 1

		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		fx.txActivities.EXPECT().RemoveParticipant(ctx, activity.ID, participantID).Return(nil)
		fx.txActivities.EXPECT().ReleaseSlot(ctx, activity.ID).Return(nil)
		fx.audit.EXPECT().
			Record(ctx, &participantID, entity.AuditLeaveActivity, "retirado por el organizador: "+activity.Title).
			Return()

		updated, err := fx.service.RemoveParticipant(ctx, organizerID, activity.ID, participantID)

		require.NoError(t, err)
		assert.Equal(t, 2, updated.Slots)
	})

	t.Run("caller is not the organizer", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		activity := sampleActivity(uuid.New(), 2)

		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)

		updated, err := fx.service.RemoveParticipant(ctx, uuid.New(), activity.ID, uuid.New())

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, domainerrors.ErrNotOrganizer))
	})
}

func TestActivityService_UpdateActivity_Capacity(t *testing.T) {
	organizerID := uuid.New()

	tests := []struct {
		name      string
		capacity  int
		wantSlots int
		wantErr   error
	}{
		{name: "grow", capacity: 6, wantSlots: 4},
		{name: "shrink to roster", capacity: 2, wantSlots: 0},
		{name: "below roster", capacity: 1, wantErr: domainerrors.ErrCapacityBelowParticipants},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestActivityService(t)
			ctx := context.Background()
			activity := sampleActivity(organizerID, 4)
			activity.ParticipantIDs = []uuid.UUID{uuid.New(), uuid.New()}
			activity.Slots = 2

			fx.expectActivityTx(ctx)
			fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
			if tt.wantErr == nil {
				fx.txActivities.EXPECT().Update(ctx, activity).Return(nil)
			}

			capacity := tt.capacity
			updated, err := fx.service.UpdateActivity(ctx, organizerID, activity.ID, &usecase.UpdateActivityInput{Capacity: &capacity})

			if tt.wantErr != nil {
				assert.Nil(t, updated)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, updated.Capacity)
			assert.Equal(t, tt.wantSlots, updated.Slots)
		})
	}
}

func TestActivityService_UpdateActivity_NotOrganizer(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	activity := sampleActivity(uuid.New(), 4)
	title := "Otro título"

	fx.expectActivityTx(ctx)
	fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)

	_, err := fx.service.UpdateActivity(ctx, uuid.New(), activity.ID, &usecase.UpdateActivityInput{Title: &title})

	assert.True(t, errors.Is(err, domainerrors.ErrNotOrganizer))
}

func TestActivityService_DeleteActivity(t *testing.T) {
	t.Run("organizer", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		organizerID := uuid.New()
		activity := sampleActivity(organizerID, 4)

		fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil).Once()
		fx.activityRepo.EXPECT().Delete(ctx, activity.ID).Return(nil).Once()

		require.NoError(t, fx.service.DeleteActivity(ctx, organizerID, activity.ID))
	})

	t.Run("not organizer", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		activity := sampleActivity(uuid.New(), 4)

		fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil).Once()

		err := fx.service.DeleteActivity(ctx, uuid.New(), activity.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotOrganizer))
		fx.activityRepo.AssertNotCalled(t, "Delete", ctx, activity.ID)
	})
}

func TestActivityService_ListMyActivities(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	userID := uuid.New()

	organized := sampleActivity(userID, 4)
	joined := sampleActivity(uuid.New(), 4)

	fx.activityRepo.EXPECT().FindByOrganizer(ctx, userID).Return([]*entity.Activity{organized}, nil)
	// the organizer may also be on the roster of their own activity
	fx.activityRepo.EXPECT().FindJoinedBy(ctx, userID).Return([]*entity.Activity{organized, joined}, nil)

	mine, err := fx.service.ListMyActivities(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Activity{organized}, mine.Organized)
	assert.Equal(t, []*entity.Activity{joined}, mine.Joined)
}

func TestActivityService_InviteQR(t *testing.T) {
	t.Run("generate", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		activity := sampleActivity(uuid.New(), 4)

		fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil)
		fx.qrCode.EXPECT().GenerateInviteQR(activity.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.GenerateInviteQR(ctx, activity.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("join by invite", func(t *testing.T) {
		fx := createTestActivityService(t)
		ctx := context.Background()
		userID := uuid.New()
		activity := sampleActivity(uuid.New(), 4)

		fx.qrCode.EXPECT().ParseInviteQR("payload").Return(activity.ID, nil)
		fx.expectActivityTx(ctx)
		fx.txActivities.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		fx.txActivities.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
		fx.txActivities.EXPECT().TakeSlot(ctx, activity.ID).Return(nil)
		fx.audit.EXPECT().Record(ctx, &userID, entity.AuditJoinActivity, activity.Title).Return()
		fx.notifications.EXPECT().NotifyJoinConfirmed(ctx, userID, activity).Return(nil)

		joined, err := fx.service.JoinByInvite(ctx, userID, "payload")

		require.NoError(t, err)
		assert.Equal(t, 3, joined.Slots)
	})

	t.Run("unreadable invite", func(t *testing.T) {
		fx := createTestActivityService(t)

		fx.qrCode.EXPECT().ParseInviteQR("garbage").Return(uuid.Nil, errors.New("bad scheme"))

		_, err := fx.service.JoinByInvite(context.Background(), uuid.New(), "garbage")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInviteCode))
	})
}

// TestActivityService_JoinActivity_ConcurrentRace has many players race for
// the last few places. Exactly capacity joins may succeed.
func TestActivityService_JoinActivity_ConcurrentRace(t *testing.T) {
	const (
		capacity = 3
		players  = 25
	)

	store := newMemoryActivityStore(sampleActivity(uuid.New(), capacity))
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	audit := mockUsecase.NewMockAuditUsecase(t)

	notifications.EXPECT().NotifyJoinConfirmed(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(capacity)
	audit.EXPECT().Record(mock.Anything, mock.Anything, entity.AuditJoinActivity, mock.Anything).Return().Times(capacity)

	svc := NewActivityService(ActivityServiceParams{
		TxManager:     store,
		ActivityRepo:  store,
		Notifications: notifications,
		Audit:         audit,
		Logger:        newDiscardLogger(),
	})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		joined  int
		full    int
		unknown []error
	)

	start := make(chan struct{})
	for range players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := svc.JoinActivity(context.Background(), uuid.New(), store.activity.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				joined++
			case errors.Is(err, domainerrors.ErrActivityFull):
				full++
			default:
				unknown = append(unknown, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, unknown)
	assert.Equal(t, capacity, joined)
	assert.Equal(t, players-capacity, full)
	assert.Equal(t, 0, store.activity.Slots)
	assert.Len(t, store.activity.ParticipantIDs, capacity)
}

// memoryActivityStore is an in-memory ActivityRepository whose transactions
// are serialized by a single lock, standing in for the row lock.
type memoryActivityStore struct {
	repository.ActivityRepository

	txMu     sync.Mutex
	activity *entity.Activity
}

func newMemoryActivityStore(activity *entity.Activity) *memoryActivityStore {
	return &memoryActivityStore{activity: activity}
}

func (s *memoryActivityStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

func (s *memoryActivityStore) NewUserRepository() repository.UserRepository       { return nil }
func (s *memoryActivityStore) NewProfileRepository() repository.ProfileRepository { return nil }
func (s *memoryActivityStore) NewActivityRepository() repository.ActivityRepository {
	return s
}

func (s *memoryActivityStore) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	if id != s.activity.ID {
		return nil, repository.ErrActivityNotFound
	}

	snapshot := *s.activity
	snapshot.ParticipantIDs = append([]uuid.UUID(nil), s.activity.ParticipantIDs...)

	return &snapshot, nil
}

func (s *memoryActivityStore) AddParticipant(_ context.Context, _, userID uuid.UUID) error {
	if s.activity.HasParticipant(userID) {
		return repository.ErrDuplicateParticipant
	}
	s.activity.ParticipantIDs = append(s.activity.ParticipantIDs, userID)

	return nil
}

func (s *memoryActivityStore) TakeSlot(_ context.Context, _ uuid.UUID) error {
	if s.activity.Slots <= 0 {
		return repository.ErrNoSlotsLeft
	}
	s.activity.Slots--

	return nil
}
