package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/geo"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/infra/persistence/postgres"
	mockUsecase "matchdeportivo/internal/mocks/usecase"
	"matchdeportivo/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDSNEnv = "MATCHDEPORTIVO_TEST_POSTGRES_DSN"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping PostgreSQL integration test", testDSNEnv)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	return db
}

func TestActivityRepository_ConcurrentJoins(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	const (
		capacity = 4
		players  = 30
	)

	activityRepo := postgres.NewActivityRepository(db)
	activity := &entity.Activity{
		ID:          uuid.New(),
		OrganizerID: uuid.New(),
		Title:       "Carrera nocturna",
		Sport:       entity.SportRunning,
		Place:       "Cerro San Cristóbal",
		Location:    geo.NewGeoPoint(-33.4253, -70.6331),
		Date:        time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		StartTime:   "20:00",
		Level:       entity.LevelBeginner,
		Capacity:    capacity,
		Slots:       capacity,
	}
	require.NoError(t, activityRepo.Create(ctx, activity))
	t.Cleanup(func() {
		_ = activityRepo.Delete(context.Background(), activity.ID)
	})

	notifications := mockUsecase.NewMockNotificationUsecase(t)
	notifications.EXPECT().NotifyJoinConfirmed(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(capacity)
	audit := mockUsecase.NewMockAuditUsecase(t)
	audit.EXPECT().Record(mock.Anything, mock.Anything, entity.AuditJoinActivity, mock.Anything).Return().Times(capacity)

	svc := impl.NewActivityService(impl.ActivityServiceParams{
		TxManager:     postgres.NewTransactionManager(db),
		ActivityRepo:  activityRepo,
		ProfileRepo:   postgres.NewProfileRepository(db),
		Notifications: notifications,
		Audit:         audit,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		joined int
		full   int
	)

	start := make(chan struct{})
	for range players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := svc.JoinActivity(ctx, uuid.New(), activity.ID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				joined++
			} else if errors.Is(err, domainerrors.ErrActivityFull) {
				full++
			} else {
				t.Errorf("unexpected join error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, capacity, joined)
	assert.Equal(t, players-capacity, full)

	stored, err := activityRepo.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Slots)
	assert.Len(t, stored.ParticipantIDs, capacity)
}

func TestActivityRepository_SlotBounds(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	activityRepo := postgres.NewActivityRepository(db)
	activity := &entity.Activity{
		ID:          uuid.New(),
		OrganizerID: uuid.New(),
		Title:       "Tenis dobles",
		Sport:       entity.SportTenis,
		Place:       "Club Providencia",
		Location:    geo.NewGeoPoint(-33.4263, -70.6105),
		Date:        time.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour),
		StartTime:   "09:00",
		EndTime:     "10:30",
		Level:       entity.LevelAdvanced,
		Capacity:    1,
		Slots:       1,
	}
	require.NoError(t, activityRepo.Create(ctx, activity))
	t.Cleanup(func() {
		_ = activityRepo.Delete(context.Background(), activity.ID)
	})

	userID := uuid.New()
	require.NoError(t, activityRepo.AddParticipant(ctx, activity.ID, userID))
	assert.ErrorIs(t, activityRepo.AddParticipant(ctx, activity.ID, userID), repository.ErrDuplicateParticipant)

	require.NoError(t, activityRepo.TakeSlot(ctx, activity.ID))
	assert.ErrorIs(t, activityRepo.TakeSlot(ctx, activity.ID), repository.ErrNoSlotsLeft)

	require.NoError(t, activityRepo.RemoveParticipant(ctx, activity.ID, userID))
	assert.ErrorIs(t, activityRepo.RemoveParticipant(ctx, activity.ID, userID), repository.ErrParticipantNotFound)

	require.NoError(t, activityRepo.ReleaseSlot(ctx, activity.ID))
	assert.ErrorIs(t, activityRepo.ReleaseSlot(ctx, activity.ID), repository.ErrSlotsAtCapacity)
}
