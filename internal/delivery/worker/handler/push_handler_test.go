package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/service"
	mockRepo "matchdeportivo/internal/mocks/repository"
	"matchdeportivo/internal/infra/pubsub"
	mockService "matchdeportivo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler    *PushHandler
	notifier   *mockService.MockPushNotifier
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	notifier := mockService.NewMockPushNotifier(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return pushHandlerFixtures{
		handler: &PushHandler{
			verifyToken: verifyPubSubToken,
			logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
			notifier:    notifier,
			deviceRepo:  deviceRepo,
		},
		notifier:   notifier,
		deviceRepo: deviceRepo,
	}
}

func pushBody(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	event.RequestID = "req-futbol"
	msg, err := pubsub.NewPushEnvelope(event, "projects/test/subscriptions/push", time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newEvent(recipients ...uuid.UUID) *service.NotificationEvent {
	ids := make([]string, 0, len(recipients))
	for _, id := range recipients {
		ids = append(ids, id.String())
	}

	return &service.NotificationEvent{
		EventID:      uuid.NewString(),
		ActivityID:   uuid.NewString(),
		Title:        "Nueva actividad cerca",
		Body:         "Fútbol 5 en Parque Sarmiento",
		RecipientIDs: ids,
	}
}

func TestPushHandler_SendsAndDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestPushHandler(t)

	userA, userB := uuid.New(), uuid.New()
	event := newEvent(userA, userB)
	validDevice := &entity.UserDevice{ID: uuid.New(), UserID: userA, FCMToken: "token-a", IsActive: true}
	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: userB, FCMToken: "token-b", IsActive: true}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userA, userB}).
		Return([]*entity.UserDevice{validDevice, staleDevice}, nil)

	fx.notifier.EXPECT().
		SendBatch(mock.Anything, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == event.Title &&
				msg.Data["activity_id"] == event.ActivityID &&
				msg.Data["event_id"] == event.EventID
		})).
		Return(&service.PushBatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-b"}}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateDevice(mock.Anything, staleDevice.ID).
		Return(nil)

	rec := servePush(fx.handler, pushBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SplitsIntoProviderBatches(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	devices := make([]*entity.UserDevice, 0, constants.FCMBatchSize+1)
	for i := range constants.FCMBatchSize + 1 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
		Return(devices, nil)

	var batchSizes []int
	fx.notifier.EXPECT().
		SendBatch(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _ service.PushMessage) (*service.PushBatchResult, error) {
			batchSizes = append(batchSizes, len(tokens))

			return &service.PushBatchResult{SuccessCount: len(tokens)}, nil
		}).
		Times(2)

	rec := servePush(fx.handler, pushBody(t, newEvent(userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{constants.FCMBatchSize, 1}, batchSizes)
}

func TestPushHandler_DeviceLookupFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
		Return(nil, errors.New("connection refused"))

	rec := servePush(fx.handler, pushBody(t, newEvent(userID)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_SendFailureIsAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-a"}}, nil)
	fx.notifier.EXPECT().
		SendBatch(mock.Anything, []string{"token-a"}, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	rec := servePush(fx.handler, pushBody(t, newEvent(userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoRecipients(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newEvent()
	event.RecipientIDs = []string{"not-a-uuid"}

	rec := servePush(fx.handler, pushBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	fx := createTestPushHandler(t)

	rec := servePush(fx.handler, `{"message":{"data":"%%%not-base64"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RejectsUnauthenticatedPush(t *testing.T) {
	fx := createTestPushHandler(t)
	fx.handler.verifyPushAuth = true

	rec := servePush(fx.handler, pushBody(t, newEvent(uuid.New())))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCollectTokens_SkipsEmptyAndDuplicates(t *testing.T) {
	a := &entity.UserDevice{ID: uuid.New(), FCMToken: "token-a"}
	dup := &entity.UserDevice{ID: uuid.New(), FCMToken: "token-a"}
	empty := &entity.UserDevice{ID: uuid.New()}

	tokens, byToken := collectTokens([]*entity.UserDevice{a, nil, dup, empty})
	assert.Equal(t, []string{"token-a"}, tokens)
	assert.Same(t, a, byToken["token-a"])
}
