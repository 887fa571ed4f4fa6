package handler

import (
	"net/http"
	"testing"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	mockUsecase "matchdeportivo/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationHandlerFixtures struct {
	e              *echo.Echo
	userID         uuid.UUID
	notificationUC *mockUsecase.MockNotificationUsecase
}

func createTestNotificationHandler(t *testing.T) notificationHandlerFixtures {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/api/v1/notifications", asUser(userID))
	g.GET("", h.ListNotifications)
	g.GET("/unread-count", h.CountUnread)
	g.POST("/read-all", h.MarkAllRead)
	g.POST("/:id/read", h.MarkRead)

	return notificationHandlerFixtures{e: e, userID: userID, notificationUC: notificationUC}
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	fx := createTestNotificationHandler(t)

	notification := &entity.Notification{ID: uuid.New(), UserID: fx.userID, Type: entity.NotificationJoinConfirmed, Message: "Te uniste a Fútbol 5"}
	fx.notificationUC.EXPECT().
		ListNotifications(mock.Anything, fx.userID, 20, 40).
		Return([]*entity.Notification{notification}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/notifications?limit=20&offset=40", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out NotificationListResponse
	decodeData(t, rec, &out)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, notification.ID, out.Notifications[0].ID)
	assert.Equal(t, 20, out.Limit)
}

func TestNotificationHandler_ListNotifications_BadLimit(t *testing.T) {
	fx := createTestNotificationHandler(t)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/notifications?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_CountUnread(t *testing.T) {
	fx := createTestNotificationHandler(t)

	fx.notificationUC.EXPECT().CountUnread(mock.Anything, fx.userID).Return(int64(3), nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/notifications/unread-count", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]int64
	decodeData(t, rec, &out)
	assert.Equal(t, int64(3), out["unread"])
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	fx := createTestNotificationHandler(t)

	notificationID := uuid.New()
	fx.notificationUC.EXPECT().MarkRead(mock.Anything, fx.userID, notificationID).Return(nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNotificationHandler_MarkRead_OtherUsersNotification(t *testing.T) {
	fx := createTestNotificationHandler(t)

	notificationID := uuid.New()
	fx.notificationUC.EXPECT().
		MarkRead(mock.Anything, fx.userID, notificationID).
		Return(domainerrors.ErrNotificationNotFound)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	fx := createTestNotificationHandler(t)

	fx.notificationUC.EXPECT().MarkAllRead(mock.Anything, fx.userID).Return(int64(5), nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/notifications/read-all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]int64
	decodeData(t, rec, &out)
	assert.Equal(t, int64(5), out["updated"])
}
