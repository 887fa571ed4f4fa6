package handler

import (
	"net/http"

	"matchdeportivo/internal/delivery/api/response"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the caller's in-app inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// NotificationListResponse is a page of the inbox.
type NotificationListResponse struct {
	Notifications []*entity.Notification `json:"notifications"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// ListNotifications returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return response.Success(c, http.StatusOK, &NotificationListResponse{
		Notifications: notifications,
		Limit:         limit,
		Offset:        offset,
	})
}

// CountUnread returns how many notifications the caller has not read.
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}
	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks the whole inbox as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}
