package handler

import (
	"net/http"
	"time"

	"matchdeportivo/internal/delivery/api/middleware"
	"matchdeportivo/internal/delivery/api/response"
	deliverycontext "matchdeportivo/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TestHandler serves diagnostic endpoints mounted only when testRoutes.enabled is set.
type TestHandler struct {
	now func() time.Time
}

func NewTestHandler() *TestHandler {
	return &TestHandler{now: time.Now}
}

// Ping answers without authentication.
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":      "ok",
		"request_id":  deliverycontext.GetRequestID(c),
		"server_time": h.now().UTC().Format(time.RFC3339),
	})
}

// WhoAmI echoes the identity the auth middleware attached to the request.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":    userID,
		"roles":      roles,
		"request_id": deliverycontext.GetRequestID(c),
	})
}
