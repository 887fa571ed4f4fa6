package handler

import (
	"net/http"

	"matchdeportivo/internal/delivery/api/response"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
	UserUC  usecase.UserUsecase
}

// AdminHandler serves admin-only endpoints.
type AdminHandler struct {
	auditUC usecase.AuditUsecase
	userUC  usecase.UserUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		auditUC: params.AuditUC,
		userUC:  params.UserUC,
	}
}

// ListUsers returns a page of accounts with their profiles.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":  out,
		"limit":  limit,
		"offset": offset,
	})
}

// ListAuditLogs returns the audit trail, newest first.
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.auditUC.ListLogs(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if logs == nil {
		logs = []*entity.AuditLog{}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}
