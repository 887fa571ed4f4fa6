package handler

import (
	"log/slog"
	"net/http"
	"time"

	"matchdeportivo/internal/delivery/api/response"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /api/v1/devices.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// DeviceResponse never echoes the full push token.
type DeviceResponse struct {
	ID        uuid.UUID       `json:"id"`
	DeviceID  string          `json:"device_id"`
	Platform  entity.Platform `json:"platform"`
	TokenHint string          `json:"token_hint"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

const tokenHintLength = 6

func toDeviceResponse(device *entity.UserDevice) DeviceResponse {
	hint := device.FCMToken
	if len(hint) > tokenHintLength {
		hint = "…" + hint[len(hint)-tokenHintLength:]
	}

	return DeviceResponse{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		TokenHint: hint,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

// RegisterDevice handles POST /devices.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDeviceResponse(device))
}

// GetUserDevices handles GET /devices. Only active devices are listed.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		out = append(out, toDeviceResponse(device))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateFCMToken handles PUT /devices/:id/token.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice handles DELETE /devices/:id.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
