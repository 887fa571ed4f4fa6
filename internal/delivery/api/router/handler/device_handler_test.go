package handler

import (
	"net/http"
	"testing"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	mockUsecase "matchdeportivo/internal/mocks/usecase"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type deviceHandlerFixtures struct {
	e        *echo.Echo
	userID   uuid.UUID
	deviceUC *mockUsecase.MockDeviceUsecase
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: testLogger()})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/api/v1/devices", asUser(userID))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetUserDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return deviceHandlerFixtures{e: e, userID: userID, deviceUC: deviceUC}
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	fx := createTestDeviceHandler(t)

	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, fx.userID, &usecase.DeviceInfo{FCMToken: "fcm-token", DeviceID: "pixel-7", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: fx.userID, FCMToken: "fcm-token", IsActive: true}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/devices", `{"fcm_token":"fcm-token","device_id":"pixel-7","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestDeviceHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/devices", `{"fcm_token":"fcm-token","device_id":"pc","platform":"windows"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"platform"`)
}

func TestDeviceHandler_DeactivateDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceHandler(t)

	deviceID := uuid.New()
	fx.deviceUC.EXPECT().DeactivateDevice(mock.Anything, fx.userID, deviceID).Return(domainerrors.ErrDeviceNotFound)

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceHandler_GetUserDevices_HidesToken(t *testing.T) {
	fx := createTestDeviceHandler(t)

	fx.deviceUC.EXPECT().GetUserDevices(mock.Anything, fx.userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: fx.userID, FCMToken: "dGhpcy1pcy1hLWxvbmctdG9rZW4", DeviceID: "pixel-7", Platform: entity.PlatformAndroid, IsActive: true},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/devices", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var devices []DeviceResponse
	decodeData(t, rec, &devices)
	assert.Len(t, devices, 1)
	assert.Equal(t, "…G9rZW4", devices[0].TokenHint)
	assert.NotContains(t, rec.Body.String(), "dGhpcy1pcy1hLWxvbmctdG9rZW4")
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	fx := createTestDeviceHandler(t)

	deviceID := uuid.New()
	fx.deviceUC.EXPECT().UpdateFCMToken(mock.Anything, fx.userID, deviceID, "fresh-token").Return(nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", `{"fcm_token":"fresh-token"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(fx.e, http.MethodPut, "/api/v1/devices/not-a-uuid/token", `{"fcm_token":"fresh-token"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
