package impl

import (
	"context"
	"testing"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/repository"
	mockRepo "matchdeportivo/internal/mocks/repository"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "fcm-token-cancha",
		DeviceID: "pixel-7",
		Platform: "Android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "old-token", DeviceID: "iphone-15", IsActive: false}
	refreshed := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "new-token", DeviceID: "iphone-15", IsActive: true}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "iphone-15",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, refreshed, device)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	deviceInfo := &usecase.DeviceInfo{FCMToken: "token", DeviceID: "pixel-7", Platform: "android"}

	t.Run("find error", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.deviceRepo.EXPECT().
			FindDevicesByUser(ctx, userID).
			Return(nil, errors.New("database error"))

		device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
		assert.Nil(t, device)
		assert.ErrorContains(t, err, "failed to find devices by user")
	})

	t.Run("duplicate device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		fx.deviceRepo.EXPECT().
			CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
			Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
		assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyExists))
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		found     *entity.UserDevice
		findErr   error
		updateErr error
		wantErr   error
		wantMsg   string
	}{
		{name: "success", found: &entity.UserDevice{UserID: ownerID}},
		{name: "not found", findErr: repository.ErrDeviceNotFound, wantErr: ErrDeviceNotFound},
		{name: "other owner", found: &entity.UserDevice{UserID: uuid.New()}, wantErr: ErrDeviceUnauthorized},
		{name: "find error", findErr: errors.New("database error"), wantMsg: "failed to find device by ID"},
		{name: "update error", found: &entity.UserDevice{UserID: ownerID}, updateErr: errors.New("database error"), wantMsg: "failed to update FCM token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			deviceID := uuid.New()

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)
			if tt.found != nil && tt.found.UserID == ownerID {
				fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(tt.updateErr)
			}

			err := fx.service.UpdateFCMToken(ctx, ownerID, deviceID, "new-token")
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name          string
		found         *entity.UserDevice
		findErr       error
		deactivateErr error
		wantErr       error
		wantMsg       string
	}{
		{name: "success", found: &entity.UserDevice{UserID: ownerID, IsActive: true}},
		{name: "not found", findErr: repository.ErrDeviceNotFound, wantErr: ErrDeviceNotFound},
		{name: "other owner", found: &entity.UserDevice{UserID: uuid.New()}, wantErr: ErrDeviceUnauthorized},
		{name: "deactivate error", found: &entity.UserDevice{UserID: ownerID}, deactivateErr: errors.New("database error"), wantMsg: "failed to deactivate device"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			deviceID := uuid.New()

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)
			if tt.found != nil && tt.found.UserID == ownerID {
				fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID).Return(tt.deactivateErr)
			}

			err := fx.service.DeactivateDevice(ctx, ownerID, deviceID)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "pc",
		Platform: "windows",
	})
	assert.Equal(t, ErrUnknownPlatform, err)
}
