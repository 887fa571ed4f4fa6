package impl

import (
	"context"
	"time"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound     = domainerrors.ErrDeviceNotFound
	ErrDeviceUnauthorized = domainerrors.ErrForbidden.WithDetails("el dispositivo pertenece a otro usuario")
	ErrUnknownPlatform    = domainerrors.ErrValidationFailed.WithDetails("la plataforma debe ser ios o android")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice registers a push device. A device_id the user registered
// before keeps its row: the token is replaced and the device reactivated.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform, ok := entity.ParsePlatform(deviceInfo.Platform)
	if !ok {
		return nil, ErrUnknownPlatform
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	if existing := findByClientID(devices, deviceInfo.DeviceID); existing != nil {
		return s.refreshDevice(ctx, existing, deviceInfo.FCMToken)
	}

	now := s.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

func (s *deviceService) refreshDevice(ctx context.Context, device *entity.UserDevice, fcmToken string) (*entity.UserDevice, error) {
	// UpdateFCMToken also sets is_active
	if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, fcmToken); err != nil {
		return nil, errors.Wrap(err, "failed to update FCM token")
	}

	refreshed, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return refreshed, nil
}

func findByClientID(devices []*entity.UserDevice, clientID string) *entity.UserDevice {
	for _, device := range devices {
		if device != nil && device.DeviceID == clientID {
			return device
		}
	}

	return nil
}

// UpdateFCMToken replaces the push token of one of the user's devices
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken), "failed to update FCM token")
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to a device. The row is kept so the same
// device_id can register again.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.DeactivateDevice(ctx, deviceID), "failed to deactivate device")
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if !device.BelongsTo(userID) {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}
