package postgres

import (
	"context"

	"matchdeportivo/internal/domain/entity"
	domainerrors "matchdeportivo/internal/domain/errors"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientChunkSize keeps IN lists well below the bind parameter limit.
const recipientChunkSize = 1000

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateDevice
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("invalid platform")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser includes inactive devices, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := repo.findDevices(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("created_at DESC")
	})

	return devices, errors.Wrap(err, "failed to find devices by user")
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := repo.findDevices(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND is_active", userID).Order("created_at DESC")
	})

	return devices, errors.Wrap(err, "failed to find active devices by user")
}

// FindActiveDevicesByUsers looks up push recipients in chunks of recipientChunkSize.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	devices := make([]*entity.UserDevice, 0, len(userIDs))

	for start := 0; start < len(userIDs); start += recipientChunkSize {
		chunk := userIDs[start:min(start+recipientChunkSize, len(userIDs))]

		found, err := repo.findDevices(ctx, func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id IN ? AND is_active", chunk)
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active devices by users")
		}
		devices = append(devices, found...)
	}

	return devices, nil
}

func (repo *deviceRepository) findDevices(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).Scopes(scope).Find(&deviceModels).Error; err != nil {
		return nil, err
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken replaces the FCM token of a device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	return deviceUpdateResult(result, "failed to update FCM token")
}

// DeactivateDevice stops pushes to a device without removing it.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	return deviceUpdateResult(result, "failed to deactivate device")
}

func deviceUpdateResult(result *gorm.DB, msg string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
