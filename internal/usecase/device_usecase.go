package usecase

import (
	"context"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client sends when it registers for pushes.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages the devices push notifications are delivered to.
// Every operation is scoped to the devices of userID.
type DeviceUsecase interface {
	// RegisterDevice creates the device, or refreshes the token of the one
	// already registered under the same DeviceID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
