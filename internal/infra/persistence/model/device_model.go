package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the user_devices table. A client device_id is unique per
// user; the FCM token itself is not, since providers reuse tokens after reinstalls.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device;index:idx_user_devices_active,priority:1"`
	FCMToken  string    `gorm:"type:text;not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform  string    `gorm:"type:varchar(16);not null;check:chk_user_devices_platform,platform IN ('ios','android')"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_user_devices_active,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
