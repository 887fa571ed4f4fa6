package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the mobile OS a push token belongs to.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform accepts a platform name in any case.
func ParsePlatform(s string) (Platform, bool) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformIOS, PlatformAndroid:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is a phone registered to receive activity pushes.
// DeviceID is the client's own identifier and is unique per user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BelongsTo reports whether the device is registered to userID.
func (d *UserDevice) BelongsTo(userID uuid.UUID) bool {
	return d != nil && d.UserID == userID
}
