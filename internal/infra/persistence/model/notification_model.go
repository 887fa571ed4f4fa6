package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	ActivityID *uuid.UUID `gorm:"type:uuid;index"`
	Type       string     `gorm:"type:varchar(30);not null;check:chk_notifications_type,type IN ('NEW_NEARBY_ACTIVITY','JOIN_CONFIRMED')"`
	Message    string     `gorm:"type:text;not null"`
	Read       bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time  `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
