package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the append-only 'audit_logs' table.
type AuditLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(30);not null"`
	Detail    string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
