package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names a user action recorded in the audit log.
type AuditAction string

const (
	AuditLogin          AuditAction = "login"
	AuditCreateActivity AuditAction = "create_activity"
	AuditJoinActivity   AuditAction = "join_activity"
	AuditLeaveActivity  AuditAction = "leave_activity"
)

// AuditLog is an append-only record of a user action.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id"`
	Action    AuditAction `json:"action"`
	Detail    string      `json:"detail"`
	CreatedAt time.Time   `json:"created_at"`
}
