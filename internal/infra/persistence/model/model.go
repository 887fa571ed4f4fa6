// Package model holds the GORM persistence models.
package model

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&ActivityModel{},
		&ActivityParticipantModel{},
		&NotificationModel{},
		&UserDeviceModel{},
		&AuditLogModel{},
	}
}
