package model

import (
	"time"

	"matchdeportivo/internal/domain/geo"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table. The check constraint keeps
// slots within [0, capacity] even if an update bypasses the repository.
type ActivityModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(100);not null"`
	Sport       string         `gorm:"type:varchar(30);not null;index"`
	Description string         `gorm:"type:text"`
	Place       string         `gorm:"type:varchar(200);not null"`
	Latitude    geo.Coordinate `gorm:"type:numeric(9,6);not null"`
	Longitude   geo.Coordinate `gorm:"type:numeric(9,6);not null"`
	Date        time.Time      `gorm:"type:date;not null"`
	StartTime   string         `gorm:"type:varchar(5);not null"`
	EndTime     string         `gorm:"type:varchar(5)"`
	Level       string         `gorm:"type:varchar(20);not null"`
	Capacity    int            `gorm:"not null;check:chk_activities_capacity,capacity >= 1"`
	Slots       int            `gorm:"not null;check:chk_activities_slots,slots >= 0 AND slots <= capacity"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time

	Participants []ActivityParticipantModel `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityParticipantModel mirrors the 'activity_participants' roster table.
// The composite primary key makes a second join of the same user fail.
type ActivityParticipantModel struct {
	ActivityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	JoinedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityParticipantModel) TableName() string {
	return "activity_participants"
}
