package model

import (
	"time"

	"matchdeportivo/internal/domain/geo"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Roles        string    `gorm:"type:varchar(100);not null;default:'player'"` // Comma separated role names.
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id.
// Coordinates are numeric(9,6) and nullable; absence is never stored as 0.
type ProfileModel struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Nickname       string         `gorm:"type:varchar(50)"`
	Icon           string         `gorm:"type:varchar(100)"`
	PreferredSport string         `gorm:"type:varchar(30);index"`
	Level          string         `gorm:"type:varchar(20)"`
	Schedule       string         `gorm:"type:varchar(100)"`
	LocationLabel  string         `gorm:"type:varchar(100)"`
	Latitude       geo.Coordinate `gorm:"type:numeric(9,6)"`
	Longitude      geo.Coordinate `gorm:"type:numeric(9,6)"`
	RadiusKm       *int           `gorm:"check:chk_profiles_radius,radius_km BETWEEN 1 AND 50"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
