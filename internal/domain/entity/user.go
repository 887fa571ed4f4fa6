// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"matchdeportivo/internal/domain/geo"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login handle.
	Email        string    // The user's contact email.
	Name         string    // The user's display name or real name.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized.
	Roles        Roles     // Roles granted to the user.
	Profile      *Profile  // Sports profile. Created alongside the account.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the sports preferences and home location of a user.
// Location and radius are optional; absence is never encoded as zero.
type Profile struct {
	UserID         uuid.UUID    `json:"user_id"`         // Foreign Key that links this profile to a core User entity.
	Nickname       string       `json:"nickname"`        // Public nickname shown to other players.
	Icon           string       `json:"icon"`            // Avatar icon identifier.
	PreferredSport string       `json:"preferred_sport"` // Sport tag used for nearby activity notifications. Empty means none.
	Level          Level        `json:"level"`           // Self-assessed skill level. Empty means not set.
	Schedule       string       `json:"schedule"`        // Free-text preferred playing hours.
	LocationLabel  string       `json:"location_label"`  // Human readable home location.
	Location       geo.GeoPoint `json:"location"`        // Home location. Either side may be absent.
	RadiusKm       *int         `json:"radius_km"`       // Search radius in km (1-50). Nil means not configured.
	UpdatedAt      time.Time    `json:"updated_at"`      // Timestamp of the last modification to this profile.
}
