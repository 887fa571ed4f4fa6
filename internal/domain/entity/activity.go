package entity

import (
	"slices"
	"time"

	"matchdeportivo/internal/domain/geo"

	"github.com/google/uuid"
)

// Activity is a pickup game organized by a user.
type Activity struct {
	ID             uuid.UUID    `json:"id"`              // The Global Unique Identifier (GUID) for the activity.
	OrganizerID    uuid.UUID    `json:"organizer_id"`    // The user who created the activity.
	Title          string       `json:"title"`           // Short title.
	Sport          string       `json:"sport"`           // Sport tag, see Sports.
	Description    string       `json:"description"`     // Free-text description.
	Place          string       `json:"place"`           // Human readable meeting place.
	Location       geo.GeoPoint `json:"location"`        // Meeting point. Always set on creation.
	Date           time.Time    `json:"date"`            // Day the activity happens (date part only).
	StartTime      string       `json:"start_time"`      // Start time as HH:MM.
	EndTime        string       `json:"end_time"`        // End time as HH:MM. Empty when open-ended.
	Level          Level        `json:"level"`           // Expected skill level.
	Capacity       int          `json:"capacity"`        // Maximum number of participants.
	Slots          int          `json:"slots"`           // Remaining places, 0 <= Slots <= Capacity.
	ParticipantIDs []uuid.UUID  `json:"participant_ids"` // Users who joined.
	CreatedAt      time.Time    `json:"created_at"`      // Timestamp of when this activity was created.
	UpdatedAt      time.Time    `json:"updated_at"`      // Timestamp of the last modification.
}

// IsOrganizer reports whether userID organizes the activity.
func (a *Activity) IsOrganizer(userID uuid.UUID) bool {
	return a.OrganizerID == userID
}

// HasParticipant reports whether userID already joined.
func (a *Activity) HasParticipant(userID uuid.UUID) bool {
	return slices.Contains(a.ParticipantIDs, userID)
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	Sport string // Case-insensitive sport tag. Empty means all sports.
}
