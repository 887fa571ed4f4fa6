package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	// NotificationNewNearbyActivity is sent to players near a newly created activity of their sport.
	NotificationNewNearbyActivity NotificationType = "NEW_NEARBY_ACTIVITY"
	// NotificationJoinConfirmed is sent to a player after joining an activity.
	NotificationJoinConfirmed NotificationType = "JOIN_CONFIRMED"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID         uuid.UUID        `json:"id"`          // The Global Unique Identifier (GUID) for the notification.
	UserID     uuid.UUID        `json:"user_id"`     // Recipient.
	ActivityID *uuid.UUID       `json:"activity_id"` // Related activity, if any.
	Type       NotificationType `json:"type"`        // Notification kind.
	Message    string           `json:"message"`     // Rendered message text.
	Read       bool             `json:"read"`        // Whether the recipient has seen it.
	CreatedAt  time.Time        `json:"created_at"`  // Timestamp of when the notification was created.
}
