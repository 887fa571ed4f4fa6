package repository

import (
	"context"
	"errors"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence for in-app notifications.
type NotificationRepository interface {
	// Create persists a single notification. ID and CreatedAt are filled in.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser lists a user's notifications newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns how many unread notifications a user has.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flags every notification of a user as read and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
