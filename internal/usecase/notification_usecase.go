package usecase

import (
	"context"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryResult is the outcome of writing one fan-out notification.
type DeliveryResult struct {
	UserID         uuid.UUID
	DistanceKm     float64
	NotificationID uuid.UUID // Set when Err is nil.
	Err            error
}

// FanOutReport collects the per-recipient outcomes of a nearby fan-out.
type FanOutReport struct {
	ActivityID uuid.UUID
	Results    []DeliveryResult
	Skipped    []uuid.UUID // Profiles whose stored location could not be read.
	Err        error       // Why no recipient could be computed, if so.
}

// Delivered returns the results that were written.
func (r *FanOutReport) Delivered() []DeliveryResult {
	return r.filter(true)
}

// Failed returns the results whose write failed.
func (r *FanOutReport) Failed() []DeliveryResult {
	return r.filter(false)
}

func (r *FanOutReport) filter(ok bool) []DeliveryResult {
	if r == nil {
		return nil
	}

	out := make([]DeliveryResult, 0, len(r.Results))
	for _, res := range r.Results {
		if (res.Err == nil) == ok {
			out = append(out, res)
		}
	}

	return out
}

// NotificationUsecase defines the interface for in-app notifications.
type NotificationUsecase interface {
	// NotifyNearbyUsers writes one notification per nearby player of the same
	// sport. Individual failures are recorded in the report, never returned.
	NotifyNearbyUsers(ctx context.Context, activity *entity.Activity) *FanOutReport

	// NotifyJoinConfirmed tells a player their join went through.
	NotifyJoinConfirmed(ctx context.Context, userID uuid.UUID, activity *entity.Activity) error

	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
