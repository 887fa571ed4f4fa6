package service

import (
	"context"
	"strconv"
)

// NotificationEvent asks the push worker to deliver device notifications for
// in-app notifications that were already written.
type NotificationEvent struct {
	RequestID    string   `json:"request_id,omitempty"`
	EventID      string   `json:"event_id"`
	ActivityID   string   `json:"activity_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	RecipientIDs []string `json:"recipient_ids"`
}

// Split returns the event unchanged when it has at most max recipients, and
// otherwise copies of it carrying max recipients each. Copies get the event ID
// suffixed with their part number.
func (e *NotificationEvent) Split(max int) []*NotificationEvent {
	if max <= 0 || len(e.RecipientIDs) <= max {
		return []*NotificationEvent{e}
	}

	parts := make([]*NotificationEvent, 0, (len(e.RecipientIDs)+max-1)/max)
	for start := 0; start < len(e.RecipientIDs); start += max {
		part := *e
		part.EventID = e.EventID + "-" + strconv.Itoa(len(parts)+1)
		part.RecipientIDs = e.RecipientIDs[start:min(start+max, len(e.RecipientIDs))]
		parts = append(parts, &part)
	}

	return parts
}

// EventPublisher hands notification events to the push worker.
type EventPublisher interface {
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	Close() error
}
