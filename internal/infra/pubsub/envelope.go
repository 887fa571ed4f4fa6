package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"matchdeportivo/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published notification event.
const (
	AttrEventID    = "event_id"
	AttrActivityID = "activity_id"
	AttrRequestID  = "request_id"
)

// PushMessage is the message part of a push request.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// PushEnvelope is the JSON body a Pub/Sub push subscription POSTs to its endpoint.
// Reference: https://cloud.google.com/pubsub/docs/push#receive_push
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// NewPushEnvelope wraps event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *service.NotificationEvent, subscription string, publishTime time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			PublishTime: publishTime.UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// Event decodes the notification event carried in the message data.
func (e *PushEnvelope) Event() (*service.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse notification event")
	}

	return &event, nil
}

// RequestID returns the request_id attribute, if any.
func (e *PushEnvelope) RequestID() string {
	return e.Message.Attributes[AttrRequestID]
}

func eventAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID:    event.EventID,
		AttrActivityID: event.ActivityID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
