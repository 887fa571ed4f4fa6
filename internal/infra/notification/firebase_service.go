// Package notification delivers device push notifications.
package notification

import (
	"context"
	"log/slog"

	"matchdeportivo/config"
	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastSender is the subset of *messaging.Client used to send batches.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    multicastSender
	isInvalid func(error) bool
}

// NewPushNotifier builds the FCM notifier, or a logging notifier when Firebase is not configured.
func NewPushNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushNotifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return NewLogNotifier(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushNotifier, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, isInvalidTokenError), nil
}

func newFirebaseService(client multicastSender, isInvalid func(error) bool) *firebaseService {
	return &firebaseService{
		client:    client,
		isInvalid: isInvalid,
	}
}

// SendBatch sends one multicast message to at most constants.FCMBatchSize tokens
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}

	if len(tokens) > constants.FCMBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.FCMBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushBatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	// Responses are in token order.
	for idx, sendResponse := range response.Responses {
		if idx >= len(tokens) {
			break
		}
		if sendResponse != nil && sendResponse.Error != nil && s.isInvalid(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// isInvalidTokenError reports errors that mean the token will never work again
func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}
