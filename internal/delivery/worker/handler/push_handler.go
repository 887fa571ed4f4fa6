package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"matchdeportivo/config"
	deliverycontext "matchdeportivo/internal/delivery/context"
	"matchdeportivo/internal/domain/constants"
	"matchdeportivo/internal/domain/entity"
	"matchdeportivo/internal/domain/repository"
	"matchdeportivo/internal/domain/service"
	"matchdeportivo/internal/errors"
	"matchdeportivo/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// pushSummary counts what happened to one event.
type pushSummary struct {
	Devices     int
	Sent        int
	Failed      int
	Deactivated int
}

// PushHandler delivers device pushes for in-app notifications that were already written.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(*http.Request) error
	logger         *slog.Logger
	notifier       service.PushNotifier
	deviceRepo     repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Notifier   service.PushNotifier
	DeviceRepo repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions carry an OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		notifier:       params.Notifier,
		deviceRepo:     params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; every other outcome is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.Event()
	if err != nil {
		h.logger.Error("[Worker] Malformed notification event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger.With(
		slog.String("event_id", event.EventID),
		slog.String("activity_id", event.ActivityID),
	))

	reqLogger.Info("[Worker] Processing notification event",
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	summary, err := h.processEvent(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process notification event",
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsRetryable(err)),
		)
		if errors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Notification event processed",
		slog.Int("devices", summary.Devices),
		slog.Int("total_sent", summary.Sent),
		slog.Int("total_failed", summary.Failed),
		slog.Int("deactivated_devices", summary.Deactivated),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the request ID from message attributes, the event, the
// request context, or generates a new one, in that order.
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.NotificationEvent) string {
	if requestID := envelope.RequestID(); requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.NotificationEvent) (pushSummary, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	recipientIDs := parseRecipientIDs(event.RecipientIDs)
	if len(recipientIDs) < len(event.RecipientIDs) {
		logger.Warn("[Worker] Dropped malformed recipient IDs",
			slog.Int("dropped", len(event.RecipientIDs)-len(recipientIDs)),
		)
	}
	if len(recipientIDs) == 0 {
		return pushSummary{}, nil
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUsers(ctx, recipientIDs)
	if err != nil {
		return pushSummary{}, errors.Retryable(err)
	}

	tokens, deviceByToken := collectTokens(devices)
	summary := pushSummary{Devices: len(tokens)}
	if len(tokens) == 0 {
		return summary, nil
	}

	msg := service.PushMessage{
		Title: event.Title,
		Body:  event.Body,
		Data: map[string]string{
			"activity_id": event.ActivityID,
			"event_id":    event.EventID,
		},
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += constants.FCMBatchSize {
		batch := tokens[start:min(start+constants.FCMBatchSize, len(tokens))]

		result, sendErr := h.notifier.SendBatch(ctx, batch, msg)
		if sendErr != nil {
			// The in-app notifications already exist, a failed push is not redelivered.
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			summary.Failed += len(batch)

			continue
		}

		summary.Sent += result.SuccessCount
		summary.Failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	summary.Deactivated = h.deactivateInvalidDevices(ctx, invalidTokens, deviceByToken)

	return summary, nil
}

// deactivateInvalidDevices stops pushing to tokens the provider rejected.
func (h *PushHandler) deactivateInvalidDevices(ctx context.Context, invalidTokens []string, deviceByToken map[string]*entity.UserDevice) int {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	deactivated := 0
	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := h.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		deactivated++
	}

	return deactivated
}

func parseRecipientIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, idStr := range raw {
		id, err := uuid.Parse(idStr)
		if err != nil || id == uuid.Nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// collectTokens returns the distinct non-empty tokens in device order.
func collectTokens(devices []*entity.UserDevice) ([]string, map[string]*entity.UserDevice) {
	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		if device == nil || device.FCMToken == "" {
			continue
		}
		if _, seen := deviceByToken[device.FCMToken]; seen {
			continue
		}
		deviceByToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	return tokens, deviceByToken
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
