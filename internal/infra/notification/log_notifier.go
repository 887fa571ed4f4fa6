package notification

import (
	"context"
	"log/slog"

	"matchdeportivo/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs pushes instead of sending them.
func NewLogNotifier(logger *slog.Logger) service.PushNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	n.logger.InfoContext(ctx, "Push notification (not sent)",
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushBatchResult{SuccessCount: len(tokens), InvalidTokens: []string{}}, nil
}
