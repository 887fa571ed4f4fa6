// Package service declares the domain ports implemented in internal/infra:
// hashing, tokens, QR codes, event publishing and device push.
package service

import (
	"context"
)

// PushMessage is the content of a device push.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult summarizes one multicast send.
type PushBatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as invalid or unregistered.
}

// PushNotifier delivers push notifications to device tokens.
type PushNotifier interface {
	// SendBatch sends one message to up to constants.FCMBatchSize tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)
}
