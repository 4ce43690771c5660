package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned by SendSingleNotification when the gateway
// reports the token as permanently invalid (unregistered or malformed).
// Callers disable the device so future runs skip it.
var ErrInvalidToken = errors.New("push token is invalid or unregistered")

// PushSender defines the interface for push notification gateways.
type PushSender interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token.
	// Returns ErrInvalidToken when the gateway reports the token as dead.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
