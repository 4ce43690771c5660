// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for billing-subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for billing-subscription
// database operations.
type SubscriptionRepository interface {
	// UpsertSubscription creates or refreshes the record for (user, provider).
	// Webhook deliveries are retried by providers, so the write is idempotent.
	UpsertSubscription(ctx context.Context, sub *entity.BillingSubscription) error

	// FindSubscriptionByUser retrieves the newest subscription record for a user.
	FindSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.BillingSubscription, error)
}
