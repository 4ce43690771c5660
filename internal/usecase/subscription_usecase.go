package usecase

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionWebhookInput is the normalized shape of a billing provider's
// webhook notification. Provider-side reconciliation happens upstream; this
// input only carries the resulting state.
type SubscriptionWebhookInput struct {
	UserID           uuid.UUID `json:"user_id"`
	Provider         string    `json:"provider"` // stripe, apple
	ProviderRef      string    `json:"provider_ref"`
	Plan             string    `json:"plan"`
	Status           string    `json:"status"` // active, past_due, canceled
	CurrentPeriodEnd string    `json:"current_period_end"` // RFC 3339
}

// SubscriptionUsecase defines the interface for billing-subscription state.
type SubscriptionUsecase interface {
	// ApplyWebhook upserts the subscription state reported by a provider
	// webhook. Providers retry deliveries, so the operation is idempotent.
	ApplyWebhook(ctx context.Context, input *SubscriptionWebhookInput) (*entity.BillingSubscription, error)

	// GetUserSubscription retrieves the user's current subscription record.
	GetUserSubscription(ctx context.Context, userID uuid.UUID) (*entity.BillingSubscription, error)
}
