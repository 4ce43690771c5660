package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// NewSubscriptionService creates a new billing-subscription service instance
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository, logger *slog.Logger) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// ApplyWebhook upserts the subscription state reported by a provider webhook.
func (s *subscriptionService) ApplyWebhook(ctx context.Context, input *usecase.SubscriptionWebhookInput) (*entity.BillingSubscription, error) {
	if input.Provider != entity.BillingProviderStripe && input.Provider != entity.BillingProviderApple {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown billing provider").WrapMessage("apply webhook failed")
	}

	switch input.Status {
	case entity.BillingStatusActive, entity.BillingStatusPastDue, entity.BillingStatusCanceled:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown subscription status").WrapMessage("apply webhook failed")
	}

	periodEnd, err := time.Parse(time.RFC3339, input.CurrentPeriodEnd)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("current_period_end must be RFC 3339").WrapMessage("apply webhook failed")
	}

	subscription := &entity.BillingSubscription{
		ID:               uuid.New(),
		UserID:           input.UserID,
		Provider:         input.Provider,
		ProviderRef:      input.ProviderRef,
		Plan:             input.Plan,
		Status:           input.Status,
		CurrentPeriodEnd: periodEnd,
		UpdatedAt:        time.Now(),
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	s.logger.Info("Applied subscription webhook",
		slog.String("user_id", input.UserID.String()),
		slog.String("provider", input.Provider),
		slog.String("status", input.Status),
	)

	return subscription, nil
}

// GetUserSubscription retrieves the user's current subscription record.
func (s *subscriptionService) GetUserSubscription(ctx context.Context, userID uuid.UUID) (*entity.BillingSubscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound.WrapMessage("get subscription failed")
		}

		return nil, fmt.Errorf("failed to find subscription by user: %w", err)
	}

	return subscription, nil
}
