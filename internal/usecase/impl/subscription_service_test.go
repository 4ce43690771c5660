package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	mockRepo "padpro/internal/mocks/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// subscriptionServiceFixtures holds all test dependencies for billing tests.
type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	service := NewSubscriptionService(subscriptionRepo, newDiscardLogger())

	return subscriptionServiceFixtures{
		service:          service,
		subscriptionRepo: subscriptionRepo,
	}
}

func TestSubscriptionService_ApplyWebhook(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SubscriptionWebhookInput{
		UserID:           userID,
		Provider:         entity.BillingProviderStripe,
		ProviderRef:      "sub_1a2b3c",
		Plan:             "annual",
		Status:           entity.BillingStatusActive,
		CurrentPeriodEnd: "2027-08-29T00:00:00Z",
	}

	fx.subscriptionRepo.EXPECT().
		UpsertSubscription(ctx, mock.AnythingOfType("*entity.BillingSubscription")).
		RunAndReturn(func(_ context.Context, subscription *entity.BillingSubscription) error {
			assert.Equal(t, userID, subscription.UserID)
			assert.Equal(t, "sub_1a2b3c", subscription.ProviderRef)
			assert.Equal(t, time.Date(2027, 8, 29, 0, 0, 0, 0, time.UTC), subscription.CurrentPeriodEnd)

			return nil
		})

	subscription, err := fx.service.ApplyWebhook(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.BillingStatusActive, subscription.Status)
	assert.True(t, subscription.IsCurrent(time.Now()))
}

func TestSubscriptionService_ApplyWebhook_Invalid(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.SubscriptionWebhookInput
	}{
		{
			name: "unknown provider",
			input: &usecase.SubscriptionWebhookInput{
				UserID:           uuid.New(),
				Provider:         "paypal",
				Status:           entity.BillingStatusActive,
				CurrentPeriodEnd: "2027-08-29T00:00:00Z",
			},
		},
		{
			name: "unknown status",
			input: &usecase.SubscriptionWebhookInput{
				UserID:           uuid.New(),
				Provider:         entity.BillingProviderApple,
				Status:           "paused",
				CurrentPeriodEnd: "2027-08-29T00:00:00Z",
			},
		},
		{
			name: "bad period end",
			input: &usecase.SubscriptionWebhookInput{
				UserID:           uuid.New(),
				Provider:         entity.BillingProviderApple,
				Status:           entity.BillingStatusCanceled,
				CurrentPeriodEnd: "next month",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.ApplyWebhook(ctx, tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSubscriptionService_GetUserSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	subscription := &entity.BillingSubscription{ID: uuid.New(), UserID: userID}

	fx.subscriptionRepo.EXPECT().
		FindSubscriptionByUser(ctx, userID).
		Return(subscription, nil)

	got, err := fx.service.GetUserSubscription(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, subscription, got)
}

func TestSubscriptionService_GetUserSubscription_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindSubscriptionByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	_, err := fx.service.GetUserSubscription(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}
