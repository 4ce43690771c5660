package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	mockRepo "padpro/internal/mocks/repository"
	mockSvc "padpro/internal/mocks/service"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for fan-out tests.
type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	deliveryRepo *mockRepo.MockDeliveryRepository
	alertRepo    *mockRepo.MockAlertRepository
	pushSender   *mockSvc.MockPushSender
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	service := NewNotificationService(deviceRepo, deliveryRepo, alertRepo, pushSender, newTestAlertsConfig(), newDiscardLogger())

	return notificationServiceFixtures{
		service:      service,
		deviceRepo:   deviceRepo,
		deliveryRepo: deliveryRepo,
		alertRepo:    alertRepo,
		pushSender:   pushSender,
	}
}

func testDevice(userID uuid.UUID) *entity.PushDevice {
	return &entity.PushDevice{
		ID:                 uuid.New(),
		UserID:             userID,
		Token:              "fcm-token-" + uuid.NewString(),
		Platform:           "ios",
		IsEnabled:          true,
		PriceAlertsEnabled: true,
	}
}

func testSummaryInput(userID uuid.UUID, throttle bool) *usecase.SummaryInput {
	return &usecase.SummaryInput{
		UserID: userID,
		LatestAlert: &entity.PriceAdjustmentAlert{
			ID:            uuid.New(),
			UserID:        userID,
			OriginalPrice: decimal.NewFromFloat(12.99),
			LowerPrice:    decimal.NewFromFloat(9.99),
		},
		AlertCount:   1,
		TotalSavings: decimal.NewFromFloat(3.00),
		Throttle:     throttle,
	}
}

func TestNotificationService_SendSummary_OnePushPerDevice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := testDevice(userID)
	second := testDevice(userID)
	input := testSummaryInput(userID, true)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return([]*entity.PushDevice{first, second}, nil)

	fx.deliveryRepo.EXPECT().
		ExistsDeliverySince(ctx, mock.AnythingOfType("uuid.UUID"), entity.PushKindPriceAdjustmentSummary, mock.AnythingOfType("time.Time")).
		Return(false, nil).
		Times(2)

	var recorded []*entity.PushDelivery
	fx.deliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.PushDelivery")).
		RunAndReturn(func(_ context.Context, delivery *entity.PushDelivery) error {
			recorded = append(recorded, delivery)

			return nil
		}).
		Times(2)

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, first.Token, "Price adjustment available", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, second.Token, "Price adjustment available", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	require.Len(t, recorded, 2)
	for _, delivery := range recorded {
		assert.Equal(t, "latest_alert:"+input.LatestAlert.ID.String(), delivery.DedupeKey)
		assert.Equal(t, entity.PushStatusSent, delivery.Status)
		assert.Equal(t, userID, delivery.UserID)
	}
}

func TestNotificationService_SendSummary_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return(nil, nil)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, testSummaryInput(userID, true))
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestNotificationService_SendSummary_DuplicateDeliverySkipsSend(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return([]*entity.PushDevice{device}, nil)

	fx.deliveryRepo.EXPECT().
		ExistsDeliverySince(ctx, device.ID, entity.PushKindPriceAdjustmentSummary, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	// The ledger already holds this dedupe key for this device, so the gateway
	// is never called.
	fx.deliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.PushDelivery")).
		Return(repository.ErrDuplicateDelivery)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, testSummaryInput(userID, true))
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestNotificationService_SendSummary_ThrottledDeviceSkippedWithoutLedgerWrite(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return([]*entity.PushDevice{device}, nil)

	// A recent summary exists. No CreateDelivery call: the dedupe slot stays
	// free for a later batch outside the throttle window.
	fx.deliveryRepo.EXPECT().
		ExistsDeliverySince(ctx, device.ID, entity.PushKindPriceAdjustmentSummary, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, testSummaryInput(userID, true))
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestNotificationService_SendSummary_ThrottleBypassed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return([]*entity.PushDevice{device}, nil)

	// Throttle=false goes straight to the ledger without an ExistsDeliverySince
	// lookup.
	fx.deliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.PushDelivery")).
		Return(nil)

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, device.Token, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, testSummaryInput(userID, false))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestNotificationService_SendSummary_InvalidTokenDisablesDevice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, userID).
		Return([]*entity.PushDevice{device}, nil)

	fx.deliveryRepo.EXPECT().
		ExistsDeliverySince(ctx, device.ID, entity.PushKindPriceAdjustmentSummary, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	var deliveryID uuid.UUID
	fx.deliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.PushDelivery")).
		RunAndReturn(func(_ context.Context, delivery *entity.PushDelivery) error {
			deliveryID = delivery.ID

			return nil
		})

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, device.Token, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(service.ErrInvalidToken)

	fx.deliveryRepo.EXPECT().
		UpdateDeliveryStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.PushStatusFailed, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ string, _ string) error {
			assert.Equal(t, deliveryID, id)

			return nil
		})

	fx.deviceRepo.EXPECT().
		DisableDevice(ctx, device.ID).
		Return(nil)

	sent, err := fx.service.SendPriceAdjustmentSummary(ctx, testSummaryInput(userID, true))
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestNotificationService_SummarizeNewAlerts_GroupsByUser(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	older := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        alice,
		OriginalPrice: decimal.NewFromFloat(12.99),
		LowerPrice:    decimal.NewFromFloat(9.99),
		CreatedAt:     time.Now().Add(-time.Hour),
	}
	newer := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        alice,
		OriginalPrice: decimal.NewFromFloat(25.00),
		LowerPrice:    decimal.NewFromFloat(20.00),
		CreatedAt:     time.Now(),
	}
	bobs := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        bob,
		OriginalPrice: decimal.NewFromFloat(8.49),
		LowerPrice:    decimal.NewFromFloat(6.99),
		CreatedAt:     time.Now(),
	}

	ids := []uuid.UUID{older.ID, newer.ID, bobs.ID}

	fx.alertRepo.EXPECT().
		FindAlertsByIDs(ctx, ids).
		Return([]*entity.PriceAdjustmentAlert{older, newer, bobs}, nil)

	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, alice).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) ([]*entity.PushDevice, error) {
			return []*entity.PushDevice{testDevice(alice)}, nil
		})
	fx.deviceRepo.EXPECT().
		FindPriceAlertDevices(ctx, bob).
		Return(nil, nil)

	fx.deliveryRepo.EXPECT().
		ExistsDeliverySince(ctx, mock.AnythingOfType("uuid.UUID"), entity.PushKindPriceAdjustmentSummary, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	var aliceDelivery *entity.PushDelivery
	fx.deliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.PushDelivery")).
		RunAndReturn(func(_ context.Context, delivery *entity.PushDelivery) error {
			aliceDelivery = delivery

			return nil
		})

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, mock.AnythingOfType("string"), "Price adjustment available", "You have 2 new price adjustments worth $8.00", mock.Anything).
		Return(nil)

	err := fx.service.SummarizeNewAlerts(ctx, ids)
	require.NoError(t, err)

	// The newest alert anchors the dedupe key for Alice's batch.
	require.NotNil(t, aliceDelivery)
	assert.Equal(t, "latest_alert:"+newer.ID.String(), aliceDelivery.DedupeKey)
}

func TestNotificationService_SummarizeNewAlerts_NoIDs(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.SummarizeNewAlerts(context.Background(), nil)
	require.NoError(t, err)
}
