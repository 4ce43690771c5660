package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	mockRepo "padpro/internal/mocks/repository"
	mockUC "padpro/internal/mocks/usecase"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// receiptServiceFixtures holds all test dependencies for ingestion tests.
type receiptServiceFixtures struct {
	service         usecase.ReceiptUsecase
	txManager       *mockRepo.MockTransactionManager
	repoFactory     *mockRepo.MockRepositoryFactory
	receiptRepo     *mockRepo.MockReceiptRepository
	warehouseRepo   *mockRepo.MockWarehouseRepository
	alertRepo       *mockRepo.MockAlertRepository
	matchSvc        *mockUC.MockMatchUsecase
	notificationSvc *mockUC.MockNotificationUsecase
}

func createTestReceiptService(t *testing.T) receiptServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	receiptRepo := mockRepo.NewMockReceiptRepository(t)
	warehouseRepo := mockRepo.NewMockWarehouseRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	matchSvc := mockUC.NewMockMatchUsecase(t)
	notificationSvc := mockUC.NewMockNotificationUsecase(t)
	service := NewReceiptService(txManager, receiptRepo, warehouseRepo, matchSvc, notificationSvc, newDiscardLogger())

	return receiptServiceFixtures{
		service:         service,
		txManager:       txManager,
		repoFactory:     repoFactory,
		receiptRepo:     receiptRepo,
		warehouseRepo:   warehouseRepo,
		alertRepo:       alertRepo,
		matchSvc:        matchSvc,
		notificationSvc: notificationSvc,
	}
}

// passThroughTx makes the mocked transaction manager invoke the callback with
// the mocked factory, mirroring the real commit path.
func (fx receiptServiceFixtures) passThroughTx(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func testIngestInput() *usecase.IngestReceiptInput {
	savings := decimal.NewFromFloat(2.00)

	return &usecase.IngestReceiptInput{
		StoreNumber:     "1234",
		StoreCity:       "Seattle",
		TransactionDate: "2026-08-20",
		Total:           decimal.NewFromFloat(45.97),
		Items: []*usecase.ReceiptItemInput{
			{ItemCode: "556677", Description: "Organic Olive Oil 2L", Price: decimal.NewFromFloat(12.99), Quantity: 1},
			{ItemCode: "889900", Description: "Laundry Detergent", Price: decimal.NewFromFloat(19.99), Quantity: 1, InstantSavings: &savings, OnSale: true},
		},
	}
}

func TestReceiptService_IngestReceipt(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := testIngestInput()

	fx.warehouseRepo.EXPECT().
		UpsertWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		RunAndReturn(func(_ context.Context, warehouse *entity.Warehouse) error {
			assert.Equal(t, "1234", warehouse.Number)
			assert.Equal(t, "Seattle", warehouse.City)

			return nil
		})

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		RunAndReturn(func(_ context.Context, receipt *entity.Receipt) error {
			assert.Equal(t, userID, receipt.UserID)
			assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), receipt.TransactionDate)
			assert.Len(t, receipt.Items, 2)

			return nil
		})

	created := &entity.PriceAdjustmentAlert{ID: uuid.New(), UserID: userID}
	// The full-price line is checked against promotions for the uploader,
	// the discounted one is broadcast to other buyers.
	fx.matchSvc.EXPECT().
		EvaluatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		RunAndReturn(func(_ context.Context, observation *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error) {
			assert.Equal(t, "556677", observation.ItemCode)
			assert.Equal(t, "Seattle", observation.StoreCity)

			return []*entity.PriceAdjustmentAlert{created}, nil
		})
	fx.matchSvc.EXPECT().
		EvaluatePriceDrop(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		RunAndReturn(func(_ context.Context, observation *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error) {
			assert.Equal(t, "889900", observation.ItemCode)
			assert.True(t, observation.OnSale)

			return nil, nil
		})

	output, err := fx.service.IngestReceipt(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, output.Receipt)
	require.Len(t, output.AlertsCreated, 1)
	assert.Equal(t, created.ID, output.AlertsCreated[0].ID)
}

func TestReceiptService_IngestReceipt_BadDate(t *testing.T) {
	fx := createTestReceiptService(t)

	input := testIngestInput()
	input.TransactionDate = "08/20/2026"

	_, err := fx.service.IngestReceipt(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReceiptService_IngestReceipt_Duplicate(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	input := testIngestInput()

	fx.warehouseRepo.EXPECT().
		UpsertWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(repository.ErrDuplicateReceipt)

	_, err := fx.service.IngestReceipt(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReceiptAlreadyExists)
}

func TestReceiptService_IngestReceipt_MatchFailureKeepsReceipt(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	input := testIngestInput()

	fx.warehouseRepo.EXPECT().
		UpsertWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(nil)

	fx.matchSvc.EXPECT().
		EvaluatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, assert.AnError)
	fx.matchSvc.EXPECT().
		EvaluatePriceDrop(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, assert.AnError)

	// Matching runs after the commit; its failure never loses the receipt.
	output, err := fx.service.IngestReceipt(ctx, uuid.New(), input)
	require.NoError(t, err)
	require.NotNil(t, output.Receipt)
	assert.Empty(t, output.AlertsCreated)
}

func TestReceiptService_IngestReceipt_BroadcastsDiscountedLines(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := testIngestInput()

	fx.warehouseRepo.EXPECT().
		UpsertWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(nil)

	fx.matchSvc.EXPECT().
		EvaluatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, nil)

	// The on-sale line alerts two other buyers.
	crossUser := []*entity.PriceAdjustmentAlert{
		{ID: uuid.New(), UserID: uuid.New(), Source: entity.AlertSourceUserEdit},
		{ID: uuid.New(), UserID: uuid.New(), Source: entity.AlertSourceUserEdit},
	}
	fx.matchSvc.EXPECT().
		EvaluatePriceDrop(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		RunAndReturn(func(_ context.Context, observation *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error) {
			assert.Equal(t, "889900", observation.ItemCode)
			assert.Equal(t, userID, observation.UserID)

			return crossUser, nil
		})

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, []uuid.UUID{crossUser[0].ID, crossUser[1].ID}).
		Return(nil)

	output, err := fx.service.IngestReceipt(ctx, userID, input)
	require.NoError(t, err)
	// Other users' alerts are pushed, never surfaced in the uploader's response.
	assert.Empty(t, output.AlertsCreated)
}

func TestReceiptService_IngestReceipt_PushFailureDoesNotFailIngest(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	input := testIngestInput()

	fx.warehouseRepo.EXPECT().
		UpsertWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		Return(nil)

	fx.matchSvc.EXPECT().
		EvaluatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, nil)

	crossUser := []*entity.PriceAdjustmentAlert{{ID: uuid.New(), UserID: uuid.New()}}
	fx.matchSvc.EXPECT().
		EvaluatePriceDrop(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(crossUser, nil)

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, []uuid.UUID{crossUser[0].ID}).
		Return(assert.AnError)

	output, err := fx.service.IngestReceipt(ctx, uuid.New(), input)
	require.NoError(t, err)
	require.NotNil(t, output.Receipt)
}

func TestReceiptService_IngestReceipt_BackfillsStoreCity(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	input := testIngestInput()
	input.StoreCity = ""

	fx.warehouseRepo.EXPECT().
		FindWarehouseByNumber(ctx, "1234").
		Return(&entity.Warehouse{Number: "1234", City: "Seattle"}, nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)

	fx.receiptRepo.EXPECT().
		CreateReceipt(ctx, mock.AnythingOfType("*entity.Receipt")).
		RunAndReturn(func(_ context.Context, receipt *entity.Receipt) error {
			assert.Equal(t, "Seattle", receipt.StoreCity)

			return nil
		})

	fx.matchSvc.EXPECT().
		EvaluatePurchase(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, nil)
	fx.matchSvc.EXPECT().
		EvaluatePriceDrop(ctx, mock.AnythingOfType("*entity.PurchaseObservation")).
		Return(nil, nil)

	_, err := fx.service.IngestReceipt(ctx, uuid.New(), input)
	require.NoError(t, err)
}

func TestReceiptService_GetUserReceipts(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	userID := uuid.New()
	receipts := []*entity.Receipt{{ID: uuid.New(), UserID: userID}}

	fx.receiptRepo.EXPECT().
		FindReceiptsByUser(ctx, userID, 20, 0).
		Return(receipts, nil)

	got, err := fx.service.GetUserReceipts(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, receipts, got)
}

func TestReceiptService_DeleteReceipt_CascadesToAlerts(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	userID := uuid.New()
	receiptID := uuid.New()
	transactionDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	receipt := &entity.Receipt{
		ID:              receiptID,
		UserID:          userID,
		StoreNumber:     "1234",
		TransactionDate: transactionDate,
		Items: []*entity.ReceiptItem{
			{ItemCode: "556677"},
			{ItemCode: "889900"},
		},
	}

	fx.receiptRepo.EXPECT().
		FindReceiptByID(ctx, receiptID).
		Return(receipt, nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewReceiptRepository().Return(fx.receiptRepo)
	fx.repoFactory.EXPECT().NewAlertRepository().Return(fx.alertRepo)

	fx.receiptRepo.EXPECT().
		DeleteReceipt(ctx, receiptID).
		Return(nil)

	fx.alertRepo.EXPECT().
		DeleteAlertsForPurchase(ctx, userID, []string{"556677", "889900"}, transactionDate, "1234").
		Return(nil)

	err := fx.service.DeleteReceipt(ctx, userID, receiptID)
	require.NoError(t, err)
}

func TestReceiptService_DeleteReceipt_NotFound(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	receiptID := uuid.New()

	fx.receiptRepo.EXPECT().
		FindReceiptByID(ctx, receiptID).
		Return(nil, repository.ErrReceiptNotFound)

	err := fx.service.DeleteReceipt(ctx, uuid.New(), receiptID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReceiptNotFound)
}

func TestReceiptService_DeleteReceipt_WrongOwner(t *testing.T) {
	fx := createTestReceiptService(t)

	ctx := context.Background()
	receiptID := uuid.New()

	fx.receiptRepo.EXPECT().
		FindReceiptByID(ctx, receiptID).
		Return(&entity.Receipt{ID: receiptID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteReceipt(ctx, uuid.New(), receiptID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReceiptOwnershipViolation)
}
