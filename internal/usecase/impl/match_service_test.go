package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	mockRepo "padpro/internal/mocks/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// matchServiceFixtures holds all test dependencies for matching engine tests.
type matchServiceFixtures struct {
	service       usecase.MatchUsecase
	alertRepo     *mockRepo.MockAlertRepository
	promotionRepo *mockRepo.MockPromotionRepository
	receiptRepo   *mockRepo.MockReceiptRepository
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	receiptRepo := mockRepo.NewMockReceiptRepository(t)
	service := NewMatchService(alertRepo, promotionRepo, receiptRepo, newTestAlertsConfig(), newDiscardLogger())

	return matchServiceFixtures{
		service:       service,
		alertRepo:     alertRepo,
		promotionRepo: promotionRepo,
		receiptRepo:   receiptRepo,
	}
}

func activePromotion() *entity.CostcoPromotion {
	now := time.Now()

	return &entity.CostcoPromotion{
		ID:            uuid.New(),
		Title:         "Member Savings",
		SaleStartDate: entity.DateOnly(now.AddDate(0, 0, -3)),
		SaleEndDate:   entity.DateOnly(now.AddDate(0, 0, 10)),
		IsProcessed:   true,
	}
}

func markdownItem(promotion *entity.CostcoPromotion, itemCode string, salePrice decimal.Decimal) *entity.OfficialSaleItem {
	return &entity.OfficialSaleItem{
		ID:          uuid.New(),
		PromotionID: promotion.ID,
		Promotion:   promotion,
		ItemCode:    itemCode,
		Description: "Organic Olive Oil 2L",
		SalePrice:   &salePrice,
		SaleType:    entity.SaleTypeMarkdown,
	}
}

func testPurchase(itemCode string, price decimal.Decimal) *entity.PurchaseObservation {
	return &entity.PurchaseObservation{
		UserID:          uuid.New(),
		ReceiptID:       uuid.New(),
		ItemCode:        itemCode,
		Description:     "Organic Olive Oil 2L",
		Price:           price,
		StoreNumber:     "1234",
		StoreCity:       "Seattle",
		TransactionDate: entity.DateOnly(time.Now().AddDate(0, 0, -5)),
	}
}

func TestMatchService_EvaluatePurchase_CreatesAlert(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "556677", mock.Anything).
		Return(nil, nil)

	fx.alertRepo.EXPECT().
		UpsertAlert(ctx, mock.AnythingOfType("*entity.PriceAdjustmentAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
			return alert, true, nil
		})

	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	require.Len(t, created, 1)

	alert := created[0]
	assert.Equal(t, purchase.UserID, alert.UserID)
	assert.True(t, alert.OriginalPrice.Equal(decimal.NewFromFloat(12.99)))
	assert.True(t, alert.LowerPrice.Equal(decimal.NewFromFloat(9.99)))
	assert.True(t, alert.PriceDifference().Equal(decimal.NewFromFloat(3.00)))
	assert.Equal(t, entity.AlertSourceOfficialPromo, alert.Source)
	assert.Equal(t, entity.AllLocationsCity, alert.CheaperStoreCity)
	assert.Equal(t, entity.AllLocationsNumber, alert.CheaperStoreNumber)
	assert.Equal(t, "1234", alert.OriginalStoreNumber)
	require.NotNil(t, alert.OfficialSaleItemID)
	assert.Equal(t, item.ID, *alert.OfficialSaleItemID)
	require.NotNil(t, alert.DedupeKey)
	assert.Equal(t, alert.ComputeDedupeKey(), *alert.DedupeKey)
	assert.True(t, alert.IsActive)
	assert.False(t, alert.IsDismissed)
}

func TestMatchService_EvaluatePurchase_SubThresholdSavingsSkipped(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(12.60))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	// A $0.39 difference never reaches the alert repository.
	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePurchase_DiscountedPurchaseNeverTriggers(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	savings := decimal.NewFromFloat(2.00)
	purchase := testPurchase("556677", decimal.NewFromFloat(10.99))
	purchase.InstantSavings = &savings

	// No repository calls at all: the purchase already reflects a discount.
	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePurchase_SecondPromotionUpdatesInPlace(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(8.99))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	saleEnd := entity.DateOnly(promotion.SaleEndDate)
	existingSaleItemID := uuid.New()
	existing := &entity.PriceAdjustmentAlert{
		ID:                 uuid.New(),
		UserID:             purchase.UserID,
		ItemCode:           "556677",
		OriginalPrice:      decimal.NewFromFloat(12.99),
		LowerPrice:         decimal.NewFromFloat(9.99),
		PurchaseDate:       purchase.TransactionDate,
		Source:             entity.AlertSourceOfficialPromo,
		OfficialSaleItemID: &existingSaleItemID,
		SaleEndDate:        &saleEnd,
		IsActive:           true,
	}

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "556677", mock.Anything).
		Return([]*entity.PriceAdjustmentAlert{existing}, nil)

	fx.alertRepo.EXPECT().
		UpdateBetterPrice(ctx, existing.ID, decimal.NewFromFloat(8.99), &item.ID, mock.Anything).
		Return(nil)

	// An in-place improvement is not a new alert.
	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePurchase_WorsePriceLeavesDismissalAlone(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	saleEnd := entity.DateOnly(promotion.SaleEndDate)
	existing := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        purchase.UserID,
		ItemCode:      "556677",
		OriginalPrice: decimal.NewFromFloat(12.99),
		LowerPrice:    decimal.NewFromFloat(9.99),
		PurchaseDate:  purchase.TransactionDate,
		Source:        entity.AlertSourceOfficialPromo,
		SaleEndDate:   &saleEnd,
		IsActive:      true,
		IsDismissed:   true,
	}

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "556677", mock.Anything).
		Return([]*entity.PriceAdjustmentAlert{existing}, nil)

	// Equal price: no UpdateBetterPrice call, the dismissal survives.
	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.True(t, existing.IsDismissed)
}

func TestMatchService_EvaluatePurchase_BetterPriceClearsDismissal(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(7.99))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	saleEnd := entity.DateOnly(promotion.SaleEndDate)
	existing := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        purchase.UserID,
		ItemCode:      "556677",
		OriginalPrice: decimal.NewFromFloat(12.99),
		LowerPrice:    decimal.NewFromFloat(9.99),
		PurchaseDate:  purchase.TransactionDate,
		Source:        entity.AlertSourceOfficialPromo,
		SaleEndDate:   &saleEnd,
		IsActive:      true,
		IsDismissed:   true,
	}

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "556677", mock.Anything).
		Return([]*entity.PriceAdjustmentAlert{existing}, nil)

	fx.alertRepo.EXPECT().
		UpdateBetterPrice(ctx, existing.ID, decimal.NewFromFloat(7.99), &item.ID, mock.Anything).
		Return(nil)

	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.False(t, existing.IsDismissed)
	assert.True(t, existing.LowerPrice.Equal(decimal.NewFromFloat(7.99)))
}

func TestMatchService_EvaluatePurchase_RerunIsIdempotent(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))
	purchase := testPurchase("556677", decimal.NewFromFloat(12.99))

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "556677", mock.Anything).
		Return(nil, nil)

	// A concurrent pass won the insert race: the repository reports the row as
	// pre-existing and the tie-break sees an equal price.
	fx.alertRepo.EXPECT().
		UpsertAlert(ctx, mock.AnythingOfType("*entity.PriceAdjustmentAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
			winner := *alert
			winner.ID = uuid.New()

			return &winner, false, nil
		})

	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePurchase_DiscountOnlyUsesRebate(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	rebate := decimal.NewFromFloat(4.00)
	item := &entity.OfficialSaleItem{
		ID:            uuid.New(),
		PromotionID:   promotion.ID,
		Promotion:     promotion,
		ItemCode:      "889900",
		Description:   "Laundry Detergent",
		InstantRebate: &rebate,
		SaleType:      entity.SaleTypeDiscountOnly,
	}
	purchase := testPurchase("889900", decimal.NewFromFloat(19.99))

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "889900", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, purchase.UserID, "889900", mock.Anything).
		Return(nil, nil)

	fx.alertRepo.EXPECT().
		UpsertAlert(ctx, mock.AnythingOfType("*entity.PriceAdjustmentAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
			return alert, true, nil
		})

	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	require.Len(t, created, 1)
	// The rebate applies to what the user actually paid.
	assert.True(t, created[0].LowerPrice.Equal(decimal.NewFromFloat(15.99)))
}

func TestMatchService_EvaluatePurchase_DiscountOnlyRejectsNonPositiveFinalPrice(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	rebate := decimal.NewFromFloat(25.00)
	item := &entity.OfficialSaleItem{
		ID:            uuid.New(),
		PromotionID:   promotion.ID,
		Promotion:     promotion,
		ItemCode:      "889900",
		InstantRebate: &rebate,
		SaleType:      entity.SaleTypeDiscountOnly,
	}
	purchase := testPurchase("889900", decimal.NewFromFloat(19.99))

	fx.promotionRepo.EXPECT().
		FindActiveSaleItemsByCode(ctx, "889900", mock.AnythingOfType("time.Time")).
		Return([]*entity.OfficialSaleItem{item}, nil)

	// A rebate that swallows the whole price is a data error, not an alert.
	created, err := fx.service.EvaluatePurchase(ctx, purchase)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluateSaleItem_FansOutToRecentPurchases(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))

	eligible := testPurchase("556677", decimal.NewFromFloat(12.99))
	savings := decimal.NewFromFloat(1.00)
	discounted := testPurchase("556677", decimal.NewFromFloat(11.99))
	discounted.InstantSavings = &savings

	fx.receiptRepo.EXPECT().
		FindRecentPurchasesByItemCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.PurchaseObservation{eligible, discounted}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, eligible.UserID, "556677", mock.Anything).
		Return(nil, nil)

	fx.alertRepo.EXPECT().
		UpsertAlert(ctx, mock.AnythingOfType("*entity.PriceAdjustmentAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
			return alert, true, nil
		})

	created, err := fx.service.EvaluateSaleItem(ctx, item)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, eligible.UserID, created[0].UserID)
}

func TestMatchService_EvaluateSaleItem_EndedPromotionSkipsFanOut(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	promotion.SaleEndDate = entity.DateOnly(time.Now().AddDate(0, 0, -1))
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))

	// No receipt scan at all; alerts would be born expired.
	created, err := fx.service.EvaluateSaleItem(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, created)
}

// observedSaleLine is the discounted line off another user's receipt that
// triggers the cross-user fan-out.
func observedSaleLine(itemCode string, price decimal.Decimal) *entity.PurchaseObservation {
	observed := testPurchase(itemCode, price)
	observed.OnSale = true
	observed.StoreNumber = "0042"
	observed.StoreCity = "Tukwila"

	return observed
}

func TestMatchService_EvaluatePriceDrop_CreatesUserSourcedAlert(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	observed := observedSaleLine("556677", decimal.NewFromFloat(9.99))

	victim := testPurchase("556677", decimal.NewFromFloat(14.99))
	ownPurchase := testPurchase("556677", decimal.NewFromFloat(15.99))
	ownPurchase.UserID = observed.UserID
	rebate := decimal.NewFromFloat(1.00)
	alreadyDiscounted := testPurchase("556677", decimal.NewFromFloat(13.99))
	alreadyDiscounted.InstantSavings = &rebate

	fx.receiptRepo.EXPECT().
		FindRecentPurchasesByItemCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ string, since time.Time) ([]*entity.PurchaseObservation, error) {
			// The lookback is the retailer policy window, not a config knob.
			expected := entity.DateOnly(time.Now()).AddDate(0, 0, -entity.AdjustmentWindowDays)
			assert.WithinDuration(t, expected, since, time.Minute)

			return []*entity.PurchaseObservation{victim, ownPurchase, alreadyDiscounted}, nil
		})

	// User-sourced alerts are scoped to the victim's purchase date.
	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, victim.UserID, "556677", mock.AnythingOfType("*time.Time")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ string, purchaseDate *time.Time) ([]*entity.PriceAdjustmentAlert, error) {
			require.NotNil(t, purchaseDate)
			assert.True(t, entity.DateOnly(*purchaseDate).Equal(entity.DateOnly(victim.TransactionDate)))

			return nil, nil
		})

	fx.alertRepo.EXPECT().
		UpsertAlert(ctx, mock.AnythingOfType("*entity.PriceAdjustmentAlert")).
		RunAndReturn(func(_ context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
			return alert, true, nil
		})

	// Only the other user's full-price purchase gets an alert: the observer's
	// own line and the discounted purchase are filtered out.
	created, err := fx.service.EvaluatePriceDrop(ctx, observed)
	require.NoError(t, err)
	require.Len(t, created, 1)

	alert := created[0]
	assert.Equal(t, victim.UserID, alert.UserID)
	assert.Equal(t, entity.AlertSourceUserEdit, alert.Source)
	assert.True(t, alert.OriginalPrice.Equal(decimal.NewFromFloat(14.99)))
	assert.True(t, alert.LowerPrice.Equal(decimal.NewFromFloat(9.99)))
	// The cheaper store is the real sighting warehouse, not the chain-wide
	// sentinel used for promotion alerts.
	assert.Equal(t, "Tukwila", alert.CheaperStoreCity)
	assert.Equal(t, "0042", alert.CheaperStoreNumber)
	assert.Equal(t, "1234", alert.OriginalStoreNumber)
	assert.Nil(t, alert.OfficialSaleItemID)
	assert.Nil(t, alert.SaleEndDate)
	assert.True(t, alert.PurchaseDate.Equal(victim.TransactionDate))
	require.NotNil(t, alert.DedupeKey)
	assert.Equal(t, alert.ComputeDedupeKey(), *alert.DedupeKey)
	assert.True(t, alert.IsActive)
}

func TestMatchService_EvaluatePriceDrop_FullPriceLineIsIgnored(t *testing.T) {
	fx := createTestMatchService(t)

	observed := testPurchase("556677", decimal.NewFromFloat(9.99))

	// A line without any discount is not evidence of a price drop; no
	// repository calls at all.
	created, err := fx.service.EvaluatePriceDrop(context.Background(), observed)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePriceDrop_SubThresholdSavingsSkipped(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	observed := observedSaleLine("556677", decimal.NewFromFloat(9.99))
	victim := testPurchase("556677", decimal.NewFromFloat(10.38))

	fx.receiptRepo.EXPECT().
		FindRecentPurchasesByItemCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.PurchaseObservation{victim}, nil)

	// A $0.39 difference never reaches the alert repository.
	created, err := fx.service.EvaluatePriceDrop(ctx, observed)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMatchService_EvaluatePriceDrop_BetterSightingUpdatesInPlace(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	observed := observedSaleLine("556677", decimal.NewFromFloat(9.99))
	victim := testPurchase("556677", decimal.NewFromFloat(14.99))

	existing := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        victim.UserID,
		ItemCode:      "556677",
		OriginalPrice: decimal.NewFromFloat(14.99),
		LowerPrice:    decimal.NewFromFloat(10.99),
		PurchaseDate:  victim.TransactionDate,
		Source:        entity.AlertSourceUserEdit,
		IsActive:      true,
		IsDismissed:   true,
	}

	fx.receiptRepo.EXPECT().
		FindRecentPurchasesByItemCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return([]*entity.PurchaseObservation{victim}, nil)

	fx.alertRepo.EXPECT().
		FindAlertsForItem(ctx, victim.UserID, "556677", mock.AnythingOfType("*time.Time")).
		Return([]*entity.PriceAdjustmentAlert{existing}, nil)

	// A user-sourced improvement carries no sale item or end date.
	fx.alertRepo.EXPECT().
		UpdateBetterPrice(ctx, existing.ID, decimal.NewFromFloat(9.99), (*uuid.UUID)(nil), (*time.Time)(nil)).
		Return(nil)

	created, err := fx.service.EvaluatePriceDrop(ctx, observed)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.True(t, existing.LowerPrice.Equal(decimal.NewFromFloat(9.99)))
	assert.False(t, existing.IsDismissed)
}

func TestMatchService_EvaluateSaleItem_LoadsPromotionWhenMissing(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	promotion := activePromotion()
	item := markdownItem(promotion, "556677", decimal.NewFromFloat(9.99))
	item.Promotion = nil

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotion.ID).
		Return(promotion, nil)

	fx.receiptRepo.EXPECT().
		FindRecentPurchasesByItemCode(ctx, "556677", mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	created, err := fx.service.EvaluateSaleItem(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, created)
}
