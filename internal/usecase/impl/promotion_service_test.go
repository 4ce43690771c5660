package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	mockRepo "padpro/internal/mocks/repository"
	mockSvc "padpro/internal/mocks/service"
	mockUC "padpro/internal/mocks/usecase"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// promotionServiceFixtures holds all test dependencies for the booklet
// processing pipeline tests.
type promotionServiceFixtures struct {
	service         usecase.PromotionUsecase
	promotionRepo   *mockRepo.MockPromotionRepository
	extractor       *mockSvc.MockSaleItemExtractor
	matchSvc        *mockUC.MockMatchUsecase
	notificationSvc *mockUC.MockNotificationUsecase
	publisher       *mockSvc.MockEventPublisher
}

func createTestPromotionService(t *testing.T) promotionServiceFixtures {
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	extractor := mockSvc.NewMockSaleItemExtractor(t)
	matchSvc := mockUC.NewMockMatchUsecase(t)
	notificationSvc := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewPromotionService(promotionRepo, extractor, matchSvc, notificationSvc, publisher, newTestPromotionsConfig(), newDiscardLogger())

	return promotionServiceFixtures{
		service:         svc,
		promotionRepo:   promotionRepo,
		extractor:       extractor,
		matchSvc:        matchSvc,
		notificationSvc: notificationSvc,
		publisher:       publisher,
	}
}

func unprocessedPage(promotionID uuid.UUID, number int, text string) *entity.PromotionPage {
	return &entity.PromotionPage{
		ID:          uuid.New(),
		PromotionID: promotionID,
		PageNumber:  number,
		RawText:     text,
	}
}

func extractedItem(code string, price float64) *entity.OfficialSaleItem {
	salePrice := decimal.NewFromFloat(price)

	return &entity.OfficialSaleItem{
		ItemCode:    code,
		Description: "Extracted item " + code,
		SalePrice:   &salePrice,
		SaleType:    entity.SaleTypeMarkdown,
	}
}

func TestPromotionService_CreatePromotion(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	input := &usecase.CreatePromotionInput{
		Title:         "January Member Savings",
		SaleStartDate: "2026-01-05",
		SaleEndDate:   "2026-01-30",
		Pages: []*usecase.PromotionPageInput{
			{PageNumber: 1, RawText: "page one text"},
			{PageNumber: 2, RawText: "page two text"},
		},
	}

	fx.promotionRepo.EXPECT().
		CreatePromotion(ctx, mock.AnythingOfType("*entity.CostcoPromotion")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishPromotionEvent(ctx, mock.AnythingOfType("*service.PromotionEvent")).
		RunAndReturn(func(_ context.Context, event *service.PromotionEvent) error {
			assert.Equal(t, "January Member Savings", event.Title)
			assert.Equal(t, 2, event.PageCount)

			return nil
		})

	promotion, err := fx.service.CreatePromotion(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, promotion)
	assert.Equal(t, "January Member Savings", promotion.Title)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), promotion.SaleStartDate)
	assert.Equal(t, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), promotion.SaleEndDate)
	require.Len(t, promotion.Pages, 2)
	assert.Equal(t, promotion.ID, promotion.Pages[0].PromotionID)
}

func TestPromotionService_CreatePromotion_BadDates(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()

	_, err := fx.service.CreatePromotion(ctx, &usecase.CreatePromotionInput{
		Title:         "Broken",
		SaleStartDate: "01/05/2026",
		SaleEndDate:   "2026-01-30",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreatePromotion(ctx, &usecase.CreatePromotionInput{
		Title:         "Inverted",
		SaleStartDate: "2026-01-30",
		SaleEndDate:   "2026-01-05",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPromotionService_CreatePromotion_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()

	fx.promotionRepo.EXPECT().
		CreatePromotion(ctx, mock.AnythingOfType("*entity.CostcoPromotion")).
		Return(nil)

	// The manual processing endpoint remains as the fallback path.
	fx.publisher.EXPECT().
		PublishPromotionEvent(ctx, mock.AnythingOfType("*service.PromotionEvent")).
		Return(errors.New("broker unavailable"))

	promotion, err := fx.service.CreatePromotion(ctx, &usecase.CreatePromotionInput{
		Title:         "Offline booklet",
		SaleStartDate: "2026-02-01",
		SaleEndDate:   "2026-02-20",
		Pages:         []*usecase.PromotionPageInput{{PageNumber: 1, RawText: "text"}},
	})
	require.NoError(t, err)
	require.NotNil(t, promotion)
}

func TestPromotionService_ProcessPromotion_FullRun(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	promotion := activePromotion()
	page := unprocessedPage(promotion.ID, 1, "raw booklet text")
	item := extractedItem("556677", 9.99)
	alertID := uuid.New()

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotion.ID).
		Return(promotion, nil)

	fx.promotionRepo.EXPECT().
		FindUnprocessedPages(ctx, promotion.ID, 10).
		Return([]*entity.PromotionPage{page}, nil)

	fx.extractor.EXPECT().
		ExtractSaleItems(ctx, promotion.ID, "raw booklet text").
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.promotionRepo.EXPECT().
		CreateSaleItems(ctx, mock.AnythingOfType("[]*entity.OfficialSaleItem")).
		RunAndReturn(func(_ context.Context, items []*entity.OfficialSaleItem) error {
			require.Len(t, items, 1)
			assert.Equal(t, promotion.ID, items[0].PromotionID)
			assert.NotEqual(t, uuid.Nil, items[0].ID)

			return nil
		})

	fx.matchSvc.EXPECT().
		EvaluateSaleItem(ctx, item).
		Return([]*entity.PriceAdjustmentAlert{{ID: alertID}}, nil)

	fx.promotionRepo.EXPECT().
		MarkPageProcessed(ctx, page.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.promotionRepo.EXPECT().
		CountUnprocessedPages(ctx, promotion.ID).
		Return(int64(0), nil)

	fx.promotionRepo.EXPECT().
		MarkPromotionProcessed(ctx, promotion.ID).
		Return(nil)

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, []uuid.UUID{alertID}).
		Return(nil)

	promotion.IsProcessed = false

	output, err := fx.service.ProcessPromotion(ctx, promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.PagesProcessed)
	assert.Equal(t, 1, output.ItemsExtracted)
	assert.Equal(t, 1, output.AlertsCreated)
	assert.Zero(t, output.PagesRemaining)
	assert.Empty(t, output.Errors)
}

func TestPromotionService_ProcessPromotion_MissingPromotionIsFatal(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	promotionID := uuid.New()

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotionID).
		Return(nil, repository.ErrPromotionNotFound)

	output, err := fx.service.ProcessPromotion(ctx, promotionID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)
}

func TestPromotionService_ProcessPromotion_ExtractionFailureLeavesPageUnprocessed(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	promotion := activePromotion()
	promotion.IsProcessed = false
	badPage := unprocessedPage(promotion.ID, 1, "garbled")
	goodPage := unprocessedPage(promotion.ID, 2, "clean text")
	item := extractedItem("889900", 15.99)

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotion.ID).
		Return(promotion, nil)

	fx.promotionRepo.EXPECT().
		FindUnprocessedPages(ctx, promotion.ID, 10).
		Return([]*entity.PromotionPage{badPage, goodPage}, nil)

	fx.extractor.EXPECT().
		ExtractSaleItems(ctx, promotion.ID, "garbled").
		Return(nil, errors.New("vision pipeline timeout"))

	fx.extractor.EXPECT().
		ExtractSaleItems(ctx, promotion.ID, "clean text").
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.promotionRepo.EXPECT().
		CreateSaleItems(ctx, mock.AnythingOfType("[]*entity.OfficialSaleItem")).
		Return(nil)

	fx.matchSvc.EXPECT().
		EvaluateSaleItem(ctx, item).
		Return(nil, nil)

	// Only the good page is marked; the bad one stays behind for a retry.
	fx.promotionRepo.EXPECT().
		MarkPageProcessed(ctx, goodPage.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.promotionRepo.EXPECT().
		CountUnprocessedPages(ctx, promotion.ID).
		Return(int64(1), nil)

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, mock.Anything).
		Return(nil)

	output, err := fx.service.ProcessPromotion(ctx, promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.PagesProcessed)
	assert.Equal(t, 1, output.ItemsExtracted)
	assert.Equal(t, int64(1), output.PagesRemaining)
	require.Len(t, output.Errors, 1)
	assert.Contains(t, output.Errors[0], "page 1")
	assert.Contains(t, output.Errors[0], "extract")
}

func TestPromotionService_ProcessPromotion_ChunkedRunLeavesRemainder(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	promotion := activePromotion()
	promotion.IsProcessed = false
	page := unprocessedPage(promotion.ID, 1, "text")

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotion.ID).
		Return(promotion, nil)

	fx.promotionRepo.EXPECT().
		FindUnprocessedPages(ctx, promotion.ID, 10).
		Return([]*entity.PromotionPage{page}, nil)

	fx.extractor.EXPECT().
		ExtractSaleItems(ctx, promotion.ID, "text").
		Return(nil, nil)

	fx.promotionRepo.EXPECT().
		MarkPageProcessed(ctx, page.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	// Pages remain, so the promotion is not flipped to processed.
	fx.promotionRepo.EXPECT().
		CountUnprocessedPages(ctx, promotion.ID).
		Return(int64(12), nil)

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, mock.Anything).
		Return(nil)

	output, err := fx.service.ProcessPromotion(ctx, promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), output.PagesRemaining)
}

func TestPromotionService_ProcessPromotion_MatchFailureIsCollected(t *testing.T) {
	fx := createTestPromotionService(t)

	ctx := context.Background()
	promotion := activePromotion()
	promotion.IsProcessed = true
	page := unprocessedPage(promotion.ID, 3, "text")
	item := extractedItem("112233", 4.99)

	fx.promotionRepo.EXPECT().
		FindPromotionByID(ctx, promotion.ID).
		Return(promotion, nil)

	fx.promotionRepo.EXPECT().
		FindUnprocessedPages(ctx, promotion.ID, 10).
		Return([]*entity.PromotionPage{page}, nil)

	fx.extractor.EXPECT().
		ExtractSaleItems(ctx, promotion.ID, "text").
		Return([]*entity.OfficialSaleItem{item}, nil)

	fx.promotionRepo.EXPECT().
		CreateSaleItems(ctx, mock.AnythingOfType("[]*entity.OfficialSaleItem")).
		Return(nil)

	fx.matchSvc.EXPECT().
		EvaluateSaleItem(ctx, item).
		Return(nil, errors.New("database unavailable"))

	// The page still counts as processed: its items are persisted and the
	// fan-out failure is item-level.
	fx.promotionRepo.EXPECT().
		MarkPageProcessed(ctx, page.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.promotionRepo.EXPECT().
		CountUnprocessedPages(ctx, promotion.ID).
		Return(int64(0), nil)

	fx.notificationSvc.EXPECT().
		SummarizeNewAlerts(ctx, mock.Anything).
		Return(nil)

	output, err := fx.service.ProcessPromotion(ctx, promotion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.PagesProcessed)
	require.Len(t, output.Errors, 1)
	assert.Contains(t, output.Errors[0], "item 112233")
}
