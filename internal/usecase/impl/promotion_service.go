package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	"padpro/internal/usecase"

	"github.com/google/uuid"
)

type promotionService struct {
	promotionRepo   repository.PromotionRepository
	extractor       service.SaleItemExtractor
	matchSvc        usecase.MatchUsecase
	notificationSvc usecase.NotificationUsecase
	publisher       service.EventPublisher
	maxPagesPerRun  int
	logger          *slog.Logger
}

// NewPromotionService creates a new promotion processing service instance
func NewPromotionService(
	promotionRepo repository.PromotionRepository,
	extractor service.SaleItemExtractor,
	matchSvc usecase.MatchUsecase,
	notificationSvc usecase.NotificationUsecase,
	publisher service.EventPublisher,
	cfg *config.PromotionsConfig,
	logger *slog.Logger,
) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo:   promotionRepo,
		extractor:       extractor,
		matchSvc:        matchSvc,
		notificationSvc: notificationSvc,
		publisher:       publisher,
		maxPagesPerRun:  cfg.MaxPagesPerRun,
		logger:          logger,
	}
}

// CreatePromotion stores a booklet with its pages and publishes a processing
// event for the worker.
func (s *promotionService) CreatePromotion(ctx context.Context, input *usecase.CreatePromotionInput) (*entity.CostcoPromotion, error) {
	startDate, err := time.Parse(time.DateOnly, input.SaleStartDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sale_start_date must be YYYY-MM-DD").WrapMessage("create promotion failed")
	}
	endDate, err := time.Parse(time.DateOnly, input.SaleEndDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sale_end_date must be YYYY-MM-DD").WrapMessage("create promotion failed")
	}
	if endDate.Before(startDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sale_end_date must not precede sale_start_date").WrapMessage("create promotion failed")
	}

	promotion := &entity.CostcoPromotion{
		ID:            uuid.New(),
		Title:         input.Title,
		SaleStartDate: entity.DateOnly(startDate),
		SaleEndDate:   entity.DateOnly(endDate),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	for _, page := range input.Pages {
		promotion.Pages = append(promotion.Pages, &entity.PromotionPage{
			ID:          uuid.New(),
			PromotionID: promotion.ID,
			PageNumber:  page.PageNumber,
			RawText:     page.RawText,
		})
	}

	if err := s.promotionRepo.CreatePromotion(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	// Best effort: if publishing fails, the promotion can still be processed
	// through the manual endpoint.
	err = s.publisher.PublishPromotionEvent(ctx, &service.PromotionEvent{
		PromotionID: promotion.ID.String(),
		Title:       promotion.Title,
		PageCount:   len(promotion.Pages),
	})
	if err != nil {
		s.logger.Error("Failed to publish promotion event",
			slog.String("promotion_id", promotion.ID.String()),
			slog.Any("error", err),
		)
	}

	return promotion, nil
}

// ProcessPromotion processes up to the configured number of unprocessed pages
// of one promotion. Safe to call repeatedly until no pages remain.
func (s *promotionService) ProcessPromotion(ctx context.Context, promotionID uuid.UUID) (*usecase.ProcessPromotionOutput, error) {
	promotion, err := s.promotionRepo.FindPromotionByID(ctx, promotionID)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			// Unlike per-page failures, a missing promotion is fatal to the
			// caller: it means the job references data that does not exist.
			return nil, domainerrors.ErrPromotionNotFound.WrapMessage("process promotion failed")
		}

		return nil, fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	pages, err := s.promotionRepo.FindUnprocessedPages(ctx, promotionID, s.maxPagesPerRun)
	if err != nil {
		return nil, fmt.Errorf("failed to find unprocessed pages: %w", err)
	}

	output := &usecase.ProcessPromotionOutput{}
	var createdAlertIDs []uuid.UUID

	for _, page := range pages {
		pageAlerts, itemCount, pageErrs := s.processPage(ctx, promotion, page)
		output.Errors = append(output.Errors, pageErrs...)
		if itemCount < 0 {
			// Extraction or persistence failed; the page stays unprocessed so
			// the next run retries it.
			continue
		}

		output.ItemsExtracted += itemCount
		output.AlertsCreated += len(pageAlerts)
		createdAlertIDs = append(createdAlertIDs, pageAlerts...)

		if err := s.promotionRepo.MarkPageProcessed(ctx, page.ID, time.Now()); err != nil {
			output.Errors = append(output.Errors, fmt.Sprintf("page %d: mark processed: %v", page.PageNumber, err))

			continue
		}
		output.PagesProcessed++
	}

	remaining, err := s.promotionRepo.CountUnprocessedPages(ctx, promotionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unprocessed pages: %w", err)
	}
	output.PagesRemaining = remaining

	if remaining == 0 && !promotion.IsProcessed {
		if err := s.promotionRepo.MarkPromotionProcessed(ctx, promotionID); err != nil {
			return nil, fmt.Errorf("failed to mark promotion processed: %w", err)
		}
	}

	// One summary push per affected user for this whole run, not one per
	// alert. Notification failure never fails the batch.
	if err := s.notificationSvc.SummarizeNewAlerts(ctx, createdAlertIDs); err != nil {
		s.logger.Error("Failed to send alert summaries",
			slog.String("promotion_id", promotionID.String()),
			slog.Any("error", err),
		)
	}

	s.logger.Info("Promotion processing run finished",
		slog.String("promotion_id", promotionID.String()),
		slog.Int("pages_processed", output.PagesProcessed),
		slog.Int("items_extracted", output.ItemsExtracted),
		slog.Int("alerts_created", output.AlertsCreated),
		slog.Int64("pages_remaining", output.PagesRemaining),
		slog.Int("errors", len(output.Errors)),
	)

	return output, nil
}

// processPage extracts sale items from one page, persists them and fans each
// one out to recent purchases. Returns the IDs of alerts created, the number
// of items extracted (negative when the page must be retried), and collected
// per-item error strings.
func (s *promotionService) processPage(ctx context.Context, promotion *entity.CostcoPromotion, page *entity.PromotionPage) ([]uuid.UUID, int, []string) {
	var errs []string

	items, err := s.extractor.ExtractSaleItems(ctx, promotion.ID, page.RawText)
	if err != nil {
		errs = append(errs, fmt.Sprintf("page %d: extract: %v", page.PageNumber, err))

		return nil, -1, errs
	}

	for _, item := range items {
		item.ID = uuid.New()
		item.PromotionID = promotion.ID
		item.DeriveRebate()
	}

	if len(items) > 0 {
		if err := s.promotionRepo.CreateSaleItems(ctx, items); err != nil {
			errs = append(errs, fmt.Sprintf("page %d: persist items: %v", page.PageNumber, err))

			return nil, -1, errs
		}
	}

	var alertIDs []uuid.UUID
	for _, item := range items {
		item.Promotion = promotion

		alerts, err := s.matchSvc.EvaluateSaleItem(ctx, item)
		if err != nil {
			// One bad item must not block its siblings.
			errs = append(errs, fmt.Sprintf("page %d item %s: match: %v", page.PageNumber, item.ItemCode, err))

			continue
		}
		for _, alert := range alerts {
			alertIDs = append(alertIDs, alert.ID)
		}
	}

	return alertIDs, len(items), errs
}
