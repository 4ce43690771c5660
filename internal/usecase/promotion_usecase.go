package usecase

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
)

// PromotionPageInput is one scanned booklet page submitted for later
// processing.
type PromotionPageInput struct {
	PageNumber int    `json:"page_number"`
	RawText    string `json:"raw_text"`
}

// CreatePromotionInput defines a new promotional booklet with its pages.
type CreatePromotionInput struct {
	Title         string                `json:"title"`
	SaleStartDate string                `json:"sale_start_date"` // YYYY-MM-DD
	SaleEndDate   string                `json:"sale_end_date"`   // YYYY-MM-DD
	Pages         []*PromotionPageInput `json:"pages"`
}

// ProcessPromotionOutput summarizes one chunked processing run.
type ProcessPromotionOutput struct {
	PagesProcessed int      `json:"pages_processed"`
	ItemsExtracted int      `json:"items_extracted"`
	AlertsCreated  int      `json:"alerts_created"`
	PagesRemaining int64    `json:"pages_remaining"`
	Errors         []string `json:"errors,omitempty"`
}

// PromotionUsecase defines the interface for promotion ingestion and the
// chunked batch-processing pipeline.
type PromotionUsecase interface {
	// CreatePromotion stores a booklet with its pages and publishes a
	// processing event for the worker.
	CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.CostcoPromotion, error)

	// ProcessPromotion processes up to the configured number of unprocessed
	// pages of one promotion: extract sale items, persist them, fan each item
	// out to recent purchases, then push one summary per affected user.
	// Individual page and item failures are collected in the output; only a
	// missing promotion is fatal. Safe to call repeatedly until no pages
	// remain.
	ProcessPromotion(ctx context.Context, promotionID uuid.UUID) (*ProcessPromotionOutput, error)
}
