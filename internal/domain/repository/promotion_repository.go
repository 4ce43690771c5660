// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for promotion persistence.
var (
	// ErrPromotionNotFound is returned when a promotion is not found.
	ErrPromotionNotFound = errors.New("promotion not found")
	// ErrSaleItemNotFound is returned when an official sale item is not found.
	ErrSaleItemNotFound = errors.New("official sale item not found")
)

// PromotionRepository defines the interface for promotion-related database operations.
type PromotionRepository interface {
	// CreatePromotion persists a new promotion with its pages.
	CreatePromotion(ctx context.Context, promotion *entity.CostcoPromotion) error

	// FindPromotionByID retrieves a promotion by its unique ID.
	FindPromotionByID(ctx context.Context, id uuid.UUID) (*entity.CostcoPromotion, error)

	// FindUnprocessedPages retrieves up to limit pages of a promotion that have
	// not been processed yet, in page order. Batch processing is chunked and
	// resumable; pages left behind are picked up by the next run.
	FindUnprocessedPages(ctx context.Context, promotionID uuid.UUID, limit int) ([]*entity.PromotionPage, error)

	// MarkPageProcessed records that sale items were extracted from a page.
	MarkPageProcessed(ctx context.Context, pageID uuid.UUID, processedAt time.Time) error

	// CountUnprocessedPages returns how many pages of a promotion still await processing.
	CountUnprocessedPages(ctx context.Context, promotionID uuid.UUID) (int64, error)

	// MarkPromotionProcessed flips the promotion's is_processed flag once every
	// page has been handled.
	MarkPromotionProcessed(ctx context.Context, promotionID uuid.UUID) error

	// CreateSaleItems persists extracted sale items in a batch.
	CreateSaleItems(ctx context.Context, items []*entity.OfficialSaleItem) error

	// FindSaleItemByID retrieves a sale item with its promotion loaded.
	FindSaleItemByID(ctx context.Context, id uuid.UUID) (*entity.OfficialSaleItem, error)

	// FindActiveSaleItemsByCode retrieves sale items for an item code whose
	// promotion is processed and whose validity window covers the given day.
	// Promotions are loaded so callers can read the window.
	FindActiveSaleItemsByCode(ctx context.Context, itemCode string, day time.Time) ([]*entity.OfficialSaleItem, error)
}
