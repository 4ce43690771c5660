package service

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleItemExtractor defines the interface for turning raw sale-book page text
// into structured sale items. Implementations call an external extraction
// service, so failures are expected and reported per page.
type SaleItemExtractor interface {
	// ExtractSaleItems parses one page of sale-book text into sale items.
	// Items that cannot be parsed are skipped, not errored.
	ExtractSaleItems(ctx context.Context, promotionID uuid.UUID, pageText string) ([]*entity.OfficialSaleItem, error)
}
