package usecase

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptItemInput is one already-parsed line item of an uploaded receipt.
type ReceiptItemInput struct {
	ItemCode       string           `json:"item_code"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	Quantity       int              `json:"quantity"`
	InstantSavings *decimal.Decimal `json:"instant_savings"`
	OnSale         bool             `json:"on_sale"`
}

// IngestReceiptInput defines an externally parsed receipt ready for storage.
// Parsing happens upstream; this input is already structured.
type IngestReceiptInput struct {
	StoreNumber     string              `json:"store_number"`
	StoreCity       string              `json:"store_city"`
	TransactionDate string              `json:"transaction_date"` // YYYY-MM-DD
	Total           decimal.Decimal     `json:"total"`
	Items           []*ReceiptItemInput `json:"items"`
}

// IngestReceiptOutput returns the stored receipt and the alerts the matching
// pass created from it.
type IngestReceiptOutput struct {
	Receipt       *entity.Receipt                `json:"receipt"`
	AlertsCreated []*entity.PriceAdjustmentAlert `json:"alerts_created"`
}

// ReceiptUsecase defines the interface for receipt ingestion and management.
type ReceiptUsecase interface {
	// IngestReceipt stores a parsed receipt atomically and runs the matching
	// engine over its non-discounted lines. Matching failures on individual
	// lines are logged and skipped; the receipt itself is always kept.
	IngestReceipt(ctx context.Context, userID uuid.UUID, input *IngestReceiptInput) (*IngestReceiptOutput, error)

	// GetUserReceipts retrieves a user's receipts with pagination, newest first.
	GetUserReceipts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Receipt, error)

	// DeleteReceipt removes a receipt and cascades to the alerts keyed to its
	// purchase context (item codes, transaction date, store).
	DeleteReceipt(ctx context.Context, userID, receiptID uuid.UUID) error
}
