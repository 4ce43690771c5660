// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for receipt persistence.
var (
	// ErrReceiptNotFound is returned when a receipt is not found.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrDuplicateReceipt is returned when the same receipt is uploaded twice.
	ErrDuplicateReceipt = errors.New("receipt already exists")
)

// ReceiptRepository defines the interface for receipt-related database operations.
type ReceiptRepository interface {
	// CreateReceipt persists a receipt together with its line items.
	CreateReceipt(ctx context.Context, receipt *entity.Receipt) error

	// FindReceiptByID retrieves a receipt with its line items.
	FindReceiptByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// FindReceiptsByUser retrieves a user's receipts, newest first.
	FindReceiptsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Receipt, error)

	// DeleteReceipt removes a receipt and its line items.
	DeleteReceipt(ctx context.Context, id uuid.UUID) error

	// FindRecentPurchasesByItemCode returns the flattened purchase observations
	// for an item code with a transaction date on or after since. This is the
	// scan the matcher runs when a new promotion fans out to past purchases.
	FindRecentPurchasesByItemCode(ctx context.Context, itemCode string, since time.Time) ([]*entity.PurchaseObservation, error)
}
