// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt represents one parsed warehouse receipt uploaded by a user.
// Parsing itself happens upstream; by the time a Receipt reaches this core it
// is already structured data.
type Receipt struct {
	ID              uuid.UUID      `json:"id"`               // The Global Unique Identifier (GUID) for the receipt.
	UserID          uuid.UUID      `json:"user_id"`          // The ID of the user who uploaded this receipt.
	StoreNumber     string         `json:"store_number"`     // The warehouse store number printed on the receipt.
	StoreCity       string         `json:"store_city"`       // The warehouse city printed on the receipt.
	TransactionDate time.Time      `json:"transaction_date"` // The purchase date printed on the receipt.
	Total           decimal.Decimal `json:"total"`           // The receipt total as parsed.
	Items           []*ReceiptItem `json:"items"`            // The line items on this receipt.
	CreatedAt       time.Time      `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time      `json:"updated_at"`       // Timestamp of the last modification.
}

// ReceiptItem represents a single priced line on a receipt.
type ReceiptItem struct {
	ID             uuid.UUID        `json:"id"`              // The Global Unique Identifier (GUID) for the line item.
	ReceiptID      uuid.UUID        `json:"receipt_id"`      // The ID of the receipt this line belongs to.
	ItemCode       string           `json:"item_code"`       // The item code as printed; not globally unique across sources.
	Description    string           `json:"description"`     // The item description as printed.
	Price          decimal.Decimal  `json:"price"`           // The unit price the user actually paid.
	Quantity       int              `json:"quantity"`        // Number of units purchased.
	InstantSavings *decimal.Decimal `json:"instant_savings"` // Discount already applied on this line, if any.
	OnSale         bool             `json:"on_sale"`         // Whether the line was flagged as a sale price at the register.
}

// PurchaseObservation is the flattened view of one receipt line together with
// its purchase context. It is what the matcher scans when a new promotion
// fans out to existing purchases.
type PurchaseObservation struct {
	UserID          uuid.UUID        `json:"user_id"`
	ReceiptID       uuid.UUID        `json:"receipt_id"`
	ItemCode        string           `json:"item_code"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	InstantSavings  *decimal.Decimal `json:"instant_savings"`
	OnSale          bool             `json:"on_sale"`
	StoreNumber     string           `json:"store_number"`
	StoreCity       string           `json:"store_city"`
	TransactionDate time.Time        `json:"transaction_date"`
}

// AlreadyDiscounted mirrors ReceiptItem.AlreadyDiscounted for the flattened view.
func (o *PurchaseObservation) AlreadyDiscounted() bool {
	if o.OnSale {
		return true
	}

	return o.InstantSavings != nil && o.InstantSavings.IsPositive()
}

// AlreadyDiscounted reports whether this line already reflects a discount.
// Such purchases never qualify as the overpaid side of a price adjustment:
// the user already got the deal.
func (i *ReceiptItem) AlreadyDiscounted() bool {
	if i.OnSale {
		return true
	}

	return i.InstantSavings != nil && i.InstantSavings.IsPositive()
}
