// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleType is the promotional pricing shape of an official sale item.
// It is a closed set: the matcher switches over it exhaustively instead of
// falling through on unknown strings.
type SaleType string

const (
	// SaleTypeInstantRebate advertises both a rebate and a known final price.
	SaleTypeInstantRebate SaleType = "instant_rebate"
	// SaleTypeDiscountOnly advertises a discount amount without a final price
	// (the "$X OFF" booklet format).
	SaleTypeDiscountOnly SaleType = "discount_only"
	// SaleTypeMarkdown is a plain shelf-price markdown.
	SaleTypeMarkdown SaleType = "markdown"
	// SaleTypeMemberOnly is a members-only promotional price.
	SaleTypeMemberOnly SaleType = "member_only"
	// SaleTypeManufacturer is a manufacturer-funded promotion.
	SaleTypeManufacturer SaleType = "manufacturer"
)

// Valid reports whether the sale type is one of the known variants.
func (s SaleType) Valid() bool {
	switch s {
	case SaleTypeInstantRebate, SaleTypeDiscountOnly, SaleTypeMarkdown,
		SaleTypeMemberOnly, SaleTypeManufacturer:
		return true
	}

	return false
}

// CostcoPromotion represents one official promotional booklet with a validity
// window. Its pages are processed in resumable chunks because the external
// extraction call per page is slow and expensive.
type CostcoPromotion struct {
	ID            uuid.UUID        `json:"id"`              // The Global Unique Identifier (GUID) for the promotion.
	Title         string           `json:"title"`           // The booklet title, e.g., "January Member Savings".
	SaleStartDate time.Time        `json:"sale_start_date"` // First day the promotional prices are valid.
	SaleEndDate   time.Time        `json:"sale_end_date"`   // Last day the promotional prices are valid (inclusive).
	IsProcessed   bool             `json:"is_processed"`    // True once every page has been processed.
	Pages         []*PromotionPage `json:"pages"`           // The scanned booklet pages.
	CreatedAt     time.Time        `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt     time.Time        `json:"updated_at"`      // Timestamp of the last modification.
}

// ActiveOn reports whether the promotional window covers the given day.
func (p *CostcoPromotion) ActiveOn(day time.Time) bool {
	d := DateOnly(day)

	return !d.Before(DateOnly(p.SaleStartDate)) && !d.After(DateOnly(p.SaleEndDate))
}

// PromotionPage is one scanned page of a booklet, holding the raw text the
// external vision pipeline produced.
type PromotionPage struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the page.
	PromotionID uuid.UUID  `json:"promotion_id"` // The ID of the promotion this page belongs to.
	PageNumber  int        `json:"page_number"`  // 1-based page number within the booklet.
	RawText     string     `json:"raw_text"`     // Raw text produced by the upstream vision pipeline.
	IsProcessed bool       `json:"is_processed"` // True once sale items have been extracted from this page.
	ProcessedAt *time.Time `json:"processed_at"` // Timestamp of when extraction completed for this page.
}

// OfficialSaleItem is one promoted item extracted from a booklet page.
type OfficialSaleItem struct {
	ID            uuid.UUID        `json:"id"`             // The Global Unique Identifier (GUID) for the sale item.
	PromotionID   uuid.UUID        `json:"promotion_id"`   // The ID of the promotion this item belongs to.
	Promotion     *CostcoPromotion `json:"-"`              // The owning promotion, loaded when the validity window is needed.
	ItemCode      string           `json:"item_code"`      // The advertised item code.
	Description   string           `json:"description"`    // The advertised description.
	RegularPrice  *decimal.Decimal `json:"regular_price"`  // The advertised regular price, when printed.
	SalePrice     *decimal.Decimal `json:"sale_price"`     // The advertised final sale price, when printed.
	InstantRebate *decimal.Decimal `json:"instant_rebate"` // The advertised discount amount, when printed.
	SaleType      SaleType         `json:"sale_type"`      // The promotional pricing shape.
	CreatedAt     time.Time        `json:"created_at"`     // Timestamp of when this record was created.
}

// DeriveRebate fills InstantRebate from regular minus sale price when both are
// printed and the rebate is not. discount_only items are deliberately left
// alone: that format never carries a sale price to derive from, and a
// discount_only item without an explicit rebate is unusable.
func (i *OfficialSaleItem) DeriveRebate() {
	if i.InstantRebate != nil || i.SaleType == SaleTypeDiscountOnly {
		return
	}
	if i.RegularPrice == nil || i.SalePrice == nil {
		return
	}

	rebate := i.RegularPrice.Sub(*i.SalePrice)
	if rebate.IsPositive() {
		i.InstantRebate = &rebate
	}
}

// DateOnly truncates a timestamp to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
