// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertSource identifies which kind of observation triggered an alert.
type AlertSource string

const (
	// AlertSourceUserEdit means the cheaper price came from another user's
	// receipt (or a corrected line item).
	AlertSourceUserEdit AlertSource = "user_edit"
	// AlertSourceOfficialPromo means the cheaper price came from an official
	// promotional booklet.
	AlertSourceOfficialPromo AlertSource = "official_promo"
)

// Valid reports whether the source is one of the known variants.
func (s AlertSource) Valid() bool {
	return s == AlertSourceUserEdit || s == AlertSourceOfficialPromo
}

const (
	// AllLocationsCity is the sentinel cheaper-store city for alerts sourced
	// from an official promotion, which applies chain-wide.
	AllLocationsCity = "All Costco Locations"
	// AllLocationsNumber is the sentinel cheaper-store number for alerts
	// sourced from an official promotion.
	AllLocationsNumber = "ALL"

	// AdjustmentWindowDays is the retailer price-adjustment policy window for
	// user purchases, counted from the purchase date.
	AdjustmentWindowDays = 30
)

// PriceAdjustmentAlert records that a user overpaid for an item relative to a
// later or official lower price, within a bounded eligibility window.
type PriceAdjustmentAlert struct {
	ID                  uuid.UUID       `json:"id"`                    // The Global Unique Identifier (GUID) for the alert.
	UserID              uuid.UUID       `json:"user_id"`               // The ID of the user who is owed the adjustment.
	ItemCode            string          `json:"item_code"`             // The item code of the overpaid purchase.
	Description         string          `json:"description"`           // The item description, for display.
	OriginalPrice       decimal.Decimal `json:"original_price"`        // What the user paid.
	LowerPrice          decimal.Decimal `json:"lower_price"`           // The better price found. Always below OriginalPrice.
	OriginalStoreCity   string          `json:"original_store_city"`   // City of the warehouse where the user bought the item.
	OriginalStoreNumber string          `json:"original_store_number"` // Store number of that warehouse.
	CheaperStoreCity    string          `json:"cheaper_store_city"`    // City of the cheaper sighting; sentinel for promotions.
	CheaperStoreNumber  string          `json:"cheaper_store_number"`  // Store number of the cheaper sighting; sentinel for promotions.
	PurchaseDate        time.Time       `json:"purchase_date"`         // When the user bought the item.
	Source              AlertSource     `json:"data_source"`           // Which kind of observation triggered this alert.
	OfficialSaleItemID  *uuid.UUID      `json:"official_sale_item_id"` // Back-reference to the triggering sale item, if any.
	SaleEndDate         *time.Time      `json:"sale_end_date"`         // Promotion end date, denormalized so expiry needs no join.
	DedupeKey           *string         `json:"-"`                     // Deterministic identity key; nil only on legacy rows.
	IsActive            bool            `json:"is_active"`             // Cleared automatically once the alert expires.
	IsDismissed         bool            `json:"is_dismissed"`          // Set by the user; cleared only by a strictly better match.
	CreatedAt           time.Time       `json:"created_at"`            // Timestamp of when this record was created.
	UpdatedAt           time.Time       `json:"updated_at"`            // Timestamp of the last modification.
}

// PriceDifference is the savings the user can claim.
func (a *PriceAdjustmentAlert) PriceDifference() decimal.Decimal {
	return a.OriginalPrice.Sub(a.LowerPrice)
}

// DaysRemaining reports how many whole days of eligibility are left, clamped
// at zero. The window differs by source on purpose: official promotions count
// down to the promotion's end date, user-sourced alerts count down the fixed
// retailer policy window from the purchase date.
func (a *PriceAdjustmentAlert) DaysRemaining(now time.Time) int {
	var remaining int
	switch a.Source {
	case AlertSourceOfficialPromo:
		if a.SaleEndDate == nil {
			return 0
		}
		remaining = int(DateOnly(*a.SaleEndDate).Sub(DateOnly(now)).Hours() / 24)
	case AlertSourceUserEdit:
		elapsed := int(DateOnly(now).Sub(DateOnly(a.PurchaseDate)).Hours() / 24)
		remaining = AdjustmentWindowDays - elapsed
	default:
		return 0
	}

	if remaining < 0 {
		return 0
	}

	return remaining
}

// IsExpired reports whether the eligibility window has closed. For official
// promotions the end date itself is still eligible; for user-sourced alerts
// day 30 after the purchase is not.
func (a *PriceAdjustmentAlert) IsExpired(now time.Time) bool {
	switch a.Source {
	case AlertSourceOfficialPromo:
		if a.SaleEndDate == nil {
			return true
		}

		return DateOnly(now).After(DateOnly(*a.SaleEndDate))
	case AlertSourceUserEdit:
		elapsed := int(DateOnly(now).Sub(DateOnly(a.PurchaseDate)).Hours() / 24)

		return elapsed >= AdjustmentWindowDays
	default:
		return true
	}
}

// NormalizeForSave applies the lazy active→expired transition. It is a pure
// function invoked by every storage write path instead of a hidden save hook,
// so the transition is testable without a database. Returns true when the
// alert was deactivated by this call.
func (a *PriceAdjustmentAlert) NormalizeForSave(now time.Time) bool {
	a.UpdatedAt = now
	if a.IsActive && a.IsExpired(now) {
		a.IsActive = false

		return true
	}

	return false
}

// ComputeDedupeKey derives the deterministic identity key that makes repeated
// matching runs idempotent. Two candidates with the same key are the same
// logical alert.
func (a *PriceAdjustmentAlert) ComputeDedupeKey() string {
	saleItem := "-"
	if a.OfficialSaleItemID != nil {
		saleItem = a.OfficialSaleItemID.String()
	}

	return fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		a.UserID, a.ItemCode, DateOnly(a.PurchaseDate).Format(time.DateOnly),
		a.OriginalStoreNumber, a.Source, saleItem)
}
