package usecase

import (
	"context"

	"padpro/internal/domain/entity"
)

// MatchUsecase defines the interface for the price-adjustment matching engine.
// Both directions converge on the same idempotent alert upsert, so running
// either of them twice over the same data changes nothing.
type MatchUsecase interface {
	// EvaluatePurchase checks one purchase against the currently active,
	// processed promotions and creates or improves alerts for qualifying
	// matches. Returns the alerts created by this call (updates and
	// already-existing alerts are not included).
	EvaluatePurchase(ctx context.Context, purchase *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error)

	// EvaluateSaleItem fans one official sale item out to all purchases of the
	// same item code within the trailing adjustment window. Failures on
	// individual purchases are logged and skipped, never abort the fan-out.
	// Returns the alerts created by this call.
	EvaluateSaleItem(ctx context.Context, item *entity.OfficialSaleItem) ([]*entity.PriceAdjustmentAlert, error)

	// EvaluatePriceDrop fans one discounted receipt line out to other users'
	// full-price purchases of the same item code within the trailing
	// adjustment window. The resulting alerts are user-sourced and carry the
	// sighting warehouse as the cheaper store. The observing user's own
	// purchases never trigger. Returns the alerts created by this call.
	EvaluatePriceDrop(ctx context.Context, observed *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error)
}
