// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type matchService struct {
	alertRepo     repository.AlertRepository
	promotionRepo repository.PromotionRepository
	receiptRepo   repository.ReceiptRepository
	minSavings    decimal.Decimal
	logger        *slog.Logger
}

// NewMatchService creates a new matching engine instance
func NewMatchService(
	alertRepo repository.AlertRepository,
	promotionRepo repository.PromotionRepository,
	receiptRepo repository.ReceiptRepository,
	cfg *config.AlertsConfig,
	logger *slog.Logger,
) usecase.MatchUsecase {
	return &matchService{
		alertRepo:     alertRepo,
		promotionRepo: promotionRepo,
		receiptRepo:   receiptRepo,
		minSavings:    decimal.NewFromFloat(cfg.MinSavings),
		logger:        logger,
	}
}

// EvaluatePurchase checks one purchase against the currently active, processed
// promotions for its item code.
func (s *matchService) EvaluatePurchase(ctx context.Context, purchase *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error) {
	// A purchase that already reflects a discount never triggers an alert for
	// itself; the user already got the deal.
	if purchase.AlreadyDiscounted() {
		return nil, nil
	}

	now := time.Now()

	items, err := s.promotionRepo.FindActiveSaleItemsByCode(ctx, purchase.ItemCode, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find active sale items: %w", err)
	}

	var created []*entity.PriceAdjustmentAlert
	for _, item := range items {
		alert, isNew, err := s.applySaleItemCandidate(ctx, purchase, item, now)
		if err != nil {
			// One bad candidate must not block the rest.
			s.logger.Error("Failed to apply sale item candidate",
				slog.String("item_code", purchase.ItemCode),
				slog.String("sale_item_id", item.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if isNew {
			created = append(created, alert)
		}
	}

	return created, nil
}

// EvaluateSaleItem fans one official sale item out to all recent purchases of
// the same item code.
func (s *matchService) EvaluateSaleItem(ctx context.Context, item *entity.OfficialSaleItem) ([]*entity.PriceAdjustmentAlert, error) {
	now := time.Now()

	if item.Promotion == nil {
		promotion, err := s.promotionRepo.FindPromotionByID(ctx, item.PromotionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load promotion for sale item: %w", err)
		}
		item.Promotion = promotion
	}

	// Alerts against an already-ended promotion would be born expired.
	if entity.DateOnly(now).After(entity.DateOnly(item.Promotion.SaleEndDate)) {
		s.logger.Debug("Skipping fan-out for ended promotion",
			slog.String("promotion_id", item.PromotionID.String()),
		)

		return nil, nil
	}

	since := entity.DateOnly(now).AddDate(0, 0, -entity.AdjustmentWindowDays)

	purchases, err := s.receiptRepo.FindRecentPurchasesByItemCode(ctx, item.ItemCode, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent purchases: %w", err)
	}

	var created []*entity.PriceAdjustmentAlert
	for _, purchase := range purchases {
		if purchase.AlreadyDiscounted() {
			continue
		}

		alert, isNew, err := s.applySaleItemCandidate(ctx, purchase, item, now)
		if err != nil {
			s.logger.Error("Failed to apply candidate during fan-out",
				slog.String("item_code", item.ItemCode),
				slog.String("user_id", purchase.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if isNew {
			created = append(created, alert)
		}
	}

	return created, nil
}

// EvaluatePriceDrop fans one discounted receipt line out to other users'
// recent full-price purchases of the same item code. This is the user-sourced
// counterpart of EvaluateSaleItem: the evidence is a receipt line instead of
// a promotion, so the alert carries the sighting warehouse and its window
// runs from each buyer's purchase date.
func (s *matchService) EvaluatePriceDrop(ctx context.Context, observed *entity.PurchaseObservation) ([]*entity.PriceAdjustmentAlert, error) {
	// Only a line that actually reflects a discount is evidence of a lower
	// price worth broadcasting.
	if !observed.AlreadyDiscounted() {
		return nil, nil
	}

	now := time.Now()
	since := entity.DateOnly(now).AddDate(0, 0, -entity.AdjustmentWindowDays)

	purchases, err := s.receiptRepo.FindRecentPurchasesByItemCode(ctx, observed.ItemCode, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent purchases: %w", err)
	}

	var created []*entity.PriceAdjustmentAlert
	for _, purchase := range purchases {
		// A user's own receipts never alert them, and buyers who already got
		// a discount have nothing to claim.
		if purchase.UserID == observed.UserID {
			continue
		}
		if purchase.AlreadyDiscounted() {
			continue
		}

		savings := purchase.Price.Sub(observed.Price)
		if savings.LessThan(s.minSavings) {
			continue
		}

		alert, isNew, err := s.applyCandidate(ctx, s.buildPriceDropCandidate(purchase, observed))
		if err != nil {
			s.logger.Error("Failed to apply candidate during price-drop fan-out",
				slog.String("item_code", observed.ItemCode),
				slog.String("user_id", purchase.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if isNew {
			created = append(created, alert)
		}
	}

	return created, nil
}

// applySaleItemCandidate runs the sale-type policy, the savings threshold, the
// tie-break and the idempotent upsert for one (purchase, sale item) pair.
// Returns the affected alert and whether it was newly created.
func (s *matchService) applySaleItemCandidate(ctx context.Context, purchase *entity.PurchaseObservation, item *entity.OfficialSaleItem, now time.Time) (*entity.PriceAdjustmentAlert, bool, error) {
	lowerPrice, ok := finalPriceFor(purchase.Price, item)
	if !ok {
		return nil, false, nil
	}

	savings := purchase.Price.Sub(lowerPrice)
	if savings.LessThan(s.minSavings) {
		// Sub-threshold matches are discarded silently; rounding-level
		// differences should not spam the user.
		return nil, false, nil
	}

	candidate := s.buildCandidate(purchase, item, lowerPrice)

	return s.applyCandidate(ctx, candidate)
}

// finalPriceFor applies the sale-type policy. The enum is closed: every
// variant is handled explicitly, and an unknown variant is a data error that
// skips the candidate rather than guessing.
func finalPriceFor(purchasePrice decimal.Decimal, item *entity.OfficialSaleItem) (decimal.Decimal, bool) {
	switch item.SaleType {
	case entity.SaleTypeDiscountOnly:
		// The "$X OFF" format: no advertised final price, the rebate applies
		// to whatever the user paid. Reject rebates that would not leave a
		// positive final price.
		if item.InstantRebate == nil || !item.InstantRebate.IsPositive() {
			return decimal.Zero, false
		}
		finalPrice := purchasePrice.Sub(*item.InstantRebate)
		if !finalPrice.IsPositive() {
			return decimal.Zero, false
		}

		return finalPrice, true

	case entity.SaleTypeInstantRebate, entity.SaleTypeMarkdown,
		entity.SaleTypeMemberOnly, entity.SaleTypeManufacturer:
		if item.SalePrice == nil {
			return decimal.Zero, false
		}
		if !purchasePrice.GreaterThan(*item.SalePrice) {
			return decimal.Zero, false
		}

		return *item.SalePrice, true

	default:
		return decimal.Zero, false
	}
}

// buildCandidate assembles the alert an official sale item would create for a
// purchase, with its deterministic dedupe key.
func (s *matchService) buildCandidate(purchase *entity.PurchaseObservation, item *entity.OfficialSaleItem, lowerPrice decimal.Decimal) *entity.PriceAdjustmentAlert {
	saleEndDate := entity.DateOnly(item.Promotion.SaleEndDate)

	candidate := &entity.PriceAdjustmentAlert{
		ID:                  uuid.New(),
		UserID:              purchase.UserID,
		ItemCode:            purchase.ItemCode,
		Description:         purchase.Description,
		OriginalPrice:       purchase.Price,
		LowerPrice:          lowerPrice,
		OriginalStoreCity:   purchase.StoreCity,
		OriginalStoreNumber: purchase.StoreNumber,
		CheaperStoreCity:    entity.AllLocationsCity,
		CheaperStoreNumber:  entity.AllLocationsNumber,
		PurchaseDate:        purchase.TransactionDate,
		Source:              entity.AlertSourceOfficialPromo,
		OfficialSaleItemID:  &item.ID,
		SaleEndDate:         &saleEndDate,
		IsActive:            true,
	}

	dedupeKey := candidate.ComputeDedupeKey()
	candidate.DedupeKey = &dedupeKey

	return candidate
}

// buildPriceDropCandidate assembles the user-sourced alert a cheaper sighting
// creates for someone else's purchase. The cheaper store is the real
// warehouse off the sighting receipt, and no sale end date is carried since
// the window runs from the purchase date.
func (s *matchService) buildPriceDropCandidate(purchase, observed *entity.PurchaseObservation) *entity.PriceAdjustmentAlert {
	candidate := &entity.PriceAdjustmentAlert{
		ID:                  uuid.New(),
		UserID:              purchase.UserID,
		ItemCode:            purchase.ItemCode,
		Description:         purchase.Description,
		OriginalPrice:       purchase.Price,
		LowerPrice:          observed.Price,
		OriginalStoreCity:   purchase.StoreCity,
		OriginalStoreNumber: purchase.StoreNumber,
		CheaperStoreCity:    observed.StoreCity,
		CheaperStoreNumber:  observed.StoreNumber,
		PurchaseDate:        purchase.TransactionDate,
		Source:              entity.AlertSourceUserEdit,
		IsActive:            true,
	}

	dedupeKey := candidate.ComputeDedupeKey()
	candidate.DedupeKey = &dedupeKey

	return candidate
}

// applyCandidate converges a candidate with whatever alert already exists for
// its scope. Two promotions matching the same purchase share one alert: the
// strictly better price wins in place, a worse or equal one is a no-op, and
// only a scope with no live alert at all gets a fresh insert.
func (s *matchService) applyCandidate(ctx context.Context, candidate *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
	existing, err := s.findLiveAlertForScope(ctx, candidate)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		return s.applyTieBreak(ctx, existing, candidate)
	}

	alert, created, err := s.alertRepo.UpsertAlert(ctx, candidate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert alert: %w", err)
	}
	if created {
		return alert, true, nil
	}

	// Lost a race with a concurrent matching pass or a re-run with the same
	// dedupe key. The winner is the existing alert; apply the tie-break to it.
	return s.applyTieBreak(ctx, alert, candidate)
}

// findLiveAlertForScope performs the non-keyed lookup the tie-break policy
// needs. User-sourced alerts are scoped to the purchase date; promotion
// alerts cover the purchase regardless of which promotion found it first.
// Expired alerts are terminal and never updated, so they are not returned.
func (s *matchService) findLiveAlertForScope(ctx context.Context, candidate *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, error) {
	var purchaseDate *time.Time
	if candidate.Source == entity.AlertSourceUserEdit {
		purchaseDate = &candidate.PurchaseDate
	}

	alerts, err := s.alertRepo.FindAlertsForItem(ctx, candidate.UserID, candidate.ItemCode, purchaseDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find alerts for item: %w", err)
	}

	now := time.Now()
	for _, alert := range alerts {
		if alert.Source != candidate.Source {
			continue
		}
		if alert.IsExpired(now) {
			continue
		}

		return alert, nil
	}

	return nil, nil
}

// applyTieBreak updates an existing alert in place when the candidate's price
// is strictly lower, clearing the user's dismissal along the way. A worse or
// equal candidate leaves the alert untouched, dismissal included.
func (s *matchService) applyTieBreak(ctx context.Context, existing, candidate *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
	if !candidate.LowerPrice.LessThan(existing.LowerPrice) {
		return existing, false, nil
	}

	if err := s.alertRepo.UpdateBetterPrice(ctx, existing.ID, candidate.LowerPrice, candidate.OfficialSaleItemID, candidate.SaleEndDate); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return existing, false, nil
		}

		return nil, false, fmt.Errorf("failed to update alert with better price: %w", err)
	}

	existing.LowerPrice = candidate.LowerPrice
	existing.OfficialSaleItemID = candidate.OfficialSaleItemID
	existing.SaleEndDate = candidate.SaleEndDate
	existing.IsDismissed = false

	s.logger.Info("Updated alert with better price",
		slog.String("alert_id", existing.ID.String()),
		slog.String("lower_price", candidate.LowerPrice.String()),
	)

	return existing, false, nil
}
