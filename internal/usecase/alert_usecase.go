package usecase

import (
	"context"
	"time"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertView is the client-facing projection of an alert, with the derived
// lifecycle fields computed at read time.
type AlertView struct {
	Alert           *entity.PriceAdjustmentAlert `json:"alert"`
	PriceDifference decimal.Decimal              `json:"price_difference"`
	DaysRemaining   int                          `json:"days_remaining"`
	ExpiresAt       *time.Time                   `json:"expires_at,omitempty"`
}

// AlertUsecase defines the interface for the user-facing alert surface.
type AlertUsecase interface {
	// GetActiveAlerts returns the user's currently eligible, undismissed
	// alerts, newest first. Eligibility windows are re-derived against now, so
	// an alert whose lazy-expiry save has not run yet is still excluded.
	GetActiveAlerts(ctx context.Context, userID uuid.UUID) ([]*AlertView, error)

	// DismissAlert hides an alert for its owner. Dismissal survives expiry and
	// reactivation; only a strictly better price clears it.
	DismissAlert(ctx context.Context, userID, alertID uuid.UUID) error
}
