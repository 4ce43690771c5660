package usecase

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryInput describes one user's batch of fresh alerts to be announced in
// a single push.
type SummaryInput struct {
	UserID       uuid.UUID
	LatestAlert  *entity.PriceAdjustmentAlert
	AlertCount   int
	TotalSavings decimal.Decimal
	// Throttle enables the per-device rate limit. Manual and test sends pass
	// false to bypass it.
	Throttle bool
}

// NotificationUsecase defines the interface for push fan-out of alert
// summaries.
type NotificationUsecase interface {
	// SendPriceAdjustmentSummary delivers one summary push to each of the
	// user's enabled, price-alert-subscribed devices. Per-device delivery is
	// deduplicated through the delivery ledger and rate limited by the
	// throttle window. Returns the number of devices actually reached.
	SendPriceAdjustmentSummary(ctx context.Context, input *SummaryInput) (int, error)

	// SummarizeNewAlerts groups a batch of freshly created alerts by owner and
	// sends one throttled summary push per user. Per-user failures are logged
	// and skipped.
	SummarizeNewAlerts(ctx context.Context, alertIDs []uuid.UUID) error
}
