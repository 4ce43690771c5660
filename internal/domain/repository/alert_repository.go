// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertRepository defines the interface for price-adjustment-alert database
// operations. The unique (user_id, dedupe_key) index on the alert table is
// the only synchronization point between concurrent matching passes; every
// write path treats a constraint violation as "already exists", never as an
// error.
type AlertRepository interface {
	// UpsertAlert inserts a candidate alert idempotently. If an alert with the
	// same dedupe key already exists (including one inserted by a concurrent
	// matching pass racing this call), the existing row is returned with
	// created=false.
	UpsertAlert(ctx context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error)

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.PriceAdjustmentAlert, error)

	// FindAlertsForItem retrieves a user's undeleted alerts for one item code,
	// optionally scoped to a purchase date. This is the non-keyed lookup used
	// for tie-breaks and for legacy rows whose dedupe key is NULL.
	FindAlertsForItem(ctx context.Context, userID uuid.UUID, itemCode string, purchaseDate *time.Time) ([]*entity.PriceAdjustmentAlert, error)

	// UpdateBetterPrice lowers an alert's lower_price in place and clears the
	// user's dismissal. Callers only invoke it for strictly better prices.
	UpdateBetterPrice(ctx context.Context, id uuid.UUID, lowerPrice decimal.Decimal, saleItemID *uuid.UUID, saleEndDate *time.Time) error

	// SaveAlert persists an alert after applying the normalize-before-persist
	// step (lazy expiry).
	SaveAlert(ctx context.Context, alert *entity.PriceAdjustmentAlert) error

	// DismissAlert marks an alert dismissed by its owner.
	DismissAlert(ctx context.Context, id uuid.UUID) error

	// FindActiveAlertsByUser returns the alerts currently visible to a user.
	// The eligibility time windows are re-derived in the query itself, so the
	// result is correct even for rows whose lazy-expiry save has not run yet.
	FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.PriceAdjustmentAlert, error)

	// FindAlertsByIDs retrieves a batch of alerts, used to build notification
	// summaries for alerts created in one matching run.
	FindAlertsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.PriceAdjustmentAlert, error)

	// DeleteAlertsForPurchase removes alerts keyed to a deleted receipt's
	// purchase context (its item codes, transaction date and store).
	DeleteAlertsForPurchase(ctx context.Context, userID uuid.UUID, itemCodes []string, purchaseDate time.Time, storeNumber string) error
}
