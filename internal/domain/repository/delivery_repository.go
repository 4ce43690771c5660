// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for push-delivery persistence.
var (
	// ErrDuplicateDelivery is returned when the same (device, kind, dedupe key)
	// delivery has already been recorded. Callers treat it as "already sent".
	ErrDuplicateDelivery = errors.New("delivery already recorded")
)

// DeliveryRepository defines the interface for push-delivery database
// operations. The append-only delivery table doubles as the at-most-once
// send ledger: an insert that conflicts on (device, kind, dedupe key) means
// the payload was already delivered.
type DeliveryRepository interface {
	// CreateDelivery appends a delivery attempt. Returns ErrDuplicateDelivery
	// when the (device, kind, dedupe key) triple already exists.
	CreateDelivery(ctx context.Context, delivery *entity.PushDelivery) error

	// UpdateDeliveryStatus records the gateway outcome for an attempt.
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status, reason string) error

	// ExistsDeliverySince reports whether any delivery of the given kind went
	// to the device at or after since. Used for throttling.
	ExistsDeliverySince(ctx context.Context, deviceID uuid.UUID, kind string, since time.Time) (bool, error)

	// FindDeliveriesByUser retrieves a user's delivery audit trail, newest first.
	FindDeliveriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PushDelivery, error)
}
