// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Push delivery kinds.
const (
	// PushKindPriceAdjustmentSummary is the "you have N new alerts worth $X"
	// summary push.
	PushKindPriceAdjustmentSummary = "price_adjustment_summary"
)

// Push delivery statuses.
const (
	PushStatusSent   = "sent"
	PushStatusFailed = "failed"
)

// PushDelivery is an append-only receipt of one dispatch attempt. The unique
// (device, kind, dedupe key) triple is the concrete mechanism that prevents
// duplicate sends: the row is inserted before the gateway call, and an insert
// conflict means this exact payload already went to this device.
type PushDelivery struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the delivery attempt.
	DeviceID  uuid.UUID `json:"device_id"`  // The ID of the device that was targeted.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns the device, for audit queries.
	Kind      string    `json:"kind"`       // The category of push, e.g. price_adjustment_summary.
	DedupeKey string    `json:"dedupe_key"` // Identifies the exact payload within the kind.
	Status    string    `json:"status"`     // Outcome of the gateway call (sent, failed).
	Reason    string    `json:"reason"`     // Gateway failure reason, if any.
	SentAt    time.Time `json:"sent_at"`    // Timestamp of the dispatch attempt.
}
