// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushDevice represents a user's device registered for push notifications.
// There is at most one row per (user, device id); re-registration upserts.
type PushDevice struct {
	ID                 uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the device.
	UserID             uuid.UUID `json:"user_id"`              // The ID of the user who owns this device.
	DeviceID           string    `json:"device_id"`            // Unique device identifier from the client.
	Token              string    `json:"token"`                // Push delivery token for this device.
	Platform           string    `json:"platform"`             // Device platform (ios, android).
	PriceAlertsEnabled bool      `json:"price_alerts_enabled"` // Per-category preference: price-adjustment summaries.
	MarketingEnabled   bool      `json:"marketing_enabled"`    // Per-category preference: marketing pushes.
	IsEnabled          bool      `json:"is_enabled"`           // Cleared automatically on terminal delivery failure.
	CreatedAt          time.Time `json:"created_at"`           // Timestamp of when this device was registered.
	UpdatedAt          time.Time `json:"updated_at"`           // Timestamp of the last modification.
}
