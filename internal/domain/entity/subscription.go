// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Billing providers.
const (
	BillingProviderStripe = "stripe"
	BillingProviderApple  = "apple"
)

// Billing statuses, mirrored from provider webhook payloads.
const (
	BillingStatusActive   = "active"
	BillingStatusPastDue  = "past_due"
	BillingStatusCanceled = "canceled"
)

// BillingSubscription is the locally persisted view of a user's paid plan.
// Provider reconciliation happens externally; this record only tracks the
// last state the provider reported.
type BillingSubscription struct {
	ID               uuid.UUID `json:"id"`                 // The Global Unique Identifier (GUID) for the subscription.
	UserID           uuid.UUID `json:"user_id"`            // The ID of the subscribed user.
	Provider         string    `json:"provider"`           // Billing provider (stripe, apple).
	ProviderRef      string    `json:"provider_ref"`       // The provider's own subscription identifier.
	Plan             string    `json:"plan"`               // Plan name as reported by the provider.
	Status           string    `json:"status"`             // Last reported status.
	CurrentPeriodEnd time.Time `json:"current_period_end"` // End of the paid period last reported.
	CreatedAt        time.Time `json:"created_at"`         // Timestamp of when this record was created.
	UpdatedAt        time.Time `json:"updated_at"`         // Timestamp of the last modification.
}

// IsCurrent reports whether the subscription grants access right now.
func (s *BillingSubscription) IsCurrent(now time.Time) bool {
	return s.Status == BillingStatusActive && now.Before(s.CurrentPeriodEnd)
}
