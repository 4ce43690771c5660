// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse maps a store number to its location, used to fill in receipt
// metadata and alert display fields.
type Warehouse struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the warehouse.
	Number    string    `json:"number"`     // The store number printed on receipts.
	City      string    `json:"city"`       // Warehouse city.
	State     string    `json:"state"`      // Warehouse state or region.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
