// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the most fundamental identity information.
type User struct {
	ID            uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email         string       // The user's primary contact email, used as the login identifier.
	Name          string       // The user's display name.
	EmailVerified bool         // Whether the user has confirmed the verification email.
	Profile       *UserProfile // A pointer to the user's profile. Nil until the profile has been created.
	CreatedAt     time.Time    // Timestamp of when this user account was created.
	UpdatedAt     time.Time    // Timestamp of the last modification to this user's data.
}

// UserProfile holds per-user preferences that are not part of the identity.
// Every registered user gets exactly one profile; registration creates it
// explicitly rather than relying on implicit creation hooks.
type UserProfile struct {
	UserID              uuid.UUID // Foreign Key that links this profile to a core User entity.
	HomeWarehouseNumber string    // The store number of the warehouse the user usually shops at.
	MarketingOptIn      bool      // Whether the user accepts non-transactional email.
	UpdatedAt           time.Time // Timestamp of the last modification to this profile.
}
