// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication record is not found.
	ErrAuthNotFound = errors.New("authentication not found")
)

// AuthRepository defines the interface for credential database operations.
type AuthRepository interface {
	// CreateAuthentication persists a new login method for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves the authentication record for a provider and
	// provider-side user ID (the email address for the email provider).
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationsByUserID retrieves all login methods for a user.
	FindAuthenticationsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error)
}
