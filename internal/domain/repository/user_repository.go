// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID, profile included.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email, profile included.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// EnsureProfile creates the user's profile if it does not exist yet.
	// Registration calls this explicitly; there are no implicit creation hooks.
	EnsureProfile(ctx context.Context, profile *entity.UserProfile) error

	// MarkEmailVerified records that the user confirmed the verification email.
	MarkEmailVerified(ctx context.Context, userID uuid.UUID) error

	// DeleteUser removes a user account; alerts, receipts and devices cascade.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
