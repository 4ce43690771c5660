// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push-device database operations.
type DeviceRepository interface {
	// UpsertDevice creates a device or, when the (user, device_id) pair already
	// exists, refreshes its token, platform and enabled state.
	UpsertDevice(ctx context.Context, device *entity.PushDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including disabled).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// FindPriceAlertDevices retrieves a user's enabled devices that opted in to
	// price-adjustment pushes.
	FindPriceAlertDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// UpdateToken updates the push token for a specific device.
	UpdateToken(ctx context.Context, deviceID uuid.UUID, token string) error

	// UpdatePreferences updates the per-category notification flags.
	UpdatePreferences(ctx context.Context, deviceID uuid.UUID, priceAlerts, marketing bool) error

	// DisableDevice marks a device undeliverable after a terminal token failure.
	DisableDevice(ctx context.Context, deviceID uuid.UUID) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
