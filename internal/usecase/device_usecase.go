package usecase

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	Token    string `json:"token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DevicePreferences represents the per-category notification flags.
type DevicePreferences struct {
	PriceAlertsEnabled bool `json:"price_alerts_enabled"`
	MarketingEnabled   bool `json:"marketing_enabled"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.PushDevice, error)

	// UpdateToken updates the push token for a specific device
	UpdateToken(ctx context.Context, userID, deviceID uuid.UUID, token string) error

	// UpdatePreferences updates the per-category notification flags for a device
	UpdatePreferences(ctx context.Context, userID, deviceID uuid.UUID, prefs *DevicePreferences) error

	// GetUserDevices retrieves all devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// RemoveDevice removes a device registration
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
