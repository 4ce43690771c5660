package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes an existing one.
// Registration re-enables a device that was disabled for a dead token; the
// client just handed us a fresh one.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.PushDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			device.Token = deviceInfo.Token
			device.Platform = deviceInfo.Platform
			device.IsEnabled = true
			device.UpdatedAt = time.Now()

			if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
				return nil, fmt.Errorf("failed to update device: %w", err)
			}

			return device, nil
		}
	}

	device := &entity.PushDevice{
		ID:                 uuid.New(),
		UserID:             userID,
		DeviceID:           deviceInfo.DeviceID,
		Token:              deviceInfo.Token,
		Platform:           deviceInfo.Platform,
		PriceAlertsEnabled: true,
		MarketingEnabled:   false,
		IsEnabled:          true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdateToken updates the push token for a specific device
func (s *deviceService) UpdateToken(ctx context.Context, userID, deviceID uuid.UUID, token string) error {
	if err := s.verifyOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, deviceID, token); err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}

// UpdatePreferences updates the per-category notification flags for a device
func (s *deviceService) UpdatePreferences(ctx context.Context, userID, deviceID uuid.UUID, prefs *usecase.DevicePreferences) error {
	if err := s.verifyOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdatePreferences(ctx, deviceID, prefs.PriceAlertsEnabled, prefs.MarketingEnabled); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	return nil
}

// GetUserDevices retrieves all devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	return devices, nil
}

// RemoveDevice removes a device registration
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.verifyOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// verifyOwnership loads a device and checks it belongs to the caller.
func (s *deviceService) verifyOwnership(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device lookup failed")
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.UserID != userID {
		return domainerrors.ErrDeviceOwnershipViolation.WrapMessage("device access denied")
	}

	return nil
}
