package postgres

import (
	"context"
	"time"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertDevice creates a device or refreshes the existing (user, device_id)
// row's token, platform and enabled state. Clearing deleted_at on conflict
// resurrects a soft-deleted row, so re-registering a removed device works.
func (r *deviceRepository) UpsertDevice(ctx context.Context, device *entity.PushDevice) error {
	deviceModel := toDeviceModel(device)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"token", "platform", "is_enabled", "updated_at", "deleted_at",
			}),
		}).
		Create(deviceModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	device.ID = deviceModel.ID

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (r *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error) {
	var deviceModel model.PushDeviceModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceEntity(&deviceModel), nil
}

// FindDevicesByUser retrieves all devices for a specific user.
func (r *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	var deviceModels []model.PushDeviceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return toDeviceEntities(deviceModels), nil
}

// FindPriceAlertDevices retrieves a user's enabled devices that opted in to
// price-adjustment pushes.
func (r *deviceRepository) FindPriceAlertDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	var deviceModels []model.PushDeviceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_enabled = ? AND price_alerts_enabled = ?", userID, true, true).
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find price alert devices")
	}

	return toDeviceEntities(deviceModels), nil
}

// UpdateToken updates the push token for a specific device.
func (r *deviceRepository) UpdateToken(ctx context.Context, deviceID uuid.UUID, token string) error {
	result := r.db.WithContext(ctx).
		Model(&model.PushDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"token":      token,
			"is_enabled": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdatePreferences updates the per-category notification flags.
func (r *deviceRepository) UpdatePreferences(ctx context.Context, deviceID uuid.UUID, priceAlerts, marketing bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.PushDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"price_alerts_enabled": priceAlerts,
			"marketing_enabled":    marketing,
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DisableDevice marks a device undeliverable after a terminal token failure.
func (r *deviceRepository) DisableDevice(ctx context.Context, deviceID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.PushDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"is_enabled": false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to disable device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (r *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushDeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper functions ---

func toDeviceModel(device *entity.PushDevice) *model.PushDeviceModel {
	return &model.PushDeviceModel{
		ID:                 device.ID,
		UserID:             device.UserID,
		DeviceID:           device.DeviceID,
		Token:              device.Token,
		Platform:           device.Platform,
		PriceAlertsEnabled: device.PriceAlertsEnabled,
		MarketingEnabled:   device.MarketingEnabled,
		IsEnabled:          device.IsEnabled,
		CreatedAt:          device.CreatedAt,
		UpdatedAt:          device.UpdatedAt,
	}
}

func toDeviceEntity(deviceModel *model.PushDeviceModel) *entity.PushDevice {
	return &entity.PushDevice{
		ID:                 deviceModel.ID,
		UserID:             deviceModel.UserID,
		DeviceID:           deviceModel.DeviceID,
		Token:              deviceModel.Token,
		Platform:           deviceModel.Platform,
		PriceAlertsEnabled: deviceModel.PriceAlertsEnabled,
		MarketingEnabled:   deviceModel.MarketingEnabled,
		IsEnabled:          deviceModel.IsEnabled,
		CreatedAt:          deviceModel.CreatedAt,
		UpdatedAt:          deviceModel.UpdatedAt,
	}
}

func toDeviceEntities(deviceModels []model.PushDeviceModel) []*entity.PushDevice {
	devices := make([]*entity.PushDevice, 0, len(deviceModels))
	for i := range deviceModels {
		devices = append(devices, toDeviceEntity(&deviceModels[i]))
	}

	return devices
}
