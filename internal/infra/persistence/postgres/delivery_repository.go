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
)

// deliveryRepository implements the repository.DeliveryRepository interface using GORM.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new instance of deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// CreateDelivery appends a delivery attempt. A violation of the unique
// (device_id, kind, dedupe_key) index means this payload already went to this
// device, which callers treat as "already sent".
func (r *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.PushDelivery) error {
	deliveryModel := toDeliveryModel(delivery)
	if err := r.db.WithContext(ctx).Create(deliveryModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDelivery
		}

		return errors.Wrap(err, "failed to create delivery")
	}

	delivery.ID = deliveryModel.ID

	return nil
}

// UpdateDeliveryStatus records the gateway outcome for an attempt.
func (r *deliveryRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status, reason string) error {
	err := r.db.WithContext(ctx).
		Model(&model.PushDeliveryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"reason": reason,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to update delivery status")
	}

	return nil
}

// ExistsDeliverySince reports whether any delivery of the given kind went to
// the device at or after since.
func (r *deliveryRepository) ExistsDeliverySince(ctx context.Context, deviceID uuid.UUID, kind string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PushDeliveryModel{}).
		Where("device_id = ? AND kind = ? AND sent_at >= ?", deviceID, kind, since).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check deliveries since")
	}

	return count > 0, nil
}

// FindDeliveriesByUser retrieves a user's delivery audit trail, newest first.
func (r *deliveryRepository) FindDeliveriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PushDelivery, error) {
	var deliveryModels []model.PushDeliveryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&deliveryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by user")
	}

	deliveries := make([]*entity.PushDelivery, 0, len(deliveryModels))
	for i := range deliveryModels {
		deliveries = append(deliveries, toDeliveryEntity(&deliveryModels[i]))
	}

	return deliveries, nil
}

// --- Mapper functions ---

func toDeliveryModel(delivery *entity.PushDelivery) *model.PushDeliveryModel {
	return &model.PushDeliveryModel{
		ID:        delivery.ID,
		DeviceID:  delivery.DeviceID,
		UserID:    delivery.UserID,
		Kind:      delivery.Kind,
		DedupeKey: delivery.DedupeKey,
		Status:    delivery.Status,
		Reason:    delivery.Reason,
		SentAt:    delivery.SentAt,
	}
}

func toDeliveryEntity(deliveryModel *model.PushDeliveryModel) *entity.PushDelivery {
	return &entity.PushDelivery{
		ID:        deliveryModel.ID,
		DeviceID:  deliveryModel.DeviceID,
		UserID:    deliveryModel.UserID,
		Kind:      deliveryModel.Kind,
		DedupeKey: deliveryModel.DedupeKey,
		Status:    deliveryModel.Status,
		Reason:    deliveryModel.Reason,
		SentAt:    deliveryModel.SentAt,
	}
}
