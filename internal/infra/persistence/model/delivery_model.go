package model

import (
	"time"

	"github.com/google/uuid"
)

// PushDeliveryModel mirrors the 'push_deliveries' table. Append-only; the
// unique (device_id, kind, dedupe_key) index is what makes sends at most
// once, so it must never be relaxed.
type PushDeliveryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_delivery_device_kind_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_delivery_device_kind_key"`
	DedupeKey string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_delivery_device_kind_key"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Reason    string    `gorm:"type:varchar(255)"`
	SentAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PushDeliveryModel) TableName() string {
	return "push_deliveries"
}
