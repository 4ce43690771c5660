package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushDeviceModel mirrors the 'push_devices' table. One row per (user,
// device_id); re-registration upserts on that pair.
type PushDeviceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_device_user_device"`
	DeviceID           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_user_device"`
	Token              string    `gorm:"type:varchar(255);not null"`
	Platform           string    `gorm:"type:varchar(50);not null"`
	PriceAlertsEnabled bool      `gorm:"not null;default:true"`
	MarketingEnabled   bool      `gorm:"not null;default:false"`
	IsEnabled          bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PushDeviceModel) TableName() string {
	return "push_devices"
}
