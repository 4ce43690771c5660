package model

import (
	"time"

	"github.com/google/uuid"
)

// WarehouseModel mirrors the 'warehouses' table, the store-number lookup used
// to fill receipt and alert display metadata.
type WarehouseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Number    string    `gorm:"type:varchar(20);unique;not null"`
	City      string    `gorm:"type:varchar(100)"`
	State     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WarehouseModel) TableName() string {
	return "warehouses"
}
