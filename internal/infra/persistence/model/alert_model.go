package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceAdjustmentAlertModel mirrors the 'price_adjustment_alerts' table.
// The unique (user_id, dedupe_key) index is the sole synchronization point
// between concurrent matching passes. DedupeKey is nullable: legacy rows
// without a key are exempt because PostgreSQL treats NULLs as distinct in a
// unique index. Deletes are physical: a removed alert releases its dedupe
// slot, so a later matching pass can recreate it from scratch.
type PriceAdjustmentAlertModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_alert_user_dedupe"`
	ItemCode            string          `gorm:"type:varchar(20);not null;index:idx_alert_user_item"`
	Description         string          `gorm:"type:varchar(255)"`
	OriginalPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	LowerPrice          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OriginalStoreCity   string          `gorm:"type:varchar(100)"`
	OriginalStoreNumber string          `gorm:"type:varchar(20)"`
	CheaperStoreCity    string          `gorm:"type:varchar(100)"`
	CheaperStoreNumber  string          `gorm:"type:varchar(20)"`
	PurchaseDate        time.Time       `gorm:"type:date;not null"`
	DataSource          string          `gorm:"type:varchar(30);not null"`
	OfficialSaleItemID  *uuid.UUID      `gorm:"type:uuid"`
	SaleEndDate         *time.Time      `gorm:"type:date"`
	DedupeKey           *string         `gorm:"type:varchar(255);uniqueIndex:idx_alert_user_dedupe"`
	IsActive            bool            `gorm:"not null;default:true"`
	IsDismissed         bool            `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceAdjustmentAlertModel) TableName() string {
	return "price_adjustment_alerts"
}
