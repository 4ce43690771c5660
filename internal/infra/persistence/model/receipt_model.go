package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptModel mirrors the 'receipts' table. One row per uploaded receipt; the
// unique (user, store, date, total) index rejects double uploads of the same
// physical receipt. Deletes are physical so the index slot frees up and the
// same receipt can be uploaded again after a delete.
type ReceiptModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_receipt_identity"`
	StoreNumber     string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_receipt_identity"`
	StoreCity       string          `gorm:"type:varchar(100)"`
	TransactionDate time.Time       `gorm:"type:date;not null;uniqueIndex:idx_receipt_identity"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null;uniqueIndex:idx_receipt_identity"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []ReceiptItemModel `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ReceiptItemModel mirrors the 'receipt_items' table, one row per priced line.
type ReceiptItemModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReceiptID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemCode       string           `gorm:"type:varchar(20);not null;index"`
	Description    string           `gorm:"type:varchar(255)"`
	Price          decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Quantity       int              `gorm:"not null;default:1"`
	InstantSavings *decimal.Decimal `gorm:"type:numeric(10,2)"`
	OnSale         bool             `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptItemModel) TableName() string {
	return "receipt_items"
}
