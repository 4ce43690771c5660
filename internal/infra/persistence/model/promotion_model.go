package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostcoPromotionModel mirrors the 'costco_promotions' table, one row per
// promotional booklet.
type CostcoPromotionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	SaleStartDate time.Time `gorm:"type:date;not null"`
	SaleEndDate   time.Time `gorm:"type:date;not null;index"`
	IsProcessed   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Pages []PromotionPageModel `gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CostcoPromotionModel) TableName() string {
	return "costco_promotions"
}

// PromotionPageModel mirrors the 'promotion_pages' table, one row per scanned
// booklet page awaiting or past sale-item extraction.
type PromotionPageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PromotionID uuid.UUID `gorm:"type:uuid;not null;index:idx_page_promotion_processed"`
	PageNumber  int       `gorm:"not null"`
	RawText     string    `gorm:"type:text"`
	IsProcessed bool      `gorm:"not null;default:false;index:idx_page_promotion_processed"`
	ProcessedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionPageModel) TableName() string {
	return "promotion_pages"
}

// OfficialSaleItemModel mirrors the 'official_sale_items' table, one row per
// promoted item extracted from a booklet page.
type OfficialSaleItemModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PromotionID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemCode      string           `gorm:"type:varchar(20);not null;index"`
	Description   string           `gorm:"type:varchar(255)"`
	RegularPrice  *decimal.Decimal `gorm:"type:numeric(10,2)"`
	SalePrice     *decimal.Decimal `gorm:"type:numeric(10,2)"`
	InstantRebate *decimal.Decimal `gorm:"type:numeric(10,2)"`
	SaleType      string           `gorm:"type:varchar(30);not null"`
	CreatedAt     time.Time

	Promotion *CostcoPromotionModel `gorm:"foreignKey:PromotionID"`
}

// TableName explicitly sets the table name for GORM.
func (OfficialSaleItemModel) TableName() string {
	return "official_sale_items"
}
