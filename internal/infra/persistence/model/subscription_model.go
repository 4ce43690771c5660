package model

import (
	"time"

	"github.com/google/uuid"
)

// BillingSubscriptionModel mirrors the 'billing_subscriptions' table. One row
// per (user, provider); webhook retries upsert on that pair.
type BillingSubscriptionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_user_provider"`
	Provider         string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_subscription_user_provider"`
	ProviderRef      string    `gorm:"type:varchar(255);not null"`
	Plan             string    `gorm:"type:varchar(50);not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
	CurrentPeriodEnd time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillingSubscriptionModel) TableName() string {
	return "billing_subscriptions"
}
