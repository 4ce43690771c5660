package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestPriceAdjustmentAlert_DaysRemaining_UserEdit(t *testing.T) {
	now := time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		purchaseDate time.Time
		remaining    int
		expired      bool
	}{
		{"bought today", now, 30, false},
		{"bought 10 days ago", now.AddDate(0, 0, -10), 20, false},
		{"bought 29 days ago", now.AddDate(0, 0, -29), 1, false},
		{"bought exactly 30 days ago", now.AddDate(0, 0, -30), 0, true},
		{"bought 35 days ago clamps to zero", now.AddDate(0, 0, -35), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := &PriceAdjustmentAlert{
				Source:       AlertSourceUserEdit,
				PurchaseDate: tt.purchaseDate,
			}

			assert.Equal(t, tt.remaining, alert.DaysRemaining(now))
			assert.Equal(t, tt.expired, alert.IsExpired(now))
		})
	}
}

func TestPriceAdjustmentAlert_DaysRemaining_OfficialPromo(t *testing.T) {
	now := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		endDate   *time.Time
		remaining int
		expired   bool
	}{
		{"ends in 11 days", datePtr(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)), 11, false},
		{"ends today is still eligible", datePtr(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)), 0, false},
		{"ended yesterday", datePtr(time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)), 0, true},
		{"missing end date treated as expired", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := &PriceAdjustmentAlert{
				Source:      AlertSourceOfficialPromo,
				SaleEndDate: tt.endDate,
			}

			assert.Equal(t, tt.remaining, alert.DaysRemaining(now))
			assert.Equal(t, tt.expired, alert.IsExpired(now))
		})
	}
}

func TestPriceAdjustmentAlert_NormalizeForSave(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expired alert is deactivated lazily", func(t *testing.T) {
		alert := &PriceAdjustmentAlert{
			Source:       AlertSourceUserEdit,
			PurchaseDate: now.AddDate(0, 0, -35),
			IsActive:     true,
		}

		deactivated := alert.NormalizeForSave(now)

		assert.True(t, deactivated)
		assert.False(t, alert.IsActive)
		assert.Equal(t, now, alert.UpdatedAt)
	})

	t.Run("live alert is untouched", func(t *testing.T) {
		alert := &PriceAdjustmentAlert{
			Source:       AlertSourceUserEdit,
			PurchaseDate: now.AddDate(0, 0, -5),
			IsActive:     true,
		}

		assert.False(t, alert.NormalizeForSave(now))
		assert.True(t, alert.IsActive)
	})

	t.Run("dismissal survives normalization", func(t *testing.T) {
		alert := &PriceAdjustmentAlert{
			Source:       AlertSourceUserEdit,
			PurchaseDate: now.AddDate(0, 0, -40),
			IsActive:     true,
			IsDismissed:  true,
		}

		alert.NormalizeForSave(now)

		assert.True(t, alert.IsDismissed)
		assert.False(t, alert.IsActive)
	})
}

func TestPriceAdjustmentAlert_PriceDifference(t *testing.T) {
	alert := &PriceAdjustmentAlert{
		OriginalPrice: decimal.RequireFromString("12.99"),
		LowerPrice:    decimal.RequireFromString("9.99"),
	}

	assert.True(t, alert.PriceDifference().Equal(decimal.RequireFromString("3.00")))
}

func TestPriceAdjustmentAlert_ComputeDedupeKey(t *testing.T) {
	userID := uuid.New()
	saleItemID := uuid.New()
	purchase := time.Date(2024, 1, 1, 18, 45, 0, 0, time.UTC)

	alert := &PriceAdjustmentAlert{
		UserID:              userID,
		ItemCode:            "123456",
		PurchaseDate:        purchase,
		OriginalStoreNumber: "847",
		Source:              AlertSourceOfficialPromo,
		OfficialSaleItemID:  &saleItemID,
	}

	key := alert.ComputeDedupeKey()
	require.Contains(t, key, "123456")
	require.Contains(t, key, "2024-01-01")

	// Deterministic: same fields, same key, regardless of time-of-day noise.
	clone := *alert
	clone.PurchaseDate = purchase.Add(3 * time.Hour)
	assert.Equal(t, key, clone.ComputeDedupeKey())

	// Different sale item, different logical alert.
	otherItem := uuid.New()
	clone.OfficialSaleItemID = &otherItem
	assert.NotEqual(t, key, clone.ComputeDedupeKey())
}

func TestReceiptItem_AlreadyDiscounted(t *testing.T) {
	savings := decimal.RequireFromString("2.00")
	zero := decimal.Zero

	assert.True(t, (&ReceiptItem{OnSale: true}).AlreadyDiscounted())
	assert.True(t, (&ReceiptItem{InstantSavings: &savings}).AlreadyDiscounted())
	assert.False(t, (&ReceiptItem{InstantSavings: &zero}).AlreadyDiscounted())
	assert.False(t, (&ReceiptItem{}).AlreadyDiscounted())
}
