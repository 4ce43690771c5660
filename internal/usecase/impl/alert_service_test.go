package impl

import (
	"context"
	"testing"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	mockRepo "padpro/internal/mocks/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert surface tests.
type alertServiceFixtures struct {
	service   usecase.AlertUsecase
	alertRepo *mockRepo.MockAlertRepository
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewAlertService(alertRepo)

	return alertServiceFixtures{
		service:   service,
		alertRepo: alertRepo,
	}
}

func TestAlertService_GetActiveAlerts(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	saleEnd := entity.DateOnly(time.Now().AddDate(0, 0, 5))
	promoAlert := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        userID,
		OriginalPrice: decimal.NewFromFloat(12.99),
		LowerPrice:    decimal.NewFromFloat(9.99),
		Source:        entity.AlertSourceOfficialPromo,
		SaleEndDate:   &saleEnd,
		IsActive:      true,
	}
	userAlert := &entity.PriceAdjustmentAlert{
		ID:            uuid.New(),
		UserID:        userID,
		OriginalPrice: decimal.NewFromFloat(30.00),
		LowerPrice:    decimal.NewFromFloat(24.50),
		Source:        entity.AlertSourceUserEdit,
		PurchaseDate:  entity.DateOnly(time.Now().AddDate(0, 0, -10)),
		IsActive:      true,
	}

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return([]*entity.PriceAdjustmentAlert{promoAlert, userAlert}, nil)

	views, err := fx.service.GetActiveAlerts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].PriceDifference.Equal(decimal.NewFromFloat(3.00)))
	assert.Equal(t, 5, views[0].DaysRemaining)
	require.NotNil(t, views[0].ExpiresAt)
	assert.Equal(t, saleEnd, *views[0].ExpiresAt)

	assert.True(t, views[1].PriceDifference.Equal(decimal.NewFromFloat(5.50)))
	assert.Equal(t, 20, views[1].DaysRemaining)
	require.NotNil(t, views[1].ExpiresAt)
	assert.Equal(t, entity.DateOnly(userAlert.PurchaseDate).AddDate(0, 0, entity.AdjustmentWindowDays), *views[1].ExpiresAt)
}

func TestAlertService_GetActiveAlerts_Empty(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.alertRepo.EXPECT().
		FindActiveAlertsByUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	views, err := fx.service.GetActiveAlerts(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestAlertService_DismissAlert(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.PriceAdjustmentAlert{ID: alertID, UserID: userID}, nil)

	fx.alertRepo.EXPECT().
		DismissAlert(ctx, alertID).
		Return(nil)

	err := fx.service.DismissAlert(ctx, userID, alertID)
	require.NoError(t, err)
}

func TestAlertService_DismissAlert_NotFound(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(nil, repository.ErrAlertNotFound)

	err := fx.service.DismissAlert(ctx, uuid.New(), alertID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestAlertService_DismissAlert_WrongOwner(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().
		FindAlertByID(ctx, alertID).
		Return(&entity.PriceAdjustmentAlert{ID: alertID, UserID: uuid.New()}, nil)

	// Ownership check happens before the write; DismissAlert is never called.
	err := fx.service.DismissAlert(ctx, uuid.New(), alertID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlertOwnershipViolation)
}
