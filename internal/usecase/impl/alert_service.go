package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
)

type alertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates a new alert service instance
func NewAlertService(alertRepo repository.AlertRepository) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
	}
}

// GetActiveAlerts returns the user's currently eligible, undismissed alerts.
func (s *alertService) GetActiveAlerts(ctx context.Context, userID uuid.UUID) ([]*usecase.AlertView, error) {
	now := time.Now()

	alerts, err := s.alertRepo.FindActiveAlertsByUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find active alerts: %w", err)
	}

	views := make([]*usecase.AlertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, &usecase.AlertView{
			Alert:           alert,
			PriceDifference: alert.PriceDifference(),
			DaysRemaining:   alert.DaysRemaining(now),
			ExpiresAt:       expiresAt(alert),
		})
	}

	return views, nil
}

// DismissAlert hides an alert for its owner.
func (s *alertService) DismissAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound.WrapMessage("dismiss alert failed")
		}

		return fmt.Errorf("failed to find alert by ID: %w", err)
	}

	if alert.UserID != userID {
		return domainerrors.ErrAlertOwnershipViolation.WrapMessage("dismiss alert failed")
	}

	if err := s.alertRepo.DismissAlert(ctx, alertID); err != nil {
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}

	return nil
}

// expiresAt is the last calendar day the alert is claimable.
func expiresAt(alert *entity.PriceAdjustmentAlert) *time.Time {
	switch alert.Source {
	case entity.AlertSourceOfficialPromo:
		return alert.SaleEndDate
	case entity.AlertSourceUserEdit:
		end := entity.DateOnly(alert.PurchaseDate).AddDate(0, 0, entity.AdjustmentWindowDays)

		return &end
	default:
		return nil
	}
}
