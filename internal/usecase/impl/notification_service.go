package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	deliveryRepo    repository.DeliveryRepository
	alertRepo       repository.AlertRepository
	pushSender      service.PushSender
	throttleMinutes int
	logger          *slog.Logger
}

// NewNotificationService creates a new notification fan-out service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	deliveryRepo repository.DeliveryRepository,
	alertRepo repository.AlertRepository,
	pushSender service.PushSender,
	cfg *config.AlertsConfig,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		deliveryRepo:    deliveryRepo,
		alertRepo:       alertRepo,
		pushSender:      pushSender,
		throttleMinutes: cfg.PushThrottleMinutes,
		logger:          logger,
	}
}

// SendPriceAdjustmentSummary delivers one summary push per eligible device.
// Notification delivery is best-effort: no alert state depends on it, and
// per-device failures never abort the remaining devices.
func (s *notificationService) SendPriceAdjustmentSummary(ctx context.Context, input *usecase.SummaryInput) (int, error) {
	devices, err := s.deviceRepo.FindPriceAlertDevices(ctx, input.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to find price alert devices: %w", err)
	}

	if len(devices) == 0 {
		return 0, nil
	}

	title, body, data := s.buildSummaryPayload(input)
	dedupeKey := fmt.Sprintf("latest_alert:%s", input.LatestAlert.ID)

	sent := 0
	for _, device := range devices {
		delivered, err := s.deliverToDevice(ctx, device, input.Throttle, dedupeKey, title, body, data)
		if err != nil {
			s.logger.Error("Failed to deliver summary to device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if delivered {
			sent++
		}
	}

	return sent, nil
}

// deliverToDevice runs the per-device pipeline: throttle check, ledger insert,
// gateway call, outcome bookkeeping. The ledger insert happens before the
// gateway call so a crash or retry can never send the same payload twice.
func (s *notificationService) deliverToDevice(ctx context.Context, device *entity.PushDevice, throttle bool, dedupeKey, title, body string, data map[string]string) (bool, error) {
	now := time.Now()

	if throttle && s.throttleMinutes > 0 {
		since := now.Add(-time.Duration(s.throttleMinutes) * time.Minute)
		recentlyNotified, err := s.deliveryRepo.ExistsDeliverySince(ctx, device.ID, entity.PushKindPriceAdjustmentSummary, since)
		if err != nil {
			return false, fmt.Errorf("failed to check delivery throttle: %w", err)
		}
		if recentlyNotified {
			// Skip without consuming the dedupe slot; a later batch outside
			// the throttle window may still deliver this summary.
			return false, nil
		}
	}

	delivery := &entity.PushDelivery{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		UserID:    device.UserID,
		Kind:      entity.PushKindPriceAdjustmentSummary,
		DedupeKey: dedupeKey,
		Status:    entity.PushStatusSent,
		SentAt:    now,
	}

	if err := s.deliveryRepo.CreateDelivery(ctx, delivery); err != nil {
		if errors.Is(err, repository.ErrDuplicateDelivery) {
			// This exact summary already went to this device.
			return false, nil
		}

		return false, fmt.Errorf("failed to record delivery: %w", err)
	}

	if err := s.pushSender.SendSingleNotification(ctx, device.Token, title, body, data); err != nil {
		if statusErr := s.deliveryRepo.UpdateDeliveryStatus(ctx, delivery.ID, entity.PushStatusFailed, err.Error()); statusErr != nil {
			s.logger.Warn("Failed to record delivery failure",
				slog.String("delivery_id", delivery.ID.String()),
				slog.Any("error", statusErr),
			)
		}

		if errors.Is(err, service.ErrInvalidToken) {
			if disableErr := s.deviceRepo.DisableDevice(ctx, device.ID); disableErr != nil {
				s.logger.Warn("Failed to disable device with dead token",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", disableErr),
				)
			}
		}

		return false, fmt.Errorf("failed to send push: %w", err)
	}

	return true, nil
}

// SummarizeNewAlerts groups freshly created alerts by owner and sends one
// throttled summary push per user.
func (s *notificationService) SummarizeNewAlerts(ctx context.Context, alertIDs []uuid.UUID) error {
	if len(alertIDs) == 0 {
		return nil
	}

	alerts, err := s.alertRepo.FindAlertsByIDs(ctx, alertIDs)
	if err != nil {
		return fmt.Errorf("failed to find alerts by IDs: %w", err)
	}

	byUser := make(map[uuid.UUID][]*entity.PriceAdjustmentAlert)
	for _, alert := range alerts {
		byUser[alert.UserID] = append(byUser[alert.UserID], alert)
	}

	for userID, userAlerts := range byUser {
		latest := userAlerts[0]
		total := decimal.Zero
		for _, alert := range userAlerts {
			total = total.Add(alert.PriceDifference())
			if alert.CreatedAt.After(latest.CreatedAt) {
				latest = alert
			}
		}

		sent, err := s.SendPriceAdjustmentSummary(ctx, &usecase.SummaryInput{
			UserID:       userID,
			LatestAlert:  latest,
			AlertCount:   len(userAlerts),
			TotalSavings: total,
			Throttle:     true,
		})
		if err != nil {
			s.logger.Error("Failed to send summary for user",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)

			continue
		}

		s.logger.Info("Sent price adjustment summary",
			slog.String("user_id", userID.String()),
			slog.Int("alert_count", len(userAlerts)),
			slog.Int("devices_reached", sent),
		)
	}

	return nil
}

// buildSummaryPayload templates the single payload shared by all of the
// user's devices in one batch.
func (s *notificationService) buildSummaryPayload(input *usecase.SummaryInput) (title, body string, data map[string]string) {
	title = "Price adjustment available"

	if input.AlertCount == 1 {
		body = fmt.Sprintf("You could get $%s back on a recent purchase", input.TotalSavings.StringFixed(2))
	} else {
		body = fmt.Sprintf("You have %d new price adjustments worth $%s", input.AlertCount, input.TotalSavings.StringFixed(2))
	}

	data = map[string]string{
		"kind":            entity.PushKindPriceAdjustmentSummary,
		"latest_alert_id": input.LatestAlert.ID.String(),
		"alert_count":     fmt.Sprintf("%d", input.AlertCount),
		"total_savings":   input.TotalSavings.StringFixed(2),
	}

	return title, body, data
}
