package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
)

type receiptService struct {
	txManager       repository.TransactionManager
	receiptRepo     repository.ReceiptRepository
	warehouseRepo   repository.WarehouseRepository
	matchSvc        usecase.MatchUsecase
	notificationSvc usecase.NotificationUsecase
	logger          *slog.Logger
}

// NewReceiptService creates a new receipt ingestion service instance
func NewReceiptService(
	txManager repository.TransactionManager,
	receiptRepo repository.ReceiptRepository,
	warehouseRepo repository.WarehouseRepository,
	matchSvc usecase.MatchUsecase,
	notificationSvc usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ReceiptUsecase {
	return &receiptService{
		txManager:       txManager,
		receiptRepo:     receiptRepo,
		warehouseRepo:   warehouseRepo,
		matchSvc:        matchSvc,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// IngestReceipt stores a parsed receipt atomically and runs the matching
// engine over its non-discounted lines.
func (s *receiptService) IngestReceipt(ctx context.Context, userID uuid.UUID, input *usecase.IngestReceiptInput) (*usecase.IngestReceiptOutput, error) {
	transactionDate, err := time.Parse(time.DateOnly, input.TransactionDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transaction_date must be YYYY-MM-DD").WrapMessage("ingest receipt failed")
	}

	storeCity := s.resolveStoreCity(ctx, input.StoreNumber, input.StoreCity)

	receipt := &entity.Receipt{
		ID:              uuid.New(),
		UserID:          userID,
		StoreNumber:     input.StoreNumber,
		StoreCity:       storeCity,
		TransactionDate: entity.DateOnly(transactionDate),
		Total:           input.Total,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	for _, item := range input.Items {
		receipt.Items = append(receipt.Items, &entity.ReceiptItem{
			ID:             uuid.New(),
			ReceiptID:      receipt.ID,
			ItemCode:       item.ItemCode,
			Description:    item.Description,
			Price:          item.Price,
			Quantity:       item.Quantity,
			InstantSavings: item.InstantSavings,
			OnSale:         item.OnSale,
		})
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReceiptRepository().CreateReceipt(ctx, receipt); err != nil {
			if errors.Is(err, repository.ErrDuplicateReceipt) {
				return domainerrors.ErrReceiptAlreadyExists.WrapMessage("ingest receipt failed")
			}

			return fmt.Errorf("failed to create receipt: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The matching pass runs after the commit. Alert creation is idempotent
	// through the dedupe key, so a crash between the two steps only delays
	// alerts until the next promotion fan-out touches the same purchases.
	alertsCreated := s.matchReceiptLines(ctx, receipt)

	return &usecase.IngestReceiptOutput{
		Receipt:       receipt,
		AlertsCreated: alertsCreated,
	}, nil
}

// matchReceiptLines evaluates every line of a freshly stored receipt.
// Full-price lines are checked against the active promotions for the
// uploader; discounted lines are broadcast to other users who recently paid
// full price for the same item. Per-line failures are logged and skipped.
// Returns the uploader's own new alerts; cross-user alerts are pushed out
// instead of returned.
func (s *receiptService) matchReceiptLines(ctx context.Context, receipt *entity.Receipt) []*entity.PriceAdjustmentAlert {
	var ownAlerts []*entity.PriceAdjustmentAlert
	var crossUserAlerts []*entity.PriceAdjustmentAlert

	for _, item := range receipt.Items {
		observation := &entity.PurchaseObservation{
			UserID:          receipt.UserID,
			ReceiptID:       receipt.ID,
			ItemCode:        item.ItemCode,
			Description:     item.Description,
			Price:           item.Price,
			InstantSavings:  item.InstantSavings,
			OnSale:          item.OnSale,
			StoreNumber:     receipt.StoreNumber,
			StoreCity:       receipt.StoreCity,
			TransactionDate: receipt.TransactionDate,
		}

		if item.AlreadyDiscounted() {
			alerts, err := s.matchSvc.EvaluatePriceDrop(ctx, observation)
			if err != nil {
				s.logger.Error("Failed to broadcast discounted receipt line",
					slog.String("receipt_id", receipt.ID.String()),
					slog.String("item_code", item.ItemCode),
					slog.Any("error", err),
				)

				continue
			}
			crossUserAlerts = append(crossUserAlerts, alerts...)

			continue
		}

		alerts, err := s.matchSvc.EvaluatePurchase(ctx, observation)
		if err != nil {
			s.logger.Error("Failed to evaluate receipt line",
				slog.String("receipt_id", receipt.ID.String()),
				slog.String("item_code", item.ItemCode),
				slog.Any("error", err),
			)

			continue
		}
		ownAlerts = append(ownAlerts, alerts...)
	}

	s.notifyCrossUserAlerts(ctx, crossUserAlerts)

	return ownAlerts
}

// notifyCrossUserAlerts pushes summaries for alerts created on other users'
// purchases. The uploader sees their own alerts in the ingest response, so
// only the cross-user batch is pushed. A push failure never fails the ingest.
func (s *receiptService) notifyCrossUserAlerts(ctx context.Context, alerts []*entity.PriceAdjustmentAlert) {
	if len(alerts) == 0 {
		return
	}

	alertIDs := make([]uuid.UUID, 0, len(alerts))
	for _, alert := range alerts {
		alertIDs = append(alertIDs, alert.ID)
	}

	if err := s.notificationSvc.SummarizeNewAlerts(ctx, alertIDs); err != nil {
		s.logger.Error("Failed to push cross-user alert summaries",
			slog.Int("alert_count", len(alertIDs)),
			slog.Any("error", err),
		)
	}
}

// GetUserReceipts retrieves a user's receipts with pagination.
func (s *receiptService) GetUserReceipts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Receipt, error) {
	receipts, err := s.receiptRepo.FindReceiptsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find receipts by user: %w", err)
	}

	return receipts, nil
}

// DeleteReceipt removes a receipt and cascades to the alerts keyed to its
// purchase context.
func (s *receiptService) DeleteReceipt(ctx context.Context, userID, receiptID uuid.UUID) error {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return domainerrors.ErrReceiptNotFound.WrapMessage("delete receipt failed")
		}

		return fmt.Errorf("failed to find receipt by ID: %w", err)
	}

	if receipt.UserID != userID {
		return domainerrors.ErrReceiptOwnershipViolation.WrapMessage("delete receipt failed")
	}

	itemCodes := make([]string, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		itemCodes = append(itemCodes, item.ItemCode)
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReceiptRepository().DeleteReceipt(ctx, receiptID); err != nil {
			return fmt.Errorf("failed to delete receipt: %w", err)
		}

		if len(itemCodes) == 0 {
			return nil
		}

		if err := repoFactory.NewAlertRepository().DeleteAlertsForPurchase(ctx, userID, itemCodes, receipt.TransactionDate, receipt.StoreNumber); err != nil {
			return fmt.Errorf("failed to delete alerts for purchase: %w", err)
		}

		return nil
	})
}

// resolveStoreCity backfills a missing store city from the warehouse table
// and records fresh store metadata when the receipt carries it.
func (s *receiptService) resolveStoreCity(ctx context.Context, storeNumber, storeCity string) string {
	if storeCity != "" {
		err := s.warehouseRepo.UpsertWarehouse(ctx, &entity.Warehouse{
			ID:     uuid.New(),
			Number: storeNumber,
			City:   storeCity,
		})
		if err != nil {
			s.logger.Warn("Failed to record warehouse metadata",
				slog.String("store_number", storeNumber),
				slog.Any("error", err),
			)
		}

		return storeCity
	}

	warehouse, err := s.warehouseRepo.FindWarehouseByNumber(ctx, storeNumber)
	if err != nil {
		if !errors.Is(err, repository.ErrWarehouseNotFound) {
			s.logger.Warn("Failed to look up warehouse",
				slog.String("store_number", storeNumber),
				slog.Any("error", err),
			)
		}

		return ""
	}

	return warehouse.City
}
