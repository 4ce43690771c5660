package postgres

import (
	"context"
	"time"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new instance of alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// UpsertAlert inserts the candidate alert. The unique (user_id, dedupe_key)
// index arbitrates concurrent matching passes: on a violation the winner row
// is re-fetched and returned with created=false instead of an error.
func (r *alertRepository) UpsertAlert(ctx context.Context, alert *entity.PriceAdjustmentAlert) (*entity.PriceAdjustmentAlert, bool, error) {
	now := time.Now()
	alert.NormalizeForSave(now)
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = now
	}

	alertModel := toAlertModel(alert)
	if err := r.db.WithContext(ctx).Create(alertModel).Error; err != nil {
		if isUniqueConstraintViolation(err) && alert.DedupeKey != nil {
			existing, findErr := r.findByDedupeKey(ctx, alert.UserID, *alert.DedupeKey)
			if findErr != nil {
				return nil, false, errors.Wrap(findErr, "failed to load alert after dedupe conflict")
			}

			return existing, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to create alert")
	}

	return toAlertEntity(alertModel), true, nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (r *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.PriceAdjustmentAlert, error) {
	var alertModel model.PriceAdjustmentAlertModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by id")
	}

	return toAlertEntity(&alertModel), nil
}

// FindAlertsForItem retrieves a user's alerts for one item code, optionally
// scoped to a purchase date.
func (r *alertRepository) FindAlertsForItem(ctx context.Context, userID uuid.UUID, itemCode string, purchaseDate *time.Time) ([]*entity.PriceAdjustmentAlert, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND item_code = ?", userID, itemCode)
	if purchaseDate != nil {
		query = query.Where("purchase_date = ?", entity.DateOnly(*purchaseDate))
	}

	var alertModels []model.PriceAdjustmentAlertModel
	if err := query.Order("created_at DESC").Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts for item")
	}

	return toAlertEntities(alertModels), nil
}

// UpdateBetterPrice lowers an alert's price in place. The dismissal flag is
// cleared because a strictly better price is new information for the user.
func (r *alertRepository) UpdateBetterPrice(ctx context.Context, id uuid.UUID, lowerPrice decimal.Decimal, saleItemID *uuid.UUID, saleEndDate *time.Time) error {
	updates := map[string]any{
		"lower_price":  lowerPrice,
		"is_dismissed": false,
		"updated_at":   time.Now(),
	}
	if saleItemID != nil {
		updates["official_sale_item_id"] = *saleItemID
	}
	if saleEndDate != nil {
		updates["sale_end_date"] = entity.DateOnly(*saleEndDate)
	}

	result := r.db.WithContext(ctx).
		Model(&model.PriceAdjustmentAlertModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alert price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// SaveAlert persists an alert after the lazy-expiry normalization.
func (r *alertRepository) SaveAlert(ctx context.Context, alert *entity.PriceAdjustmentAlert) error {
	alert.NormalizeForSave(time.Now())

	if err := r.db.WithContext(ctx).Save(toAlertModel(alert)).Error; err != nil {
		return errors.Wrap(err, "failed to save alert")
	}

	return nil
}

// DismissAlert marks an alert dismissed by its owner.
func (r *alertRepository) DismissAlert(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.PriceAdjustmentAlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_dismissed": true,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to dismiss alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// FindActiveAlertsByUser returns the alerts currently visible to a user. The
// eligibility windows are re-derived in SQL so rows whose lazy-expiry save has
// not run yet are still filtered correctly.
func (r *alertRepository) FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.PriceAdjustmentAlert, error) {
	today := entity.DateOnly(now)
	purchaseCutoff := today.AddDate(0, 0, -entity.AdjustmentWindowDays)

	var alertModels []model.PriceAdjustmentAlertModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND is_dismissed = ?", userID, true, false).
		Where(
			r.db.Where("data_source = ? AND purchase_date > ?", entity.AlertSourceUserEdit, purchaseCutoff).
				Or("data_source = ? AND sale_end_date >= ?", entity.AlertSourceOfficialPromo, today),
		).
		Order("created_at DESC").
		Find(&alertModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts by user")
	}

	return toAlertEntities(alertModels), nil
}

// FindAlertsByIDs retrieves a batch of alerts by ID.
func (r *alertRepository) FindAlertsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.PriceAdjustmentAlert, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var alertModels []model.PriceAdjustmentAlertModel
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&alertModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by ids")
	}

	return toAlertEntities(alertModels), nil
}

// DeleteAlertsForPurchase removes the alerts keyed to a deleted receipt's
// purchase context. The rows are destroyed, not flagged, so their dedupe
// slots free up for any later re-upload of the same receipt.
func (r *alertRepository) DeleteAlertsForPurchase(ctx context.Context, userID uuid.UUID, itemCodes []string, purchaseDate time.Time, storeNumber string) error {
	if len(itemCodes) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_code IN ? AND purchase_date = ? AND original_store_number = ?",
			userID, itemCodes, entity.DateOnly(purchaseDate), storeNumber).
		Delete(&model.PriceAdjustmentAlertModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete alerts for purchase")
	}

	return nil
}

func (r *alertRepository) findByDedupeKey(ctx context.Context, userID uuid.UUID, dedupeKey string) (*entity.PriceAdjustmentAlert, error) {
	var alertModel model.PriceAdjustmentAlertModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND dedupe_key = ?", userID, dedupeKey).
		First(&alertModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, err
	}

	return toAlertEntity(&alertModel), nil
}

// --- Mapper functions ---

func toAlertModel(alert *entity.PriceAdjustmentAlert) *model.PriceAdjustmentAlertModel {
	return &model.PriceAdjustmentAlertModel{
		ID:                  alert.ID,
		UserID:              alert.UserID,
		ItemCode:            alert.ItemCode,
		Description:         alert.Description,
		OriginalPrice:       alert.OriginalPrice,
		LowerPrice:          alert.LowerPrice,
		OriginalStoreCity:   alert.OriginalStoreCity,
		OriginalStoreNumber: alert.OriginalStoreNumber,
		CheaperStoreCity:    alert.CheaperStoreCity,
		CheaperStoreNumber:  alert.CheaperStoreNumber,
		PurchaseDate:        entity.DateOnly(alert.PurchaseDate),
		DataSource:          string(alert.Source),
		OfficialSaleItemID:  alert.OfficialSaleItemID,
		SaleEndDate:         alert.SaleEndDate,
		DedupeKey:           alert.DedupeKey,
		IsActive:            alert.IsActive,
		IsDismissed:         alert.IsDismissed,
		CreatedAt:           alert.CreatedAt,
		UpdatedAt:           alert.UpdatedAt,
	}
}

func toAlertEntity(alertModel *model.PriceAdjustmentAlertModel) *entity.PriceAdjustmentAlert {
	return &entity.PriceAdjustmentAlert{
		ID:                  alertModel.ID,
		UserID:              alertModel.UserID,
		ItemCode:            alertModel.ItemCode,
		Description:         alertModel.Description,
		OriginalPrice:       alertModel.OriginalPrice,
		LowerPrice:          alertModel.LowerPrice,
		OriginalStoreCity:   alertModel.OriginalStoreCity,
		OriginalStoreNumber: alertModel.OriginalStoreNumber,
		CheaperStoreCity:    alertModel.CheaperStoreCity,
		CheaperStoreNumber:  alertModel.CheaperStoreNumber,
		PurchaseDate:        alertModel.PurchaseDate,
		Source:              entity.AlertSource(alertModel.DataSource),
		OfficialSaleItemID:  alertModel.OfficialSaleItemID,
		SaleEndDate:         alertModel.SaleEndDate,
		DedupeKey:           alertModel.DedupeKey,
		IsActive:            alertModel.IsActive,
		IsDismissed:         alertModel.IsDismissed,
		CreatedAt:           alertModel.CreatedAt,
		UpdatedAt:           alertModel.UpdatedAt,
	}
}

func toAlertEntities(alertModels []model.PriceAdjustmentAlertModel) []*entity.PriceAdjustmentAlert {
	alerts := make([]*entity.PriceAdjustmentAlert, 0, len(alertModels))
	for i := range alertModels {
		alerts = append(alerts, toAlertEntity(&alertModels[i]))
	}

	return alerts
}
