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

// receiptRepository implements the repository.ReceiptRepository interface using GORM.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new instance of receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// CreateReceipt persists a receipt together with its line items. A violation
// of the (user, store, date, total) unique index means the same physical
// receipt was uploaded twice.
func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entity.Receipt) error {
	receiptModel := toReceiptModel(receipt)
	if err := r.db.WithContext(ctx).Create(receiptModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReceipt
		}

		return errors.Wrap(err, "failed to create receipt")
	}

	receipt.ID = receiptModel.ID
	for i, itemModel := range receiptModel.Items {
		receipt.Items[i].ID = itemModel.ID
		receipt.Items[i].ReceiptID = itemModel.ReceiptID
	}

	return nil
}

// FindReceiptByID retrieves a receipt with its line items.
func (r *receiptRepository) FindReceiptByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&receiptModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt by id")
	}

	return toReceiptEntity(&receiptModel), nil
}

// FindReceiptsByUser retrieves a user's receipts, newest first.
func (r *receiptRepository) FindReceiptsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Receipt, error) {
	var receiptModels []model.ReceiptModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&receiptModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find receipts by user")
	}

	receipts := make([]*entity.Receipt, 0, len(receiptModels))
	for i := range receiptModels {
		receipts = append(receipts, toReceiptEntity(&receiptModels[i]))
	}

	return receipts, nil
}

// DeleteReceipt removes a receipt row outright; its line items follow via the
// cascade. The physical delete frees the identity index slot, so the same
// receipt can be uploaded again afterwards.
func (r *receiptRepository) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReceiptModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete receipt")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReceiptNotFound
	}

	return nil
}

// purchaseObservationRow is the scan target for the fan-out join. It flattens
// one receipt line with its purchase context.
type purchaseObservationRow struct {
	UserID          uuid.UUID
	ReceiptID       uuid.UUID
	ItemCode        string
	Description     string
	Price           decimal.Decimal
	InstantSavings  *decimal.Decimal
	OnSale          bool
	StoreNumber     string
	StoreCity       string
	TransactionDate time.Time
}

// FindRecentPurchasesByItemCode returns the flattened purchase observations
// for an item code bought on or after since, across all users.
func (r *receiptRepository) FindRecentPurchasesByItemCode(ctx context.Context, itemCode string, since time.Time) ([]*entity.PurchaseObservation, error) {
	var rows []purchaseObservationRow
	err := r.db.WithContext(ctx).
		Model(&model.ReceiptItemModel{}).
		Select(`receipts.user_id,
			receipt_items.receipt_id,
			receipt_items.item_code,
			receipt_items.description,
			receipt_items.price,
			receipt_items.instant_savings,
			receipt_items.on_sale,
			receipts.store_number,
			receipts.store_city,
			receipts.transaction_date`).
		Joins("JOIN receipts ON receipts.id = receipt_items.receipt_id").
		Where("receipt_items.item_code = ?", itemCode).
		Where("receipts.transaction_date >= ?", entity.DateOnly(since)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent purchases by item code")
	}

	observations := make([]*entity.PurchaseObservation, 0, len(rows))
	for i := range rows {
		row := rows[i]
		observations = append(observations, &entity.PurchaseObservation{
			UserID:          row.UserID,
			ReceiptID:       row.ReceiptID,
			ItemCode:        row.ItemCode,
			Description:     row.Description,
			Price:           row.Price,
			InstantSavings:  row.InstantSavings,
			OnSale:          row.OnSale,
			StoreNumber:     row.StoreNumber,
			StoreCity:       row.StoreCity,
			TransactionDate: row.TransactionDate,
		})
	}

	return observations, nil
}

// --- Mapper functions ---

func toReceiptModel(receipt *entity.Receipt) *model.ReceiptModel {
	itemModels := make([]model.ReceiptItemModel, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		itemModels = append(itemModels, model.ReceiptItemModel{
			ID:             item.ID,
			ReceiptID:      item.ReceiptID,
			ItemCode:       item.ItemCode,
			Description:    item.Description,
			Price:          item.Price,
			Quantity:       item.Quantity,
			InstantSavings: item.InstantSavings,
			OnSale:         item.OnSale,
		})
	}

	return &model.ReceiptModel{
		ID:              receipt.ID,
		UserID:          receipt.UserID,
		StoreNumber:     receipt.StoreNumber,
		StoreCity:       receipt.StoreCity,
		TransactionDate: entity.DateOnly(receipt.TransactionDate),
		Total:           receipt.Total,
		CreatedAt:       receipt.CreatedAt,
		UpdatedAt:       receipt.UpdatedAt,
		Items:           itemModels,
	}
}

func toReceiptEntity(receiptModel *model.ReceiptModel) *entity.Receipt {
	items := make([]*entity.ReceiptItem, 0, len(receiptModel.Items))
	for i := range receiptModel.Items {
		itemModel := receiptModel.Items[i]
		items = append(items, &entity.ReceiptItem{
			ID:             itemModel.ID,
			ReceiptID:      itemModel.ReceiptID,
			ItemCode:       itemModel.ItemCode,
			Description:    itemModel.Description,
			Price:          itemModel.Price,
			Quantity:       itemModel.Quantity,
			InstantSavings: itemModel.InstantSavings,
			OnSale:         itemModel.OnSale,
		})
	}

	return &entity.Receipt{
		ID:              receiptModel.ID,
		UserID:          receiptModel.UserID,
		StoreNumber:     receiptModel.StoreNumber,
		StoreCity:       receiptModel.StoreCity,
		TransactionDate: receiptModel.TransactionDate,
		Total:           receiptModel.Total,
		Items:           items,
		CreatedAt:       receiptModel.CreatedAt,
		UpdatedAt:       receiptModel.UpdatedAt,
	}
}
