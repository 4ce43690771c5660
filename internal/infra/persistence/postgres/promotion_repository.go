package postgres

import (
	"context"
	"time"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface using GORM.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new instance of promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

// CreatePromotion persists a new promotion together with its pages.
func (r *promotionRepository) CreatePromotion(ctx context.Context, promotion *entity.CostcoPromotion) error {
	promotionModel := toPromotionModel(promotion)
	if err := r.db.WithContext(ctx).Create(promotionModel).Error; err != nil {
		return errors.Wrap(err, "failed to create promotion")
	}

	// Propagate database-generated IDs back to the entity.
	promotion.ID = promotionModel.ID
	for i, pageModel := range promotionModel.Pages {
		promotion.Pages[i].ID = pageModel.ID
		promotion.Pages[i].PromotionID = pageModel.PromotionID
	}

	return nil
}

// FindPromotionByID retrieves a promotion by its unique ID.
func (r *promotionRepository) FindPromotionByID(ctx context.Context, id uuid.UUID) (*entity.CostcoPromotion, error) {
	var promotionModel model.CostcoPromotionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promotionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by id")
	}

	return toPromotionEntity(&promotionModel), nil
}

// FindUnprocessedPages retrieves up to limit unprocessed pages, in page order.
func (r *promotionRepository) FindUnprocessedPages(ctx context.Context, promotionID uuid.UUID, limit int) ([]*entity.PromotionPage, error) {
	var pageModels []model.PromotionPageModel
	err := r.db.WithContext(ctx).
		Where("promotion_id = ? AND is_processed = ?", promotionID, false).
		Order("page_number ASC").
		Limit(limit).
		Find(&pageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find unprocessed pages")
	}

	pages := make([]*entity.PromotionPage, 0, len(pageModels))
	for i := range pageModels {
		pages = append(pages, toPageEntity(&pageModels[i]))
	}

	return pages, nil
}

// MarkPageProcessed records that sale items were extracted from a page.
func (r *promotionRepository) MarkPageProcessed(ctx context.Context, pageID uuid.UUID, processedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.PromotionPageModel{}).
		Where("id = ?", pageID).
		Updates(map[string]any{
			"is_processed": true,
			"processed_at": processedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark page processed")
	}

	return nil
}

// CountUnprocessedPages returns how many pages of a promotion still await processing.
func (r *promotionRepository) CountUnprocessedPages(ctx context.Context, promotionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PromotionPageModel{}).
		Where("promotion_id = ? AND is_processed = ?", promotionID, false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unprocessed pages")
	}

	return count, nil
}

// MarkPromotionProcessed flips the promotion's processed flag.
func (r *promotionRepository) MarkPromotionProcessed(ctx context.Context, promotionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.CostcoPromotionModel{}).
		Where("id = ?", promotionID).
		Updates(map[string]any{
			"is_processed": true,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark promotion processed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// CreateSaleItems persists extracted sale items in a batch.
func (r *promotionRepository) CreateSaleItems(ctx context.Context, items []*entity.OfficialSaleItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]model.OfficialSaleItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, *toSaleItemModel(item))
	}

	if err := r.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return errors.Wrap(err, "failed to create sale items")
	}

	for i := range itemModels {
		items[i].ID = itemModels[i].ID
	}

	return nil
}

// FindSaleItemByID retrieves a sale item with its promotion loaded.
func (r *promotionRepository) FindSaleItemByID(ctx context.Context, id uuid.UUID) (*entity.OfficialSaleItem, error) {
	var itemModel model.OfficialSaleItemModel
	err := r.db.WithContext(ctx).
		Preload("Promotion").
		Where("id = ?", id).
		First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale item by id")
	}

	return toSaleItemEntity(&itemModel), nil
}

// FindActiveSaleItemsByCode retrieves sale items for an item code whose
// promotion is processed and whose validity window covers the given day.
func (r *promotionRepository) FindActiveSaleItemsByCode(ctx context.Context, itemCode string, day time.Time) ([]*entity.OfficialSaleItem, error) {
	d := entity.DateOnly(day)

	var itemModels []model.OfficialSaleItemModel
	err := r.db.WithContext(ctx).
		Preload("Promotion").
		Joins("JOIN costco_promotions ON costco_promotions.id = official_sale_items.promotion_id").
		Where("official_sale_items.item_code = ?", itemCode).
		Where("costco_promotions.is_processed = ?", true).
		Where("costco_promotions.sale_start_date <= ? AND costco_promotions.sale_end_date >= ?", d, d).
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active sale items by code")
	}

	items := make([]*entity.OfficialSaleItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toSaleItemEntity(&itemModels[i]))
	}

	return items, nil
}

// --- Mapper functions ---

func toPromotionModel(promotion *entity.CostcoPromotion) *model.CostcoPromotionModel {
	pageModels := make([]model.PromotionPageModel, 0, len(promotion.Pages))
	for _, page := range promotion.Pages {
		pageModels = append(pageModels, model.PromotionPageModel{
			ID:          page.ID,
			PromotionID: page.PromotionID,
			PageNumber:  page.PageNumber,
			RawText:     page.RawText,
			IsProcessed: page.IsProcessed,
			ProcessedAt: page.ProcessedAt,
		})
	}

	return &model.CostcoPromotionModel{
		ID:            promotion.ID,
		Title:         promotion.Title,
		SaleStartDate: entity.DateOnly(promotion.SaleStartDate),
		SaleEndDate:   entity.DateOnly(promotion.SaleEndDate),
		IsProcessed:   promotion.IsProcessed,
		CreatedAt:     promotion.CreatedAt,
		UpdatedAt:     promotion.UpdatedAt,
		Pages:         pageModels,
	}
}

func toPromotionEntity(promotionModel *model.CostcoPromotionModel) *entity.CostcoPromotion {
	pages := make([]*entity.PromotionPage, 0, len(promotionModel.Pages))
	for i := range promotionModel.Pages {
		pages = append(pages, toPageEntity(&promotionModel.Pages[i]))
	}

	return &entity.CostcoPromotion{
		ID:            promotionModel.ID,
		Title:         promotionModel.Title,
		SaleStartDate: promotionModel.SaleStartDate,
		SaleEndDate:   promotionModel.SaleEndDate,
		IsProcessed:   promotionModel.IsProcessed,
		Pages:         pages,
		CreatedAt:     promotionModel.CreatedAt,
		UpdatedAt:     promotionModel.UpdatedAt,
	}
}

func toPageEntity(pageModel *model.PromotionPageModel) *entity.PromotionPage {
	return &entity.PromotionPage{
		ID:          pageModel.ID,
		PromotionID: pageModel.PromotionID,
		PageNumber:  pageModel.PageNumber,
		RawText:     pageModel.RawText,
		IsProcessed: pageModel.IsProcessed,
		ProcessedAt: pageModel.ProcessedAt,
	}
}

func toSaleItemModel(item *entity.OfficialSaleItem) *model.OfficialSaleItemModel {
	return &model.OfficialSaleItemModel{
		ID:            item.ID,
		PromotionID:   item.PromotionID,
		ItemCode:      item.ItemCode,
		Description:   item.Description,
		RegularPrice:  item.RegularPrice,
		SalePrice:     item.SalePrice,
		InstantRebate: item.InstantRebate,
		SaleType:      string(item.SaleType),
		CreatedAt:     item.CreatedAt,
	}
}

func toSaleItemEntity(itemModel *model.OfficialSaleItemModel) *entity.OfficialSaleItem {
	item := &entity.OfficialSaleItem{
		ID:            itemModel.ID,
		PromotionID:   itemModel.PromotionID,
		ItemCode:      itemModel.ItemCode,
		Description:   itemModel.Description,
		RegularPrice:  itemModel.RegularPrice,
		SalePrice:     itemModel.SalePrice,
		InstantRebate: itemModel.InstantRebate,
		SaleType:      entity.SaleType(itemModel.SaleType),
		CreatedAt:     itemModel.CreatedAt,
	}
	if itemModel.Promotion != nil {
		item.Promotion = toPromotionEntity(itemModel.Promotion)
	}

	return item
}
