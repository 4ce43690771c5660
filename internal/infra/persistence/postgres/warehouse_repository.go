package postgres

import (
	"context"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// warehouseRepository implements the repository.WarehouseRepository interface using GORM.
type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new instance of warehouseRepository.
func NewWarehouseRepository(db *gorm.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

// UpsertWarehouse creates or refreshes the record for a store number.
func (r *warehouseRepository) UpsertWarehouse(ctx context.Context, warehouse *entity.Warehouse) error {
	warehouseModel := &model.WarehouseModel{
		ID:        warehouse.ID,
		Number:    warehouse.Number,
		City:      warehouse.City,
		State:     warehouse.State,
		CreatedAt: warehouse.CreatedAt,
		UpdatedAt: warehouse.UpdatedAt,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"city", "state", "updated_at"}),
		}).
		Create(warehouseModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert warehouse")
	}

	warehouse.ID = warehouseModel.ID

	return nil
}

// FindWarehouseByNumber retrieves a warehouse by its store number.
func (r *warehouseRepository) FindWarehouseByNumber(ctx context.Context, number string) (*entity.Warehouse, error) {
	var warehouseModel model.WarehouseModel
	err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&warehouseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to find warehouse by number")
	}

	return &entity.Warehouse{
		ID:        warehouseModel.ID,
		Number:    warehouseModel.Number,
		City:      warehouseModel.City,
		State:     warehouseModel.State,
		CreatedAt: warehouseModel.CreatedAt,
		UpdatedAt: warehouseModel.UpdatedAt,
	}, nil
}
