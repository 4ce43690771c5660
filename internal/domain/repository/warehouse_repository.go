// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"padpro/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for warehouse persistence.
var (
	// ErrWarehouseNotFound is returned when a warehouse is not found.
	ErrWarehouseNotFound = errors.New("warehouse not found")
)

// WarehouseRepository defines the interface for warehouse lookups.
type WarehouseRepository interface {
	// UpsertWarehouse creates or refreshes the record for a store number.
	UpsertWarehouse(ctx context.Context, warehouse *entity.Warehouse) error

	// FindWarehouseByNumber retrieves a warehouse by its store number.
	FindWarehouseByNumber(ctx context.Context, number string) (*entity.Warehouse, error)
}
