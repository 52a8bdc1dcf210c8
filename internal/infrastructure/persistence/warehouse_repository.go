package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// GormWarehouseRepository implements warehouse.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID retrieves a warehouse by ID
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*warehouse.Warehouse, error) {
	var wh warehouse.Warehouse
	err := r.db.WithContext(ctx).First(&wh, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &wh, nil
}

// FindAll retrieves warehouses matching the filter
func (r *GormWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]warehouse.Warehouse, error) {
	var warehouses []warehouse.Warehouse
	query := r.db.WithContext(ctx).Model(&warehouse.Warehouse{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	err := applyFilter(query, filter, CommonSortFields).Find(&warehouses).Error
	if err != nil {
		return nil, err
	}
	return warehouses, nil
}

// Save persists a warehouse
func (r *GormWarehouseRepository) Save(ctx context.Context, wh *warehouse.Warehouse) error {
	return r.db.WithContext(ctx).Save(wh).Error
}

var _ warehouse.WarehouseRepository = (*GormWarehouseRepository)(nil)
