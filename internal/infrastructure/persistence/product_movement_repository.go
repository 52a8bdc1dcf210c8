package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// GormProductMovementRepository implements warehouse.ProductMovementRepository
// using GORM. The table is append-only; there is no update or delete path.
type GormProductMovementRepository struct {
	db *gorm.DB
}

// NewGormProductMovementRepository creates a new GormProductMovementRepository
func NewGormProductMovementRepository(db *gorm.DB) *GormProductMovementRepository {
	return &GormProductMovementRepository{db: db}
}

// Create inserts a movement audit record
func (r *GormProductMovementRepository) Create(ctx context.Context, movement *warehouse.ProductMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct retrieves the movement trail of a product, newest first
func (r *GormProductMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]warehouse.ProductMovement, error) {
	var movements []warehouse.ProductMovement
	query := r.db.WithContext(ctx).Model(&warehouse.ProductMovement{}).Where("product_id = ?", productID)
	if warehouseID, ok := filter.Filters["warehouse_id"]; ok {
		query = query.Where("warehouse_id = ?", warehouseID)
	}
	if movementType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", movementType)
	}
	err := applyFilter(query, filter, CommonSortFields).Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByDocument retrieves the movements caused by one source document
func (r *GormProductMovementRepository) FindByDocument(ctx context.Context, documentType string, documentID uuid.UUID) ([]warehouse.ProductMovement, error) {
	var movements []warehouse.ProductMovement
	err := r.db.WithContext(ctx).
		Where("document_type = ? AND document_id = ?", documentType, documentID).
		Order("created_at ASC").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}

var _ warehouse.ProductMovementRepository = (*GormProductMovementRepository)(nil)
