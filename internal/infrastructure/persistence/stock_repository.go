package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// GormStockRepository implements warehouse.StockRepository using GORM.
// The ForUpdate variants take a SELECT ... FOR UPDATE row lock and are only
// meaningful inside a transaction.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByWarehouseAndProduct retrieves a ledger row without locking
func (r *GormStockRepository) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	return r.find(ctx, r.db, warehouseID, productID)
}

// FindForUpdate retrieves a ledger row under a row lock
func (r *GormStockRepository) FindForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	return r.find(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), warehouseID, productID)
}

// GetOrCreate retrieves the ledger row, creating an empty one when it does
// not exist yet. The insert uses ON CONFLICT DO NOTHING so two concurrent
// callers never violate the unique (warehouse, product) index.
func (r *GormStockRepository) GetOrCreate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	return r.getOrCreate(ctx, warehouseID, productID, false)
}

// GetOrCreateForUpdate retrieves the ledger row under a row lock, creating it
// first when missing
func (r *GormStockRepository) GetOrCreateForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	return r.getOrCreate(ctx, warehouseID, productID, true)
}

// FindByWarehouse retrieves ledger rows for a warehouse
func (r *GormStockRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]warehouse.Stock, error) {
	var stocks []warehouse.Stock
	query := r.db.WithContext(ctx).Model(&warehouse.Stock{}).Where("warehouse_id = ?", warehouseID)
	err := applyFilter(query, filter, StockSortFields).Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save persists a ledger row
func (r *GormStockRepository) Save(ctx context.Context, stock *warehouse.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *GormStockRepository) find(ctx context.Context, db *gorm.DB, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	var stock warehouse.Stock
	err := db.WithContext(ctx).
		First(&stock, "warehouse_id = ? AND product_id = ?", warehouseID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *GormStockRepository) getOrCreate(ctx context.Context, warehouseID, productID uuid.UUID, forUpdate bool) (*warehouse.Stock, error) {
	fresh, err := warehouse.NewStock(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	db := r.db
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	// Re-read: the insert may have hit the conflict path, in which case the
	// existing row (possibly created by a concurrent transaction) wins.
	return r.find(ctx, db, warehouseID, productID)
}

var _ warehouse.StockRepository = (*GormStockRepository)(nil)
