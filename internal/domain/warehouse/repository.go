package warehouse

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// WarehouseRepository defines persistence operations for warehouses
type WarehouseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)
	Save(ctx context.Context, wh *Warehouse) error
}

// StockRepository defines persistence operations for the stock ledger.
// FindForUpdate acquires a row lock (SELECT ... FOR UPDATE) and must be
// called inside a transaction; GetOrCreate is race-safe via ON CONFLICT.
type StockRepository interface {
	FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	FindForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	GetOrCreate(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	GetOrCreateForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]Stock, error)
	Save(ctx context.Context, stock *Stock) error
}

// LocationRepository defines persistence operations for locations
type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Location, error)
	// FindAvailable returns locations in the warehouse whose capacity unit
	// matches unitType and whose remaining capacity fits quantity, ordered by
	// remaining capacity descending.
	FindAvailable(ctx context.Context, warehouseID uuid.UUID, unitType string, quantity decimal.Decimal) ([]Location, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]Location, error)
	Save(ctx context.Context, location *Location) error
}

// ProductLocationRepository defines persistence operations for placements
type ProductLocationRepository interface {
	FindByProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) (*ProductLocation, error)
	GetOrCreateForUpdate(ctx context.Context, productID, locationID uuid.UUID) (*ProductLocation, error)
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]ProductLocation, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductLocation, error)
	Save(ctx context.Context, placement *ProductLocation) error
}

// ProductMovementRepository is append-only: movements are created, listed,
// and never modified.
type ProductMovementRepository interface {
	Create(ctx context.Context, movement *ProductMovement) error
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ProductMovement, error)
	FindByDocument(ctx context.Context, documentType string, documentID uuid.UUID) ([]ProductMovement, error)
}

// DocumentSequenceRepository hands out serial counter values. NextValue locks
// the (documentType, year) row, increments it and returns the new counter;
// the row is created on first use.
type DocumentSequenceRepository interface {
	NextValue(ctx context.Context, documentType string, year int) (int64, error)
}
