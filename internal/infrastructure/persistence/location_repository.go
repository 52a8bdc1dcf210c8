package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// GormLocationRepository implements warehouse.LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID retrieves a location by ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*warehouse.Location, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves a location by ID under a row lock
func (r *GormLocationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*warehouse.Location, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindAvailable retrieves locations in the warehouse whose capacity unit
// matches and whose remaining capacity fits the quantity, most remaining
// capacity first
func (r *GormLocationRepository) FindAvailable(ctx context.Context, warehouseID uuid.UUID, unitType string, quantity decimal.Decimal) ([]warehouse.Location, error) {
	var locations []warehouse.Location
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND capacity_unit_type = ?", warehouseID, unitType).
		Where("capacity_units - used_capacity_units >= ?", quantity).
		Order("capacity_units - used_capacity_units DESC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// FindByWarehouse retrieves locations of a warehouse
func (r *GormLocationRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]warehouse.Location, error) {
	var locations []warehouse.Location
	query := r.db.WithContext(ctx).Model(&warehouse.Location{}).Where("warehouse_id = ?", warehouseID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	err := applyFilter(query, filter, CommonSortFields).Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// Save persists a location
func (r *GormLocationRepository) Save(ctx context.Context, location *warehouse.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *GormLocationRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*warehouse.Location, error) {
	var location warehouse.Location
	err := db.WithContext(ctx).First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

var _ warehouse.LocationRepository = (*GormLocationRepository)(nil)

// GormProductLocationRepository implements warehouse.ProductLocationRepository
// using GORM
type GormProductLocationRepository struct {
	db *gorm.DB
}

// NewGormProductLocationRepository creates a new GormProductLocationRepository
func NewGormProductLocationRepository(db *gorm.DB) *GormProductLocationRepository {
	return &GormProductLocationRepository{db: db}
}

// FindByProductAndLocation retrieves a placement
func (r *GormProductLocationRepository) FindByProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) (*warehouse.ProductLocation, error) {
	return r.find(ctx, r.db, productID, locationID)
}

// GetOrCreateForUpdate retrieves the placement under a row lock, creating an
// empty one when it does not exist yet
func (r *GormProductLocationRepository) GetOrCreateForUpdate(ctx context.Context, productID, locationID uuid.UUID) (*warehouse.ProductLocation, error) {
	fresh, err := warehouse.NewProductLocation(productID, locationID)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}
	return r.find(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), productID, locationID)
}

// FindByLocation retrieves placements in a location
func (r *GormProductLocationRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]warehouse.ProductLocation, error) {
	var placements []warehouse.ProductLocation
	err := r.db.WithContext(ctx).Where("location_id = ?", locationID).Find(&placements).Error
	if err != nil {
		return nil, err
	}
	return placements, nil
}

// FindByProduct retrieves placements of a product across locations
func (r *GormProductLocationRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]warehouse.ProductLocation, error) {
	var placements []warehouse.ProductLocation
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&placements).Error
	if err != nil {
		return nil, err
	}
	return placements, nil
}

// Save persists a placement
func (r *GormProductLocationRepository) Save(ctx context.Context, placement *warehouse.ProductLocation) error {
	return r.db.WithContext(ctx).Save(placement).Error
}

func (r *GormProductLocationRepository) find(ctx context.Context, db *gorm.DB, productID, locationID uuid.UUID) (*warehouse.ProductLocation, error) {
	var placement warehouse.ProductLocation
	err := db.WithContext(ctx).
		First(&placement, "product_id = ? AND location_id = ?", productID, locationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &placement, nil
}

var _ warehouse.ProductLocationRepository = (*GormProductLocationRepository)(nil)
