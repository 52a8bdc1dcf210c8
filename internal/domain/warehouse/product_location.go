package warehouse

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// ProductLocation records how much of a product sits in a specific location.
// Keyed (product, location) unique; the sum of placements in a location never
// exceeds the location's capacity because every Add is paired with a
// Location.Allocate in the same transaction.
type ProductLocation struct {
	shared.BaseAggregateRoot
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_location,priority:1"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_location,priority:2"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductLocation) TableName() string {
	return "product_locations"
}

// NewProductLocation creates an empty placement row
func NewProductLocation(productID, locationID uuid.UUID) (*ProductLocation, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location ID cannot be empty")
	}
	return &ProductLocation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		LocationID:        locationID,
		Quantity:          decimal.Zero,
	}, nil
}

// Add increases the placed quantity
func (p *ProductLocation) Add(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Quantity = p.Quantity.Add(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Remove decreases the placed quantity
func (p *ProductLocation) Remove(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Quantity.LessThan(quantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Cannot remove more than is placed")
	}
	p.Quantity = p.Quantity.Sub(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
