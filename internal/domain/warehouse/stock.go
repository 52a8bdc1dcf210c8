package warehouse

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// Stock is the authoritative per-(warehouse, product) quantity ledger row.
// Every mutation is an increment or decrement applied under a row lock inside
// the transaction of the document that caused it; the quantity can never go
// negative and is never blindly overwritten.
type Stock struct {
	shared.BaseAggregateRoot
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_product,priority:1"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_product,priority:2"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates an empty ledger row for a warehouse-product combination
func NewStock(warehouseID, productID uuid.UUID) (*Stock, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	return &Stock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		ProductID:         productID,
		Quantity:          decimal.Zero,
	}, nil
}

// Increase adds quantity to the ledger row
func (s *Stock) Increase(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	s.Quantity = s.Quantity.Add(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Decrease removes quantity from the ledger row. It fails when the result
// would go negative; callers check availability under the same row lock.
func (s *Stock) Decrease(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if s.Quantity.LessThan(quantity) {
		return shared.ErrInsufficientStock
	}
	s.Quantity = s.Quantity.Sub(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// CanFulfill reports whether the row holds at least the requested quantity
func (s *Stock) CanFulfill(quantity decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(quantity)
}
