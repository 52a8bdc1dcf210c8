package warehouse

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// Location is a capacity-bounded slot inside a warehouse. Capacity is
// denominated in a unit type string; only products whose unit equals that
// type may be placed here. Invariant: 0 <= UsedCapacityUnits <= CapacityUnits.
type Location struct {
	shared.BaseAggregateRoot
	WarehouseID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_location_warehouse_name,priority:1"`
	Name              string          `gorm:"type:varchar(120);not null;uniqueIndex:idx_location_warehouse_name,priority:2"`
	CapacityUnits     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UsedCapacityUnits decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CapacityUnitType  string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// NewLocation creates a new location within a warehouse
func NewLocation(warehouseID uuid.UUID, name string, capacityUnits decimal.Decimal, capacityUnitType string) (*Location, error) {
	name = strings.TrimSpace(name)
	capacityUnitType = strings.TrimSpace(capacityUnitType)
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Location name cannot be empty")
	}
	if capacityUnits.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity must be positive")
	}
	if capacityUnitType == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Capacity unit type cannot be empty")
	}

	return &Location{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		Name:              name,
		CapacityUnits:     capacityUnits,
		UsedCapacityUnits: decimal.Zero,
		CapacityUnitType:  capacityUnitType,
	}, nil
}

// RemainingCapacity returns the capacity still available for placements
func (l *Location) RemainingCapacity() decimal.Decimal {
	return l.CapacityUnits.Sub(l.UsedCapacityUnits)
}

// AcceptsUnit reports whether the location's capacity unit matches
func (l *Location) AcceptsUnit(unit string) bool {
	return l.CapacityUnitType == unit
}

// CanHold reports whether the remaining capacity fits the quantity
func (l *Location) CanHold(quantity decimal.Decimal) bool {
	return l.RemainingCapacity().GreaterThanOrEqual(quantity)
}

// Allocate consumes capacity for a placement
func (l *Location) Allocate(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if !l.CanHold(quantity) {
		return shared.ErrInsufficientCapacity
	}
	l.UsedCapacityUnits = l.UsedCapacityUnits.Add(quantity)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// Release frees capacity when a placement is removed
func (l *Location) Release(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if l.UsedCapacityUnits.LessThan(quantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Cannot release more capacity than is in use")
	}
	l.UsedCapacityUnits = l.UsedCapacityUnits.Sub(quantity)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}
