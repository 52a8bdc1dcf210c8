package catalog

import (
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/shared"
)

// Product represents a stockable item. Identity, unit and the consumable flag
// are fixed at creation; only descriptive metadata may change afterwards.
// The unit string must equal a location's capacity unit type for the product
// to be placed there, and consumable products can never come back through a
// custody return.
type Product struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Unit        string `gorm:"type:varchar(20);not null"`
	Consumable  bool   `gorm:"not null;default:false"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, code, unit string, consumable bool) (*Product, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	unit = strings.TrimSpace(unit)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Product unit cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              code,
		Unit:              unit,
		Consumable:        consumable,
	}, nil
}

// UpdateMetadata updates the mutable descriptive fields
func (p *Product) UpdateMetadata(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// FitsUnitType reports whether the product can be placed in a slot
// denominated in the given capacity unit type
func (p *Product) FitsUnitType(capacityUnitType string) bool {
	return p.Unit == capacityUnitType
}
