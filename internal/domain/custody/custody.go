package custody

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// Custody is a loan record: equipment or material already exited from a
// warehouse and handed to a user. Creating it never mutates stock; the exit
// note already did.
type Custody struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Room   string        `gorm:"type:varchar(120)"`
	Items  []CustodyItem `gorm:"foreignKey:CustodyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Custody) TableName() string {
	return "custodies"
}

// CustodyItem ties a loaned quantity back to the exit note item it came
// from. WarehouseID is the source warehouse, which is also where accepted
// returns are restocked.
type CustodyItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	CustodyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExitNoteItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null"`
	WarehouseID    uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustodyItem) TableName() string {
	return "custody_items"
}

// CustodyLine is the input for one loaned item
type CustodyLine struct {
	ExitNoteItemID uuid.UUID
	ProductID      uuid.UUID
	WarehouseID    uuid.UUID
	Quantity       decimal.Decimal
}

// NewCustody creates a custody record for a user
func NewCustody(userID uuid.UUID, room string, lines []CustodyLine) (*Custody, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A custody needs at least one item")
	}

	c := &Custody{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Room:              room,
		Items:             make([]CustodyItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ExitNoteItemID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_SOURCE", "Exit note item reference is required")
		}
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.WarehouseID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		c.Items = append(c.Items, CustodyItem{
			ID:             uuid.New(),
			CustodyID:      c.ID,
			ExitNoteItemID: line.ExitNoteItemID,
			ProductID:      line.ProductID,
			WarehouseID:    line.WarehouseID,
			Quantity:       line.Quantity,
			CreatedAt:      time.Now(),
		})
	}

	return c, nil
}

// ItemByID returns the custody item with the given ID, or nil
func (c *Custody) ItemByID(itemID uuid.UUID) *CustodyItem {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			return &c.Items[idx]
		}
	}
	return nil
}
