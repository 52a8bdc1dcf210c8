package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// ReceivingNoteItem is a line item of a receiving note. UnassignedQuantity
// starts at the received quantity and is consumed by location assignments.
type ReceivingNoteItem struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key"`
	NoteID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnassignedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReceivingNoteItem) TableName() string {
	return "receiving_note_items"
}

// Assign consumes unassigned quantity when the item is placed in a location
func (i *ReceivingNoteItem) Assign(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if i.UnassignedQuantity.LessThan(quantity) {
		return shared.ErrInsufficientSourceQuantity
	}
	i.UnassignedQuantity = i.UnassignedQuantity.Sub(quantity)
	i.UpdatedAt = time.Now()
	return nil
}

// IsFullyAssigned reports whether every received unit has a location
func (i *ReceivingNoteItem) IsFullyAssigned() bool {
	return i.UnassignedQuantity.IsZero()
}

// ReceivingNote records purchased material arriving at a warehouse. Issuing
// it increments the stock ledger per item and records unit prices; items keep
// an unassigned quantity for later placement via the location tracker.
type ReceivingNote struct {
	shared.BaseAggregateRoot
	SerialNumber string              `gorm:"type:varchar(30);not null"`
	WarehouseID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID           `gorm:"type:uuid;not null"`
	SupplierRef  string              `gorm:"type:varchar(200)"`
	Total        decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Items        []ReceivingNoteItem `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ReceivingNote) TableName() string {
	return "receiving_notes"
}

// ReceivingLine is the input for one received product
type ReceivingLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// NewReceivingNote creates a receiving note with its total computed from the
// line prices.
func NewReceivingNote(serialNumber string, warehouseID, createdByID uuid.UUID, supplierRef string, lines []ReceivingLine) (*ReceivingNote, error) {
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Creator ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A receiving note needs at least one item")
	}

	note := &ReceivingNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SerialNumber:      serialNumber,
		WarehouseID:       warehouseID,
		CreatedByID:       createdByID,
		SupplierRef:       supplierRef,
		Total:             decimal.Zero,
		Items:             make([]ReceivingNoteItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		total := line.Quantity.Mul(line.UnitPrice)
		now := time.Now()
		note.Items = append(note.Items, ReceivingNoteItem{
			ID:                 uuid.New(),
			NoteID:             note.ID,
			ProductID:          line.ProductID,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			Total:              total,
			UnassignedQuantity: line.Quantity,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		note.Total = note.Total.Add(total)
	}

	return note, nil
}

// ItemByID returns the item with the given ID, or nil
func (n *ReceivingNote) ItemByID(itemID uuid.UUID) *ReceivingNoteItem {
	for idx := range n.Items {
		if n.Items[idx].ID == itemID {
			return &n.Items[idx]
		}
	}
	return nil
}
