package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// ExitNoteItem is a line item of an exit note
type ExitNoteItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	NoteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExitNoteItem) TableName() string {
	return "exit_note_items"
}

// ExitNote records material leaving a warehouse to fulfill an approved
// material request. Issuing it decrements the stock ledger per item and flips
// the material request to delivered, all in one transaction.
type ExitNote struct {
	shared.BaseAggregateRoot
	SerialNumber      string         `gorm:"type:varchar(30);not null"`
	WarehouseID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	MaterialRequestID uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedByID       uuid.UUID      `gorm:"type:uuid;not null"`
	Items             []ExitNoteItem `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ExitNote) TableName() string {
	return "exit_notes"
}

// NewExitNote creates an exit note for an approved material request
func NewExitNote(serialNumber string, warehouseID, materialRequestID, createdByID uuid.UUID, lines []NoteLine) (*ExitNote, error) {
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if materialRequestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Material request ID cannot be empty")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Creator ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "An exit note needs at least one item")
	}

	note := &ExitNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SerialNumber:      serialNumber,
		WarehouseID:       warehouseID,
		MaterialRequestID: materialRequestID,
		CreatedByID:       createdByID,
		Items:             make([]ExitNoteItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		note.Items = append(note.Items, ExitNoteItem{
			ID:        uuid.New(),
			NoteID:    note.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			CreatedAt: time.Now(),
		})
	}

	return note, nil
}

// ItemByID returns the item with the given ID, or nil
func (n *ExitNote) ItemByID(itemID uuid.UUID) *ExitNoteItem {
	for idx := range n.Items {
		if n.Items[idx].ID == itemID {
			return &n.Items[idx]
		}
	}
	return nil
}
