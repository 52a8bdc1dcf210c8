package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// Document type identifiers, used for serial sequences and movement audit
// references.
const (
	DocTypeEntryNote          = "entry_note"
	DocTypeReceivingNote      = "receiving_note"
	DocTypeExitNote           = "exit_note"
	DocTypeScrapNote          = "scrap_note"
	DocTypeInstallationReport = "installation_report"
	DocTypeMaterialRequest    = "material_request"
	DocTypePurchaseRequest    = "purchase_request"
	DocTypeCustodyReturn      = "custody_return"
)

// EntryNoteItem is a line item of an entry note
type EntryNoteItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	NoteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EntryNoteItem) TableName() string {
	return "entry_note_items"
}

// EntryNote records material entering a warehouse outside the purchasing
// flow. Issuing it increments the stock ledger per item inside one
// transaction.
type EntryNote struct {
	shared.BaseAggregateRoot
	SerialNumber string          `gorm:"type:varchar(30);not null"`
	WarehouseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID       `gorm:"type:uuid;not null"`
	Remark       string          `gorm:"type:varchar(500)"`
	Items        []EntryNoteItem `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (EntryNote) TableName() string {
	return "entry_notes"
}

// NoteLine is the input for one product line of an entry or exit note
type NoteLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// NewEntryNote creates an entry note; the serial number is assigned by the
// issuing transaction.
func NewEntryNote(serialNumber string, warehouseID, createdByID uuid.UUID, remark string, lines []NoteLine) (*EntryNote, error) {
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
		return nil, shared.NewDomainError("EMPTY_ITEMS", "An entry note needs at least one item")
	}

	note := &EntryNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SerialNumber:      serialNumber,
		WarehouseID:       warehouseID,
		CreatedByID:       createdByID,
		Remark:            remark,
		Items:             make([]EntryNoteItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		note.Items = append(note.Items, EntryNoteItem{
			ID:        uuid.New(),
			NoteID:    note.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			CreatedAt: time.Now(),
		})
	}

	return note, nil
}
