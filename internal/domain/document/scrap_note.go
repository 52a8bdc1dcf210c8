package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// ReportStatus is the lifecycle shared by scrap notes and installation
// reports: pending -> approved | rejected, both terminal.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// IsValid checks if the status is a valid ReportStatus
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ReportStatus
func (s ReportStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ReportStatus) CanTransitionTo(target ReportStatus) bool {
	if s != ReportStatusPending {
		return false
	}
	return target == ReportStatusApproved || target == ReportStatusRejected
}

// ScrapNoteItem is a line item of a scrap note
type ScrapNoteItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	NoteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Reason    string          `gorm:"type:varchar(300)"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ScrapNoteItem) TableName() string {
	return "scrap_note_items"
}

// ScrapNote declares material to be written off. Approval decrements the
// stock ledger per item inside one transaction.
type ScrapNote struct {
	shared.BaseAggregateRoot
	SerialNumber string          `gorm:"type:varchar(30);not null"`
	WarehouseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID       `gorm:"type:uuid;not null"`
	Status       ReportStatus    `gorm:"type:varchar(20);not null;index"`
	DecidedByID  *uuid.UUID      `gorm:"type:uuid"`
	DecidedAt    *time.Time
	Items        []ScrapNoteItem `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ScrapNote) TableName() string {
	return "scrap_notes"
}

// ScrapLine is the input for one scrapped product
type ScrapLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Reason    string
}

// NewScrapNote creates a pending scrap note
func NewScrapNote(serialNumber string, warehouseID, createdByID uuid.UUID, lines []ScrapLine) (*ScrapNote, error) {
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
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A scrap note needs at least one item")
	}

	note := &ScrapNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SerialNumber:      serialNumber,
		WarehouseID:       warehouseID,
		CreatedByID:       createdByID,
		Status:            ReportStatusPending,
		Items:             make([]ScrapNoteItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		note.Items = append(note.Items, ScrapNoteItem{
			ID:        uuid.New(),
			NoteID:    note.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Reason:    line.Reason,
			CreatedAt: time.Now(),
		})
	}

	return note, nil
}

// Approve marks the note approved. Allowed only from pending; the stock
// decrement happens in the issuing transaction.
func (n *ScrapNote) Approve(deciderID uuid.UUID) error {
	if !n.Status.CanTransitionTo(ReportStatusApproved) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	n.Status = ReportStatusApproved
	n.DecidedByID = &deciderID
	n.DecidedAt = &now
	n.UpdatedAt = now
	n.IncrementVersion()
	return nil
}

// Reject marks the note rejected. Allowed only from pending.
func (n *ScrapNote) Reject(deciderID uuid.UUID) error {
	if !n.Status.CanTransitionTo(ReportStatusRejected) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	n.Status = ReportStatusRejected
	n.DecidedByID = &deciderID
	n.DecidedAt = &now
	n.UpdatedAt = now
	n.IncrementVersion()
	return nil
}
