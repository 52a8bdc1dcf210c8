package custody

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// CustodyReturnStatus is the parent status of a return batch. There is no
// parent-level reject: a batch whose items were all turned down still ends as
// partially_completed.
type CustodyReturnStatus string

const (
	CustodyReturnStatusPending            CustodyReturnStatus = "pending"
	CustodyReturnStatusPartiallyCompleted CustodyReturnStatus = "partially_completed"
	CustodyReturnStatusCompleted          CustodyReturnStatus = "completed"
)

// IsValid checks if the status is a valid CustodyReturnStatus
func (s CustodyReturnStatus) IsValid() bool {
	switch s {
	case CustodyReturnStatusPending, CustodyReturnStatusPartiallyCompleted, CustodyReturnStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of CustodyReturnStatus
func (s CustodyReturnStatus) String() string {
	return string(s)
}

// CustodyReturnItemStatus is the per-item adjudication outcome
type CustodyReturnItemStatus string

const (
	CustodyReturnItemStatusPendingReview CustodyReturnItemStatus = "pending_review"
	CustodyReturnItemStatusAccepted      CustodyReturnItemStatus = "accepted"
	CustodyReturnItemStatusRejected      CustodyReturnItemStatus = "rejected"
	CustodyReturnItemStatusDamaged       CustodyReturnItemStatus = "damaged"
	CustodyReturnItemStatusTotalLoss     CustodyReturnItemStatus = "total_loss"
)

// IsValid checks if the status is a valid CustodyReturnItemStatus
func (s CustodyReturnItemStatus) IsValid() bool {
	switch s {
	case CustodyReturnItemStatusPendingReview, CustodyReturnItemStatusAccepted,
		CustodyReturnItemStatusRejected, CustodyReturnItemStatusDamaged, CustodyReturnItemStatusTotalLoss:
		return true
	}
	return false
}

// IsTerminal reports whether the item has left review
func (s CustodyReturnItemStatus) IsTerminal() bool {
	return s.IsValid() && s != CustodyReturnItemStatusPendingReview
}

// CustodyReturnItem is one claimed return against a custody item. The
// returned quantity is what the user claims; the accepted quantity is what
// the warehouse keeper adjudicates back into stock.
type CustodyReturnItem struct {
	ID                       uuid.UUID               `gorm:"type:uuid;primary_key"`
	ReturnID                 uuid.UUID               `gorm:"type:uuid;not null;index"`
	CustodyItemID            uuid.UUID               `gorm:"type:uuid;not null;index"`
	ReturnedQuantity         decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	ReturnedQuantityAccepted decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	Status                   CustodyReturnItemStatus `gorm:"type:varchar(20);not null;index"`
	ProcessedByID            *uuid.UUID              `gorm:"type:uuid"`
	ProcessedAt              *time.Time
	CreatedAt                time.Time `gorm:"not null"`
	UpdatedAt                time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustodyReturnItem) TableName() string {
	return "custody_return_items"
}

// Accept adjudicates the item as accepted with the quantity going back to
// stock. Allowed only from pending_review; the accepted quantity cannot
// exceed what was claimed.
func (i *CustodyReturnItem) Accept(acceptedQuantity decimal.Decimal, processorID uuid.UUID) error {
	if i.Status != CustodyReturnItemStatusPendingReview {
		return shared.ErrInvalidState
	}
	if acceptedQuantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Accepted quantity must be positive")
	}
	if acceptedQuantity.GreaterThan(i.ReturnedQuantity) {
		return shared.NewDomainError("ACCEPTED_QUANTITY_EXCEEDS_CLAIMED", "Accepted quantity cannot exceed the claimed returned quantity")
	}

	now := time.Now()
	i.Status = CustodyReturnItemStatusAccepted
	i.ReturnedQuantityAccepted = acceptedQuantity
	i.ProcessedByID = &processorID
	i.ProcessedAt = &now
	i.UpdatedAt = now
	return nil
}

// Decline adjudicates the item as rejected, damaged or total_loss. No stock
// comes back.
func (i *CustodyReturnItem) Decline(status CustodyReturnItemStatus, processorID uuid.UUID) error {
	if i.Status != CustodyReturnItemStatusPendingReview {
		return shared.ErrInvalidState
	}
	switch status {
	case CustodyReturnItemStatusRejected, CustodyReturnItemStatusDamaged, CustodyReturnItemStatusTotalLoss:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown adjudication outcome")
	}

	now := time.Now()
	i.Status = status
	i.ReturnedQuantityAccepted = decimal.Zero
	i.ProcessedByID = &processorID
	i.ProcessedAt = &now
	i.UpdatedAt = now
	return nil
}

// CustodyReturn is a user-initiated batch return of loaned material. Items
// are adjudicated one by one; the parent status is recomputed after each
// adjudication in the same transaction.
type CustodyReturn struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status CustodyReturnStatus `gorm:"type:varchar(30);not null;index"`
	Items  []CustodyReturnItem `gorm:"foreignKey:ReturnID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustodyReturn) TableName() string {
	return "custody_returns"
}

// CustodyReturnLine is the input for one claimed return
type CustodyReturnLine struct {
	CustodyItemID    uuid.UUID
	ReturnedQuantity decimal.Decimal
}

// NewCustodyReturn creates a pending return batch with every item in
// pending_review. Cross-aggregate validation (ownership, consumables,
// returnable quantity) is done by the application service before calling.
func NewCustodyReturn(userID uuid.UUID, lines []CustodyReturnLine) (*CustodyReturn, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A custody return needs at least one item")
	}

	r := &CustodyReturn{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            CustodyReturnStatusPending,
		Items:             make([]CustodyReturnItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.CustodyItemID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_SOURCE", "Custody item reference is required")
		}
		if line.ReturnedQuantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Returned quantity must be positive")
		}
		now := time.Now()
		r.Items = append(r.Items, CustodyReturnItem{
			ID:                       uuid.New(),
			ReturnID:                 r.ID,
			CustodyItemID:            line.CustodyItemID,
			ReturnedQuantity:         line.ReturnedQuantity,
			ReturnedQuantityAccepted: decimal.Zero,
			Status:                   CustodyReturnItemStatusPendingReview,
			CreatedAt:                now,
			UpdatedAt:                now,
		})
	}

	return r, nil
}

// ItemByID returns the return item with the given ID, or nil
func (r *CustodyReturn) ItemByID(itemID uuid.UUID) *CustodyReturnItem {
	for idx := range r.Items {
		if r.Items[idx].ID == itemID {
			return &r.Items[idx]
		}
	}
	return nil
}

// RecomputeStatus derives the parent status from the item states. While any
// item is still in review the batch stays pending; once all items are
// decided it is completed only when every item was accepted.
func (r *CustodyReturn) RecomputeStatus() {
	allTerminal := true
	allAccepted := true
	for idx := range r.Items {
		if !r.Items[idx].Status.IsTerminal() {
			allTerminal = false
			break
		}
		if r.Items[idx].Status != CustodyReturnItemStatusAccepted {
			allAccepted = false
		}
	}

	if !allTerminal {
		r.Status = CustodyReturnStatusPending
		return
	}

	if allAccepted {
		r.Status = CustodyReturnStatusCompleted
	} else {
		r.Status = CustodyReturnStatusPartiallyCompleted
	}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
