package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// PurchaseRequestStatus represents the status of a purchase request
type PurchaseRequestStatus string

const (
	PurchaseRequestStatusPending  PurchaseRequestStatus = "pending"
	PurchaseRequestStatusApproved PurchaseRequestStatus = "approved"
	PurchaseRequestStatusRejected PurchaseRequestStatus = "rejected"
)

// IsValid checks if the status is a valid PurchaseRequestStatus
func (s PurchaseRequestStatus) IsValid() bool {
	switch s {
	case PurchaseRequestStatusPending, PurchaseRequestStatusApproved, PurchaseRequestStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of PurchaseRequestStatus
func (s PurchaseRequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseRequestStatus) CanTransitionTo(target PurchaseRequestStatus) bool {
	if s != PurchaseRequestStatusPending {
		return false // approved and rejected are terminal
	}
	return target == PurchaseRequestStatusApproved || target == PurchaseRequestStatusRejected
}

// PurchaseRequestItem is a line item of a purchase request
type PurchaseRequestItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	RequestID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null"`
	RequestedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ApprovedQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseRequestItem) TableName() string {
	return "purchase_request_items"
}

// NewPurchaseRequestItem creates a new purchase request item
func NewPurchaseRequestItem(requestID, productID uuid.UUID, requested decimal.Decimal) (*PurchaseRequestItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if requested.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}
	now := time.Now()
	return &PurchaseRequestItem{
		ID:                uuid.New(),
		RequestID:         requestID,
		ProductID:         productID,
		RequestedQuantity: requested,
		ApprovedQuantity:  decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// PurchaseRequest is a warehouse keeper's request to purchase material,
// approved by the manager resolved through keeper -> warehouse -> department.
// Both approved and rejected are terminal; there is no partial approval.
type PurchaseRequest struct {
	shared.BaseAggregateRoot
	KeeperID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID             `gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Status      PurchaseRequestStatus `gorm:"type:varchar(20);not null;index"`
	Reason      string                `gorm:"type:varchar(500)"`
	DecidedAt   *time.Time
	Items       []PurchaseRequestItem `gorm:"foreignKey:RequestID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

// PurchaseRequestLine is the input for one requested product
type PurchaseRequestLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// NewPurchaseRequest creates a pending purchase request. The manager must be
// resolved transitively before calling; a broken chain fails creation.
func NewPurchaseRequest(keeperID, warehouseID, managerID uuid.UUID, reason string, lines []PurchaseRequestLine) (*PurchaseRequest, error) {
	if keeperID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_KEEPER", "Warehouse keeper ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if managerID == uuid.Nil {
		return nil, shared.ErrManagerNotFound
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A purchase request needs at least one item")
	}

	request := &PurchaseRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		KeeperID:          keeperID,
		WarehouseID:       warehouseID,
		ManagerID:         managerID,
		Status:            PurchaseRequestStatusPending,
		Reason:            reason,
		Items:             make([]PurchaseRequestItem, 0, len(lines)),
	}

	for _, line := range lines {
		item, err := NewPurchaseRequestItem(request.ID, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		request.Items = append(request.Items, *item)
	}

	request.AddDomainEvent(NewPurchaseRequestCreatedEvent(request))

	return request, nil
}

// Approve copies every item's requested quantity into its approved quantity.
// Allowed only from pending.
func (r *PurchaseRequest) Approve(managerID uuid.UUID) error {
	if managerID != r.ManagerID {
		return shared.ErrForbidden
	}
	if !r.Status.CanTransitionTo(PurchaseRequestStatusApproved) {
		return shared.ErrInvalidState
	}

	for idx := range r.Items {
		r.Items[idx].ApprovedQuantity = r.Items[idx].RequestedQuantity
		r.Items[idx].UpdatedAt = time.Now()
	}

	now := time.Now()
	r.Status = PurchaseRequestStatusApproved
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewPurchaseRequestDecidedEvent(r))

	return nil
}

// Reject rejects the request. Allowed only from pending.
func (r *PurchaseRequest) Reject(managerID uuid.UUID) error {
	if managerID != r.ManagerID {
		return shared.ErrForbidden
	}
	if !r.Status.CanTransitionTo(PurchaseRequestStatusRejected) {
		return shared.ErrInvalidState
	}

	now := time.Now()
	r.Status = PurchaseRequestStatusRejected
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewPurchaseRequestDecidedEvent(r))

	return nil
}
