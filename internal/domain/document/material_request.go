package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// MaterialRequestStatus represents the status of a material request
type MaterialRequestStatus string

const (
	MaterialRequestStatusPending   MaterialRequestStatus = "pending"
	MaterialRequestStatusApproved  MaterialRequestStatus = "approved"
	MaterialRequestStatusRejected  MaterialRequestStatus = "rejected"
	MaterialRequestStatusDelivered MaterialRequestStatus = "delivered"
)

// IsValid checks if the status is a valid MaterialRequestStatus
func (s MaterialRequestStatus) IsValid() bool {
	switch s {
	case MaterialRequestStatusPending, MaterialRequestStatusApproved,
		MaterialRequestStatusRejected, MaterialRequestStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of MaterialRequestStatus
func (s MaterialRequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s MaterialRequestStatus) CanTransitionTo(target MaterialRequestStatus) bool {
	switch s {
	case MaterialRequestStatusPending:
		return target == MaterialRequestStatusApproved || target == MaterialRequestStatusRejected
	case MaterialRequestStatusApproved:
		return target == MaterialRequestStatusDelivered
	case MaterialRequestStatusRejected, MaterialRequestStatusDelivered:
		return false // Terminal states
	}
	return false
}

// MaterialRequestItem is a line item of a material request
type MaterialRequestItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	RequestID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null"`
	RequestedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ApprovedQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MaterialRequestItem) TableName() string {
	return "material_request_items"
}

// NewMaterialRequestItem creates a new material request item
func NewMaterialRequestItem(requestID, productID uuid.UUID, requested decimal.Decimal) (*MaterialRequestItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if requested.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}
	now := time.Now()
	return &MaterialRequestItem{
		ID:                uuid.New(),
		RequestID:         requestID,
		ProductID:         productID,
		RequestedQuantity: requested,
		ApprovedQuantity:  decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// MaterialRequest is a user's request for material, approved by the manager
// of the requester's department and fulfilled by a warehouse keeper via an
// exit note. Lifecycle: pending -> approved -> delivered, or
// pending -> rejected.
type MaterialRequest struct {
	shared.BaseAggregateRoot
	RequesterID uuid.UUID             `gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	KeeperID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Status      MaterialRequestStatus `gorm:"type:varchar(20);not null;index"`
	Reason      string                `gorm:"type:varchar(500)"`
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	DeliveredAt *time.Time
	Items       []MaterialRequestItem `gorm:"foreignKey:RequestID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MaterialRequest) TableName() string {
	return "material_requests"
}

// MaterialRequestLine is the input for one requested product
type MaterialRequestLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// NewMaterialRequest creates a pending material request. The approving
// manager must already be resolved through the requester's department.
func NewMaterialRequest(requesterID, managerID, keeperID, warehouseID uuid.UUID, reason string, lines []MaterialRequestLine) (*MaterialRequest, error) {
	if requesterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUESTER", "Requester ID cannot be empty")
	}
	if managerID == uuid.Nil {
		return nil, shared.ErrManagerNotFound
	}
	if keeperID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_KEEPER", "Warehouse keeper ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A material request needs at least one item")
	}

	request := &MaterialRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequesterID:       requesterID,
		ManagerID:         managerID,
		KeeperID:          keeperID,
		WarehouseID:       warehouseID,
		Status:            MaterialRequestStatusPending,
		Reason:            reason,
		Items:             make([]MaterialRequestItem, 0, len(lines)),
	}

	for _, line := range lines {
		item, err := NewMaterialRequestItem(request.ID, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		request.Items = append(request.Items, *item)
	}

	request.AddDomainEvent(NewMaterialRequestCreatedEvent(request))

	return request, nil
}

// Approve fully approves the request: every item's approved quantity is set
// to its requested quantity. Allowed only from pending.
func (r *MaterialRequest) Approve(managerID uuid.UUID) error {
	if managerID != r.ManagerID {
		return shared.ErrForbidden
	}
	if !r.Status.CanTransitionTo(MaterialRequestStatusApproved) {
		return shared.ErrInvalidState
	}

	for idx := range r.Items {
		r.Items[idx].ApprovedQuantity = r.Items[idx].RequestedQuantity
		r.Items[idx].UpdatedAt = time.Now()
	}

	now := time.Now()
	r.Status = MaterialRequestStatusApproved
	r.ApprovedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewMaterialRequestApprovedEvent(r))

	return nil
}

// ApproveWithQuantities approves the request with per-item edited quantities.
// Every edited quantity must not exceed the originally requested quantity;
// items absent from the map keep their requested quantity.
func (r *MaterialRequest) ApproveWithQuantities(managerID uuid.UUID, quantities map[uuid.UUID]decimal.Decimal) error {
	if managerID != r.ManagerID {
		return shared.ErrForbidden
	}
	if !r.Status.CanTransitionTo(MaterialRequestStatusApproved) {
		return shared.ErrInvalidState
	}

	for idx := range r.Items {
		approved := r.Items[idx].RequestedQuantity
		if edited, ok := quantities[r.Items[idx].ID]; ok {
			if edited.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("INVALID_QUANTITY", "Approved quantity must be positive")
			}
			if edited.GreaterThan(r.Items[idx].RequestedQuantity) {
				return shared.NewDomainError("APPROVED_QUANTITY_EXCEEDS_REQUESTED", "Approved quantity cannot exceed the requested quantity")
			}
			approved = edited
		}
		r.Items[idx].ApprovedQuantity = approved
		r.Items[idx].UpdatedAt = time.Now()
	}

	now := time.Now()
	r.Status = MaterialRequestStatusApproved
	r.ApprovedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewMaterialRequestApprovedEvent(r))

	return nil
}

// Reject rejects the request. Allowed only from pending.
func (r *MaterialRequest) Reject(managerID uuid.UUID) error {
	if managerID != r.ManagerID {
		return shared.ErrForbidden
	}
	if !r.Status.CanTransitionTo(MaterialRequestStatusRejected) {
		return shared.ErrInvalidState
	}

	now := time.Now()
	r.Status = MaterialRequestStatusRejected
	r.RejectedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewMaterialRequestRejectedEvent(r))

	return nil
}

// MarkDelivered flips the request to delivered after its exit note was
// issued. Allowed only from approved.
func (r *MaterialRequest) MarkDelivered() error {
	if !r.Status.CanTransitionTo(MaterialRequestStatusDelivered) {
		return shared.ErrInvalidState
	}

	now := time.Now()
	r.Status = MaterialRequestStatusDelivered
	r.DeliveredAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewMaterialRequestDeliveredEvent(r))

	return nil
}

// ItemByID returns the item with the given ID, or nil
func (r *MaterialRequest) ItemByID(itemID uuid.UUID) *MaterialRequestItem {
	for idx := range r.Items {
		if r.Items[idx].ID == itemID {
			return &r.Items[idx]
		}
	}
	return nil
}

// ItemByProduct returns the item for the given product, or nil
func (r *MaterialRequest) ItemByProduct(productID uuid.UUID) *MaterialRequestItem {
	for idx := range r.Items {
		if r.Items[idx].ProductID == productID {
			return &r.Items[idx]
		}
	}
	return nil
}
