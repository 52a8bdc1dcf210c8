package document

import (
	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeMaterialRequest = "MaterialRequest"
	AggregateTypePurchaseRequest = "PurchaseRequest"
)

// Event type constants
const (
	EventTypeMaterialRequestCreated   = "MaterialRequestCreated"
	EventTypeMaterialRequestApproved  = "MaterialRequestApproved"
	EventTypeMaterialRequestRejected  = "MaterialRequestRejected"
	EventTypeMaterialRequestDelivered = "MaterialRequestDelivered"
	EventTypePurchaseRequestCreated   = "PurchaseRequestCreated"
	EventTypePurchaseRequestDecided   = "PurchaseRequestDecided"
)

// MaterialRequestCreatedEvent is raised when a material request is created
type MaterialRequestCreatedEvent struct {
	shared.BaseDomainEvent
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ManagerID   uuid.UUID `json:"manager_id"`
	KeeperID    uuid.UUID `json:"keeper_id"`
}

// NewMaterialRequestCreatedEvent creates a new MaterialRequestCreatedEvent
func NewMaterialRequestCreatedEvent(request *MaterialRequest) *MaterialRequestCreatedEvent {
	return &MaterialRequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialRequestCreated, AggregateTypeMaterialRequest, request.ID),
		RequestID:       request.ID,
		RequesterID:     request.RequesterID,
		ManagerID:       request.ManagerID,
		KeeperID:        request.KeeperID,
	}
}

// MaterialRequestApprovedEvent is raised when a material request is approved
type MaterialRequestApprovedEvent struct {
	shared.BaseDomainEvent
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	KeeperID    uuid.UUID `json:"keeper_id"`
}

// NewMaterialRequestApprovedEvent creates a new MaterialRequestApprovedEvent
func NewMaterialRequestApprovedEvent(request *MaterialRequest) *MaterialRequestApprovedEvent {
	return &MaterialRequestApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialRequestApproved, AggregateTypeMaterialRequest, request.ID),
		RequestID:       request.ID,
		RequesterID:     request.RequesterID,
		KeeperID:        request.KeeperID,
	}
}

// MaterialRequestRejectedEvent is raised when a material request is rejected
type MaterialRequestRejectedEvent struct {
	shared.BaseDomainEvent
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID uuid.UUID `json:"requester_id"`
}

// NewMaterialRequestRejectedEvent creates a new MaterialRequestRejectedEvent
func NewMaterialRequestRejectedEvent(request *MaterialRequest) *MaterialRequestRejectedEvent {
	return &MaterialRequestRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialRequestRejected, AggregateTypeMaterialRequest, request.ID),
		RequestID:       request.ID,
		RequesterID:     request.RequesterID,
	}
}

// MaterialRequestDeliveredEvent is raised when an exit note fulfills the request
type MaterialRequestDeliveredEvent struct {
	shared.BaseDomainEvent
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID uuid.UUID `json:"requester_id"`
}

// NewMaterialRequestDeliveredEvent creates a new MaterialRequestDeliveredEvent
func NewMaterialRequestDeliveredEvent(request *MaterialRequest) *MaterialRequestDeliveredEvent {
	return &MaterialRequestDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialRequestDelivered, AggregateTypeMaterialRequest, request.ID),
		RequestID:       request.ID,
		RequesterID:     request.RequesterID,
	}
}

// PurchaseRequestCreatedEvent is raised when a purchase request is created
type PurchaseRequestCreatedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	KeeperID  uuid.UUID `json:"keeper_id"`
	ManagerID uuid.UUID `json:"manager_id"`
}

// NewPurchaseRequestCreatedEvent creates a new PurchaseRequestCreatedEvent
func NewPurchaseRequestCreatedEvent(request *PurchaseRequest) *PurchaseRequestCreatedEvent {
	return &PurchaseRequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseRequestCreated, AggregateTypePurchaseRequest, request.ID),
		RequestID:       request.ID,
		KeeperID:        request.KeeperID,
		ManagerID:       request.ManagerID,
	}
}

// PurchaseRequestDecidedEvent is raised when a purchase request is approved or rejected
type PurchaseRequestDecidedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID             `json:"request_id"`
	KeeperID  uuid.UUID             `json:"keeper_id"`
	Status    PurchaseRequestStatus `json:"status"`
}

// NewPurchaseRequestDecidedEvent creates a new PurchaseRequestDecidedEvent
func NewPurchaseRequestDecidedEvent(request *PurchaseRequest) *PurchaseRequestDecidedEvent {
	return &PurchaseRequestDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseRequestDecided, AggregateTypePurchaseRequest, request.ID),
		RequestID:       request.ID,
		KeeperID:        request.KeeperID,
		Status:          request.Status,
	}
}
