package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/document"
)

// RequestLineInput is one requested product line
type RequestLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// CreateMaterialRequestInput carries the fields for material request creation
type CreateMaterialRequestInput struct {
	WarehouseID uuid.UUID
	Reason      string
	Items       []RequestLineInput
}

// ApproveMaterialRequestInput optionally edits per-item approved quantities.
// Items absent from Quantities keep their requested quantity.
type ApproveMaterialRequestInput struct {
	RequestID  uuid.UUID
	Quantities map[uuid.UUID]decimal.Decimal
}

// CreatePurchaseRequestInput carries the fields for purchase request creation
type CreatePurchaseRequestInput struct {
	Reason string
	Items  []RequestLineInput
}

// MaterialRequestItemResponse is the API representation of a request line
type MaterialRequestItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	RequestedQuantity decimal.Decimal `json:"requested_quantity"`
	ApprovedQuantity  decimal.Decimal `json:"approved_quantity"`
}

// MaterialRequestResponse is the API representation of a material request
type MaterialRequestResponse struct {
	ID          uuid.UUID                     `json:"id"`
	RequesterID uuid.UUID                     `json:"requester_id"`
	ManagerID   uuid.UUID                     `json:"manager_id"`
	KeeperID    uuid.UUID                     `json:"keeper_id"`
	WarehouseID uuid.UUID                     `json:"warehouse_id"`
	Status      string                        `json:"status"`
	Reason      string                        `json:"reason,omitempty"`
	ApprovedAt  *time.Time                    `json:"approved_at,omitempty"`
	RejectedAt  *time.Time                    `json:"rejected_at,omitempty"`
	DeliveredAt *time.Time                    `json:"delivered_at,omitempty"`
	CreatedAt   time.Time                     `json:"created_at"`
	Items       []MaterialRequestItemResponse `json:"items"`
}

// ToMaterialRequestResponse converts a MaterialRequest aggregate to its response
func ToMaterialRequestResponse(r *document.MaterialRequest) MaterialRequestResponse {
	items := make([]MaterialRequestItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, MaterialRequestItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			RequestedQuantity: item.RequestedQuantity,
			ApprovedQuantity:  item.ApprovedQuantity,
		})
	}
	return MaterialRequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		ManagerID:   r.ManagerID,
		KeeperID:    r.KeeperID,
		WarehouseID: r.WarehouseID,
		Status:      r.Status.String(),
		Reason:      r.Reason,
		ApprovedAt:  r.ApprovedAt,
		RejectedAt:  r.RejectedAt,
		DeliveredAt: r.DeliveredAt,
		CreatedAt:   r.CreatedAt,
		Items:       items,
	}
}

// ToMaterialRequestResponses converts a slice of MaterialRequest aggregates
func ToMaterialRequestResponses(requests []document.MaterialRequest) []MaterialRequestResponse {
	responses := make([]MaterialRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, ToMaterialRequestResponse(&requests[i]))
	}
	return responses
}

// PurchaseRequestItemResponse is the API representation of a purchase line
type PurchaseRequestItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	RequestedQuantity decimal.Decimal `json:"requested_quantity"`
	ApprovedQuantity  decimal.Decimal `json:"approved_quantity"`
}

// PurchaseRequestResponse is the API representation of a purchase request
type PurchaseRequestResponse struct {
	ID          uuid.UUID                     `json:"id"`
	KeeperID    uuid.UUID                     `json:"keeper_id"`
	WarehouseID uuid.UUID                     `json:"warehouse_id"`
	ManagerID   uuid.UUID                     `json:"manager_id"`
	Status      string                        `json:"status"`
	Reason      string                        `json:"reason,omitempty"`
	DecidedAt   *time.Time                    `json:"decided_at,omitempty"`
	CreatedAt   time.Time                     `json:"created_at"`
	Items       []PurchaseRequestItemResponse `json:"items"`
}

// ToPurchaseRequestResponse converts a PurchaseRequest aggregate to its response
func ToPurchaseRequestResponse(r *document.PurchaseRequest) PurchaseRequestResponse {
	items := make([]PurchaseRequestItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, PurchaseRequestItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			RequestedQuantity: item.RequestedQuantity,
			ApprovedQuantity:  item.ApprovedQuantity,
		})
	}
	return PurchaseRequestResponse{
		ID:          r.ID,
		KeeperID:    r.KeeperID,
		WarehouseID: r.WarehouseID,
		ManagerID:   r.ManagerID,
		Status:      r.Status.String(),
		Reason:      r.Reason,
		DecidedAt:   r.DecidedAt,
		CreatedAt:   r.CreatedAt,
		Items:       items,
	}
}

// ToPurchaseRequestResponses converts a slice of PurchaseRequest aggregates
func ToPurchaseRequestResponses(requests []document.PurchaseRequest) []PurchaseRequestResponse {
	responses := make([]PurchaseRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, ToPurchaseRequestResponse(&requests[i]))
	}
	return responses
}
