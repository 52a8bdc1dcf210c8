package custody

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/custody"
)

// CreateCustodyInput hands exit note items to a user as a loan. Each item's
// quantity is taken from the exit note item itself.
type CreateCustodyInput struct {
	UserID          uuid.UUID
	Room            string
	ExitNoteItemIDs []uuid.UUID
}

// ReturnLineInput is one claimed return against a custody item
type ReturnLineInput struct {
	CustodyItemID    uuid.UUID
	ReturnedQuantity decimal.Decimal
}

// CreateReturnInput carries the claimed items of a return batch
type CreateReturnInput struct {
	Items []ReturnLineInput
}

// ProcessReturnItemInput adjudicates one return item. AcceptedQuantity is
// only read when Outcome is accepted.
type ProcessReturnItemInput struct {
	ReturnID         uuid.UUID
	ItemID           uuid.UUID
	Outcome          string
	AcceptedQuantity decimal.Decimal
}

// CustodyItemResponse is the API representation of a loaned item
type CustodyItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	ExitNoteItemID uuid.UUID       `json:"exit_note_item_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	WarehouseID    uuid.UUID       `json:"warehouse_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// CustodyResponse is the API representation of a custody record
type CustodyResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Room      string                `json:"room,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	Items     []CustodyItemResponse `json:"items"`
}

// ToCustodyResponse converts a Custody aggregate to its response
func ToCustodyResponse(c *custody.Custody) CustodyResponse {
	items := make([]CustodyItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CustodyItemResponse{
			ID:             item.ID,
			ExitNoteItemID: item.ExitNoteItemID,
			ProductID:      item.ProductID,
			WarehouseID:    item.WarehouseID,
			Quantity:       item.Quantity,
		})
	}
	return CustodyResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Room:      c.Room,
		CreatedAt: c.CreatedAt,
		Items:     items,
	}
}

// ToCustodyResponses converts a slice of Custody aggregates
func ToCustodyResponses(custodies []custody.Custody) []CustodyResponse {
	responses := make([]CustodyResponse, 0, len(custodies))
	for i := range custodies {
		responses = append(responses, ToCustodyResponse(&custodies[i]))
	}
	return responses
}

// ReturnItemResponse is the API representation of a return item
type ReturnItemResponse struct {
	ID                       uuid.UUID       `json:"id"`
	CustodyItemID            uuid.UUID       `json:"custody_item_id"`
	ReturnedQuantity         decimal.Decimal `json:"returned_quantity"`
	ReturnedQuantityAccepted decimal.Decimal `json:"returned_quantity_accepted"`
	Status                   string          `json:"status"`
	ProcessedByID            *uuid.UUID      `json:"processed_by_id,omitempty"`
	ProcessedAt              *time.Time      `json:"processed_at,omitempty"`
}

// ReturnResponse is the API representation of a return batch
type ReturnResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Items     []ReturnItemResponse `json:"items"`
}

// ToReturnResponse converts a CustodyReturn aggregate to its response
func ToReturnResponse(r *custody.CustodyReturn) ReturnResponse {
	items := make([]ReturnItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ReturnItemResponse{
			ID:                       item.ID,
			CustodyItemID:            item.CustodyItemID,
			ReturnedQuantity:         item.ReturnedQuantity,
			ReturnedQuantityAccepted: item.ReturnedQuantityAccepted,
			Status:                   string(item.Status),
			ProcessedByID:            item.ProcessedByID,
			ProcessedAt:              item.ProcessedAt,
		})
	}
	return ReturnResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		Items:     items,
	}
}

// ToReturnResponses converts a slice of CustodyReturn aggregates
func ToReturnResponses(returns []custody.CustodyReturn) []ReturnResponse {
	responses := make([]ReturnResponse, 0, len(returns))
	for i := range returns {
		responses = append(responses, ToReturnResponse(&returns[i]))
	}
	return responses
}
