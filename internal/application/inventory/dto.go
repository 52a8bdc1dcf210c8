package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/warehouse"
)

// StockResponse is the API representation of a ledger row
type StockResponse struct {
	ID          uuid.UUID       `json:"id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToStockResponse converts a Stock aggregate to its response
func ToStockResponse(s *warehouse.Stock) StockResponse {
	return StockResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStockResponses converts a slice of Stock aggregates
func ToStockResponses(stocks []warehouse.Stock) []StockResponse {
	responses := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		responses = append(responses, ToStockResponse(&stocks[i]))
	}
	return responses
}

// MovementResponse is the API representation of an audit record
type MovementResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	WarehouseID    uuid.UUID       `json:"warehouse_id"`
	Type           string          `json:"type"`
	DocumentType   string          `json:"document_type"`
	DocumentID     uuid.UUID       `json:"document_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	ActorID        uuid.UUID       `json:"actor_id"`
	ActorRole      string          `json:"actor_role"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToMovementResponse converts a ProductMovement to its response
func ToMovementResponse(m *warehouse.ProductMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		WarehouseID:    m.WarehouseID,
		Type:           string(m.Type),
		DocumentType:   m.DocumentType,
		DocumentID:     m.DocumentID,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		ActorID:        m.ActorID,
		ActorRole:      m.ActorRole.String(),
		CreatedAt:      m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of ProductMovements
func ToMovementResponses(movements []warehouse.ProductMovement) []MovementResponse {
	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToMovementResponse(&movements[i]))
	}
	return responses
}

// WarehouseResponse is the API representation of a warehouse
type WarehouseResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToWarehouseResponse converts a Warehouse aggregate to its response
func ToWarehouseResponse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:           w.ID,
		Name:         w.Name,
		Address:      w.Address,
		DepartmentID: w.DepartmentID,
		CreatedAt:    w.CreatedAt,
	}
}

// ToWarehouseResponses converts a slice of Warehouse aggregates
func ToWarehouseResponses(warehouses []warehouse.Warehouse) []WarehouseResponse {
	responses := make([]WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		responses = append(responses, ToWarehouseResponse(&warehouses[i]))
	}
	return responses
}

// LocationResponse is the API representation of a location
type LocationResponse struct {
	ID                uuid.UUID       `json:"id"`
	WarehouseID       uuid.UUID       `json:"warehouse_id"`
	Name              string          `json:"name"`
	CapacityUnits     decimal.Decimal `json:"capacity_units"`
	UsedCapacityUnits decimal.Decimal `json:"used_capacity_units"`
	RemainingCapacity decimal.Decimal `json:"remaining_capacity"`
	CapacityUnitType  string          `json:"capacity_unit_type"`
}

// ToLocationResponse converts a Location aggregate to its response
func ToLocationResponse(l *warehouse.Location) LocationResponse {
	return LocationResponse{
		ID:                l.ID,
		WarehouseID:       l.WarehouseID,
		Name:              l.Name,
		CapacityUnits:     l.CapacityUnits,
		UsedCapacityUnits: l.UsedCapacityUnits,
		RemainingCapacity: l.RemainingCapacity(),
		CapacityUnitType:  l.CapacityUnitType,
	}
}

// ToLocationResponses converts a slice of Location aggregates
func ToLocationResponses(locations []warehouse.Location) []LocationResponse {
	responses := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		responses = append(responses, ToLocationResponse(&locations[i]))
	}
	return responses
}

// CreateWarehouseInput carries the fields for warehouse creation
type CreateWarehouseInput struct {
	Name         string
	Address      string
	DepartmentID *uuid.UUID
}

// CreateLocationInput carries the fields for location creation
type CreateLocationInput struct {
	WarehouseID      uuid.UUID
	Name             string
	CapacityUnits    decimal.Decimal
	CapacityUnitType string
}

// FindAvailableInput narrows the location search for a pending placement
type FindAvailableInput struct {
	WarehouseID         uuid.UUID
	ProductID           uuid.UUID
	Quantity            decimal.Decimal
	PreferredLocationID *uuid.UUID
}

// AssignLocationInput places part of a receiving note item into a location
type AssignLocationInput struct {
	ReceivingNoteItemID uuid.UUID
	LocationID          uuid.UUID
	Quantity            decimal.Decimal
}

// WithdrawLocationInput removes a placed quantity from a location
type WithdrawLocationInput struct {
	ProductID  uuid.UUID
	LocationID uuid.UUID
	Quantity   decimal.Decimal
}
