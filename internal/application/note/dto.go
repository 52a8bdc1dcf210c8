package note

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/document"
)

// NoteLineInput is one product line of an entry or exit note
type NoteLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// CreateEntryNoteInput carries the fields for entry note issuance
type CreateEntryNoteInput struct {
	WarehouseID uuid.UUID
	Remark      string
	Items       []NoteLineInput
}

// ReceivingLineInput is one received product line with its price
type ReceivingLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// CreateReceivingNoteInput carries the fields for receiving note issuance
type CreateReceivingNoteInput struct {
	WarehouseID uuid.UUID
	SupplierRef string
	Items       []ReceivingLineInput
}

// CreateExitNoteInput fulfills an approved material request
type CreateExitNoteInput struct {
	MaterialRequestID uuid.UUID
	Items             []NoteLineInput
}

// ScrapLineInput is one scrapped product line
type ScrapLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Reason    string
}

// CreateScrapNoteInput carries the fields for scrap note creation
type CreateScrapNoteInput struct {
	WarehouseID uuid.UUID
	Items       []ScrapLineInput
}

// InstallationLineInput is one installed product line
type InstallationLineInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Source    string
}

// CreateInstallationReportInput carries the fields for report creation
type CreateInstallationReportInput struct {
	WarehouseID uuid.UUID
	Site        string
	Items       []InstallationLineInput
}

// NoteItemResponse is the API representation of a simple note line
type NoteItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// EntryNoteResponse is the API representation of an entry note
type EntryNoteResponse struct {
	ID           uuid.UUID          `json:"id"`
	SerialNumber string             `json:"serial_number"`
	WarehouseID  uuid.UUID          `json:"warehouse_id"`
	CreatedByID  uuid.UUID          `json:"created_by_id"`
	Remark       string             `json:"remark,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []NoteItemResponse `json:"items"`
}

// ToEntryNoteResponse converts an EntryNote aggregate to its response
func ToEntryNoteResponse(n *document.EntryNote) EntryNoteResponse {
	items := make([]NoteItemResponse, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, NoteItemResponse{ID: item.ID, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return EntryNoteResponse{
		ID:           n.ID,
		SerialNumber: n.SerialNumber,
		WarehouseID:  n.WarehouseID,
		CreatedByID:  n.CreatedByID,
		Remark:       n.Remark,
		CreatedAt:    n.CreatedAt,
		Items:        items,
	}
}

// ToEntryNoteResponses converts a slice of EntryNote aggregates
func ToEntryNoteResponses(notes []document.EntryNote) []EntryNoteResponse {
	responses := make([]EntryNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, ToEntryNoteResponse(&notes[i]))
	}
	return responses
}

// ReceivingNoteItemResponse is the API representation of a received line
type ReceivingNoteItemResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ProductID          uuid.UUID       `json:"product_id"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Total              decimal.Decimal `json:"total"`
	UnassignedQuantity decimal.Decimal `json:"unassigned_quantity"`
}

// ReceivingNoteResponse is the API representation of a receiving note
type ReceivingNoteResponse struct {
	ID           uuid.UUID                   `json:"id"`
	SerialNumber string                      `json:"serial_number"`
	WarehouseID  uuid.UUID                   `json:"warehouse_id"`
	CreatedByID  uuid.UUID                   `json:"created_by_id"`
	SupplierRef  string                      `json:"supplier_ref,omitempty"`
	Total        decimal.Decimal             `json:"total"`
	CreatedAt    time.Time                   `json:"created_at"`
	Items        []ReceivingNoteItemResponse `json:"items"`
}

// ToReceivingNoteResponse converts a ReceivingNote aggregate to its response
func ToReceivingNoteResponse(n *document.ReceivingNote) ReceivingNoteResponse {
	items := make([]ReceivingNoteItemResponse, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, ReceivingNoteItemResponse{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			Total:              item.Total,
			UnassignedQuantity: item.UnassignedQuantity,
		})
	}
	return ReceivingNoteResponse{
		ID:           n.ID,
		SerialNumber: n.SerialNumber,
		WarehouseID:  n.WarehouseID,
		CreatedByID:  n.CreatedByID,
		SupplierRef:  n.SupplierRef,
		Total:        n.Total,
		CreatedAt:    n.CreatedAt,
		Items:        items,
	}
}

// ToReceivingNoteResponses converts a slice of ReceivingNote aggregates
func ToReceivingNoteResponses(notes []document.ReceivingNote) []ReceivingNoteResponse {
	responses := make([]ReceivingNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, ToReceivingNoteResponse(&notes[i]))
	}
	return responses
}

// ExitNoteResponse is the API representation of an exit note
type ExitNoteResponse struct {
	ID                uuid.UUID          `json:"id"`
	SerialNumber      string             `json:"serial_number"`
	WarehouseID       uuid.UUID          `json:"warehouse_id"`
	MaterialRequestID uuid.UUID          `json:"material_request_id"`
	CreatedByID       uuid.UUID          `json:"created_by_id"`
	CreatedAt         time.Time          `json:"created_at"`
	Items             []NoteItemResponse `json:"items"`
}

// ToExitNoteResponse converts an ExitNote aggregate to its response
func ToExitNoteResponse(n *document.ExitNote) ExitNoteResponse {
	items := make([]NoteItemResponse, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, NoteItemResponse{ID: item.ID, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return ExitNoteResponse{
		ID:                n.ID,
		SerialNumber:      n.SerialNumber,
		WarehouseID:       n.WarehouseID,
		MaterialRequestID: n.MaterialRequestID,
		CreatedByID:       n.CreatedByID,
		CreatedAt:         n.CreatedAt,
		Items:             items,
	}
}

// ToExitNoteResponses converts a slice of ExitNote aggregates
func ToExitNoteResponses(notes []document.ExitNote) []ExitNoteResponse {
	responses := make([]ExitNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, ToExitNoteResponse(&notes[i]))
	}
	return responses
}

// ScrapNoteItemResponse is the API representation of a scrapped line
type ScrapNoteItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
}

// ScrapNoteResponse is the API representation of a scrap note
type ScrapNoteResponse struct {
	ID           uuid.UUID               `json:"id"`
	SerialNumber string                  `json:"serial_number"`
	WarehouseID  uuid.UUID               `json:"warehouse_id"`
	CreatedByID  uuid.UUID               `json:"created_by_id"`
	Status       string                  `json:"status"`
	DecidedByID  *uuid.UUID              `json:"decided_by_id,omitempty"`
	DecidedAt    *time.Time              `json:"decided_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	Items        []ScrapNoteItemResponse `json:"items"`
}

// ToScrapNoteResponse converts a ScrapNote aggregate to its response
func ToScrapNoteResponse(n *document.ScrapNote) ScrapNoteResponse {
	items := make([]ScrapNoteItemResponse, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, ScrapNoteItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Reason:    item.Reason,
		})
	}
	return ScrapNoteResponse{
		ID:           n.ID,
		SerialNumber: n.SerialNumber,
		WarehouseID:  n.WarehouseID,
		CreatedByID:  n.CreatedByID,
		Status:       n.Status.String(),
		DecidedByID:  n.DecidedByID,
		DecidedAt:    n.DecidedAt,
		CreatedAt:    n.CreatedAt,
		Items:        items,
	}
}

// ToScrapNoteResponses converts a slice of ScrapNote aggregates
func ToScrapNoteResponses(notes []document.ScrapNote) []ScrapNoteResponse {
	responses := make([]ScrapNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, ToScrapNoteResponse(&notes[i]))
	}
	return responses
}

// InstallationItemResponse is the API representation of an installed line
type InstallationItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Source    string          `json:"source"`
}

// InstallationReportResponse is the API representation of a report
type InstallationReportResponse struct {
	ID           uuid.UUID                  `json:"id"`
	SerialNumber string                     `json:"serial_number"`
	WarehouseID  uuid.UUID                  `json:"warehouse_id"`
	CreatedByID  uuid.UUID                  `json:"created_by_id"`
	Site         string                     `json:"site,omitempty"`
	Status       string                     `json:"status"`
	DecidedByID  *uuid.UUID                 `json:"decided_by_id,omitempty"`
	DecidedAt    *time.Time                 `json:"decided_at,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	Items        []InstallationItemResponse `json:"items"`
}

// ToInstallationReportResponse converts an InstallationReport to its response
func ToInstallationReportResponse(r *document.InstallationReport) InstallationReportResponse {
	items := make([]InstallationItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, InstallationItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Source:    string(item.Source),
		})
	}
	return InstallationReportResponse{
		ID:           r.ID,
		SerialNumber: r.SerialNumber,
		WarehouseID:  r.WarehouseID,
		CreatedByID:  r.CreatedByID,
		Site:         r.Site,
		Status:       r.Status.String(),
		DecidedByID:  r.DecidedByID,
		DecidedAt:    r.DecidedAt,
		CreatedAt:    r.CreatedAt,
		Items:        items,
	}
}

// ToInstallationReportResponses converts a slice of InstallationReports
func ToInstallationReportResponses(reports []document.InstallationReport) []InstallationReportResponse {
	responses := make([]InstallationReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, ToInstallationReportResponse(&reports[i]))
	}
	return responses
}
