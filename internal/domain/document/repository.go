package document

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// MaterialRequestRepository defines persistence operations for material requests.
// FindByIDForUpdate locks the request row so concurrent approvals serialize.
type MaterialRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaterialRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*MaterialRequest, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) ([]MaterialRequest, error)
	FindByManager(ctx context.Context, managerID uuid.UUID, filter shared.Filter) ([]MaterialRequest, error)
	FindByKeeper(ctx context.Context, keeperID uuid.UUID, filter shared.Filter) ([]MaterialRequest, error)
	Save(ctx context.Context, request *MaterialRequest) error
}

// PurchaseRequestRepository defines persistence operations for purchase requests
type PurchaseRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PurchaseRequest, error)
	FindByKeeper(ctx context.Context, keeperID uuid.UUID, filter shared.Filter) ([]PurchaseRequest, error)
	FindByManager(ctx context.Context, managerID uuid.UUID, filter shared.Filter) ([]PurchaseRequest, error)
	Save(ctx context.Context, request *PurchaseRequest) error
}

// EntryNoteRepository defines persistence operations for entry notes
type EntryNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EntryNote, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]EntryNote, error)
	Save(ctx context.Context, note *EntryNote) error
}

// ReceivingNoteRepository defines persistence operations for receiving notes.
// FindItemForUpdate locks a single item row for location assignment.
type ReceivingNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReceivingNote, error)
	FindItemForUpdate(ctx context.Context, itemID uuid.UUID) (*ReceivingNoteItem, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ReceivingNote, error)
	Save(ctx context.Context, note *ReceivingNote) error
	SaveItem(ctx context.Context, item *ReceivingNoteItem) error
}

// ExitNoteRepository defines persistence operations for exit notes
type ExitNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExitNote, error)
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*ExitNoteItem, error)
	FindByMaterialRequest(ctx context.Context, requestID uuid.UUID) (*ExitNote, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ExitNote, error)
	Save(ctx context.Context, note *ExitNote) error
}

// ScrapNoteRepository defines persistence operations for scrap notes
type ScrapNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ScrapNote, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ScrapNote, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ScrapNote, error)
	Save(ctx context.Context, note *ScrapNote) error
}

// InstallationReportRepository defines persistence operations for installation reports
type InstallationReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InstallationReport, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*InstallationReport, error)
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]InstallationReport, error)
	Save(ctx context.Context, report *InstallationReport) error
}
