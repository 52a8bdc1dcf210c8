package persistence

import (
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/notification"
	"github.com/wms/backend/internal/domain/warehouse"
)

// AutoMigrate creates or updates the schema for all aggregates. Used by the
// migrate command and by integration tests against throwaway databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.User{},
		&identity.Department{},
		&catalog.Product{},
		&warehouse.Warehouse{},
		&warehouse.Location{},
		&warehouse.Stock{},
		&warehouse.ProductLocation{},
		&warehouse.ProductMovement{},
		&warehouse.DocumentSequence{},
		&document.MaterialRequest{},
		&document.MaterialRequestItem{},
		&document.PurchaseRequest{},
		&document.PurchaseRequestItem{},
		&document.EntryNote{},
		&document.EntryNoteItem{},
		&document.ReceivingNote{},
		&document.ReceivingNoteItem{},
		&document.ExitNote{},
		&document.ExitNoteItem{},
		&document.ScrapNote{},
		&document.ScrapNoteItem{},
		&document.InstallationReport{},
		&document.InstallationReportItem{},
		&custody.Custody{},
		&custody.CustodyItem{},
		&custody.CustodyReturn{},
		&custody.CustodyReturnItem{},
		&notification.Notification{},
	)
}
