package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// InstallationSource says where an installed item came from
type InstallationSource string

const (
	// InstallationSourceStock means the item was drawn from warehouse stock;
	// approving the report decrements the ledger.
	InstallationSourceStock InstallationSource = "stock"
	// InstallationSourcePurchase means the item was bought directly for the
	// installation and never entered the ledger.
	InstallationSourcePurchase InstallationSource = "purchase"
)

// IsValid checks if the source is known
func (s InstallationSource) IsValid() bool {
	return s == InstallationSourceStock || s == InstallationSourcePurchase
}

// InstallationReportItem is a line item of an installation report
type InstallationReportItem struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key"`
	ReportID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID          `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Source    InstallationSource `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InstallationReportItem) TableName() string {
	return "installation_report_items"
}

// InstallationReport documents material installed on site. Approval is
// informational except for stock-sourced items, which are deducted from the
// ledger in the approving transaction.
type InstallationReport struct {
	shared.BaseAggregateRoot
	SerialNumber string                   `gorm:"type:varchar(30);not null"`
	WarehouseID  uuid.UUID                `gorm:"type:uuid;not null;index"`
	CreatedByID  uuid.UUID                `gorm:"type:uuid;not null"`
	Site         string                   `gorm:"type:varchar(300)"`
	Status       ReportStatus             `gorm:"type:varchar(20);not null;index"`
	DecidedByID  *uuid.UUID               `gorm:"type:uuid"`
	DecidedAt    *time.Time
	Items        []InstallationReportItem `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InstallationReport) TableName() string {
	return "installation_reports"
}

// InstallationLine is the input for one installed product
type InstallationLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Source    InstallationSource
}

// NewInstallationReport creates a pending installation report
func NewInstallationReport(serialNumber string, warehouseID, createdByID uuid.UUID, site string, lines []InstallationLine) (*InstallationReport, error) {
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Creator ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "An installation report needs at least one item")
	}

	report := &InstallationReport{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SerialNumber:      serialNumber,
		WarehouseID:       warehouseID,
		CreatedByID:       createdByID,
		Site:              site,
		Status:            ReportStatusPending,
		Items:             make([]InstallationReportItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if !line.Source.IsValid() {
			return nil, shared.NewDomainError("INVALID_SOURCE", "Unknown installation source")
		}
		report.Items = append(report.Items, InstallationReportItem{
			ID:        uuid.New(),
			ReportID:  report.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Source:    line.Source,
			CreatedAt: time.Now(),
		})
	}

	return report, nil
}

// Approve marks the report approved. Allowed only from pending.
func (r *InstallationReport) Approve(deciderID uuid.UUID) error {
	if !r.Status.CanTransitionTo(ReportStatusApproved) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	r.Status = ReportStatusApproved
	r.DecidedByID = &deciderID
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// Reject marks the report rejected. Allowed only from pending.
func (r *InstallationReport) Reject(deciderID uuid.UUID) error {
	if !r.Status.CanTransitionTo(ReportStatusRejected) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	r.Status = ReportStatusRejected
	r.DecidedByID = &deciderID
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// StockItems returns the items that draw from warehouse stock
func (r *InstallationReport) StockItems() []InstallationReportItem {
	items := make([]InstallationReportItem, 0)
	for _, item := range r.Items {
		if item.Source == InstallationSourceStock {
			items = append(items, item)
		}
	}
	return items
}
