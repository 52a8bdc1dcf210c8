package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

// GormInstallationReportRepository implements
// document.InstallationReportRepository using GORM
type GormInstallationReportRepository struct {
	db *gorm.DB
}

// NewGormInstallationReportRepository creates a new GormInstallationReportRepository
func NewGormInstallationReportRepository(db *gorm.DB) *GormInstallationReportRepository {
	return &GormInstallationReportRepository{db: db}
}

// FindByID retrieves an installation report with its items
func (r *GormInstallationReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.InstallationReport, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves an installation report under a row lock
func (r *GormInstallationReportRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.InstallationReport, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "installation_reports"}}), id)
}

// FindByWarehouse retrieves installation reports of a warehouse
func (r *GormInstallationReportRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.InstallationReport, error) {
	var reports []document.InstallationReport
	query := r.db.WithContext(ctx).Model(&document.InstallationReport{}).
		Preload("Items").
		Where("warehouse_id = ?", warehouseID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	err := applyFilter(query, filter, DocumentSortFields).Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Save persists an installation report and its items
func (r *GormInstallationReportRepository) Save(ctx context.Context, report *document.InstallationReport) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(report).Error
}

func (r *GormInstallationReportRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*document.InstallationReport, error) {
	var report document.InstallationReport
	err := db.WithContext(ctx).Preload("Items").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

var _ document.InstallationReportRepository = (*GormInstallationReportRepository)(nil)
