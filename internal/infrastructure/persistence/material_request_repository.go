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

// GormMaterialRequestRepository implements document.MaterialRequestRepository
// using GORM
type GormMaterialRequestRepository struct {
	db *gorm.DB
}

// NewGormMaterialRequestRepository creates a new GormMaterialRequestRepository
func NewGormMaterialRequestRepository(db *gorm.DB) *GormMaterialRequestRepository {
	return &GormMaterialRequestRepository{db: db}
}

// FindByID retrieves a material request with its items
func (r *GormMaterialRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.MaterialRequest, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves a material request under a row lock. Only the
// request row is locked; items are loaded with a separate query because
// FOR UPDATE cannot span an outer-joined preload.
func (r *GormMaterialRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.MaterialRequest, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "material_requests"}}), id)
}

// FindByRequester retrieves requests created by the user
func (r *GormMaterialRequestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	return r.findAll(ctx, filter, "requester_id = ?", requesterID)
}

// FindByManager retrieves requests awaiting or decided by the manager
func (r *GormMaterialRequestRepository) FindByManager(ctx context.Context, managerID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	return r.findAll(ctx, filter, "manager_id = ?", managerID)
}

// FindByKeeper retrieves requests routed to the keeper's warehouse
func (r *GormMaterialRequestRepository) FindByKeeper(ctx context.Context, keeperID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	return r.findAll(ctx, filter, "keeper_id = ?", keeperID)
}

// Save persists a material request and its items
func (r *GormMaterialRequestRepository) Save(ctx context.Context, request *document.MaterialRequest) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(request).Error
}

func (r *GormMaterialRequestRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*document.MaterialRequest, error) {
	var request document.MaterialRequest
	err := db.WithContext(ctx).Preload("Items").First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormMaterialRequestRepository) findAll(ctx context.Context, filter shared.Filter, cond string, arg any) ([]document.MaterialRequest, error) {
	var requests []document.MaterialRequest
	query := r.db.WithContext(ctx).Model(&document.MaterialRequest{}).Preload("Items").Where(cond, arg)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	err := applyFilter(query, filter, DocumentSortFields).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

var _ document.MaterialRequestRepository = (*GormMaterialRequestRepository)(nil)
