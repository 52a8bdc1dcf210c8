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

// GormPurchaseRequestRepository implements document.PurchaseRequestRepository
// using GORM
type GormPurchaseRequestRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRequestRepository creates a new GormPurchaseRequestRepository
func NewGormPurchaseRequestRepository(db *gorm.DB) *GormPurchaseRequestRepository {
	return &GormPurchaseRequestRepository{db: db}
}

// FindByID retrieves a purchase request with its items
func (r *GormPurchaseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.PurchaseRequest, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves a purchase request under a row lock
func (r *GormPurchaseRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.PurchaseRequest, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "purchase_requests"}}), id)
}

// FindByKeeper retrieves requests created by the keeper
func (r *GormPurchaseRequestRepository) FindByKeeper(ctx context.Context, keeperID uuid.UUID, filter shared.Filter) ([]document.PurchaseRequest, error) {
	return r.findAll(ctx, filter, "keeper_id = ?", keeperID)
}

// FindByManager retrieves requests awaiting or decided by the manager
func (r *GormPurchaseRequestRepository) FindByManager(ctx context.Context, managerID uuid.UUID, filter shared.Filter) ([]document.PurchaseRequest, error) {
	return r.findAll(ctx, filter, "manager_id = ?", managerID)
}

// Save persists a purchase request and its items
func (r *GormPurchaseRequestRepository) Save(ctx context.Context, request *document.PurchaseRequest) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(request).Error
}

func (r *GormPurchaseRequestRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*document.PurchaseRequest, error) {
	var request document.PurchaseRequest
	err := db.WithContext(ctx).Preload("Items").First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormPurchaseRequestRepository) findAll(ctx context.Context, filter shared.Filter, cond string, arg any) ([]document.PurchaseRequest, error) {
	var requests []document.PurchaseRequest
	query := r.db.WithContext(ctx).Model(&document.PurchaseRequest{}).Preload("Items").Where(cond, arg)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	err := applyFilter(query, filter, DocumentSortFields).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

var _ document.PurchaseRequestRepository = (*GormPurchaseRequestRepository)(nil)
