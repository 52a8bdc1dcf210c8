package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/shared"
)

// GormCustodyReturnRepository implements custody.CustodyReturnRepository
// using GORM
type GormCustodyReturnRepository struct {
	db *gorm.DB
}

// NewGormCustodyReturnRepository creates a new GormCustodyReturnRepository
func NewGormCustodyReturnRepository(db *gorm.DB) *GormCustodyReturnRepository {
	return &GormCustodyReturnRepository{db: db}
}

// FindByID retrieves a return batch with its items
func (r *GormCustodyReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*custody.CustodyReturn, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves a return batch under a row lock. Two keepers
// adjudicating items of the same batch serialize here, so the parent status
// recomputation always sees the latest item states.
func (r *GormCustodyReturnRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*custody.CustodyReturn, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "custody_returns"}}), id)
}

// FindByUser retrieves return batches filed by a user
func (r *GormCustodyReturnRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]custody.CustodyReturn, error) {
	var returns []custody.CustodyReturn
	query := r.db.WithContext(ctx).Model(&custody.CustodyReturn{}).
		Preload("Items").
		Where("user_id = ?", userID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	err := applyFilter(query, filter, CommonSortFields).Find(&returns).Error
	if err != nil {
		return nil, err
	}
	return returns, nil
}

// HasPendingReviewForCustodyItem reports whether any return item in
// pending_review already references the custody item
func (r *GormCustodyReturnRepository) HasPendingReviewForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&custody.CustodyReturnItem{}).
		Where("custody_item_id = ? AND status = ?", custodyItemID, custody.CustodyReturnItemStatusPendingReview).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SumAcceptedForCustodyItem sums accepted quantities across all return items
// referencing the custody item
func (r *GormCustodyReturnRepository) SumAcceptedForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&custody.CustodyReturnItem{}).
		Select("COALESCE(SUM(returned_quantity_accepted), 0) AS total").
		Where("custody_item_id = ?", custodyItemID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save persists a return batch and its items
func (r *GormCustodyReturnRepository) Save(ctx context.Context, ret *custody.CustodyReturn) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(ret).Error
}

func (r *GormCustodyReturnRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*custody.CustodyReturn, error) {
	var ret custody.CustodyReturn
	err := db.WithContext(ctx).Preload("Items").First(&ret, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

var _ custody.CustodyReturnRepository = (*GormCustodyReturnRepository)(nil)
