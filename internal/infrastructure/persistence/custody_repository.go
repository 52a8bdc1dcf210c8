package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/shared"
)

// GormCustodyRepository implements custody.CustodyRepository using GORM
type GormCustodyRepository struct {
	db *gorm.DB
}

// NewGormCustodyRepository creates a new GormCustodyRepository
func NewGormCustodyRepository(db *gorm.DB) *GormCustodyRepository {
	return &GormCustodyRepository{db: db}
}

// FindByID retrieves a custody with its items
func (r *GormCustodyRepository) FindByID(ctx context.Context, id uuid.UUID) (*custody.Custody, error) {
	var c custody.Custody
	err := r.db.WithContext(ctx).Preload("Items").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindItemByID retrieves a single custody item
func (r *GormCustodyRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*custody.CustodyItem, error) {
	var item custody.CustodyItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByUser retrieves custodies held by a user
func (r *GormCustodyRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]custody.Custody, error) {
	var custodies []custody.Custody
	query := r.db.WithContext(ctx).Model(&custody.Custody{}).
		Preload("Items").
		Where("user_id = ?", userID)
	err := applyFilter(query, filter, CommonSortFields).Find(&custodies).Error
	if err != nil {
		return nil, err
	}
	return custodies, nil
}

// Save persists a custody and its items
func (r *GormCustodyRepository) Save(ctx context.Context, c *custody.Custody) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(c).Error
}

var _ custody.CustodyRepository = (*GormCustodyRepository)(nil)
