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

// GormReceivingNoteRepository implements document.ReceivingNoteRepository
// using GORM
type GormReceivingNoteRepository struct {
	db *gorm.DB
}

// NewGormReceivingNoteRepository creates a new GormReceivingNoteRepository
func NewGormReceivingNoteRepository(db *gorm.DB) *GormReceivingNoteRepository {
	return &GormReceivingNoteRepository{db: db}
}

// FindByID retrieves a receiving note with its items
func (r *GormReceivingNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ReceivingNote, error) {
	var note document.ReceivingNote
	err := r.db.WithContext(ctx).Preload("Items").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindItemForUpdate retrieves a single receiving note item under a row lock
// so concurrent location assignments of the same item serialize
func (r *GormReceivingNoteRepository) FindItemForUpdate(ctx context.Context, itemID uuid.UUID) (*document.ReceivingNoteItem, error) {
	var item document.ReceivingNoteItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByWarehouse retrieves receiving notes of a warehouse
func (r *GormReceivingNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ReceivingNote, error) {
	var notes []document.ReceivingNote
	query := r.db.WithContext(ctx).Model(&document.ReceivingNote{}).
		Preload("Items").
		Where("warehouse_id = ?", warehouseID)
	err := applyFilter(query, filter, DocumentSortFields).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Save persists a receiving note and its items
func (r *GormReceivingNoteRepository) Save(ctx context.Context, note *document.ReceivingNote) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(note).Error
}

// SaveItem persists a single receiving note item
func (r *GormReceivingNoteRepository) SaveItem(ctx context.Context, item *document.ReceivingNoteItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

var _ document.ReceivingNoteRepository = (*GormReceivingNoteRepository)(nil)
