package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

// GormExitNoteRepository implements document.ExitNoteRepository using GORM
type GormExitNoteRepository struct {
	db *gorm.DB
}

// NewGormExitNoteRepository creates a new GormExitNoteRepository
func NewGormExitNoteRepository(db *gorm.DB) *GormExitNoteRepository {
	return &GormExitNoteRepository{db: db}
}

// FindByID retrieves an exit note with its items
func (r *GormExitNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ExitNote, error) {
	var note document.ExitNote
	err := r.db.WithContext(ctx).Preload("Items").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindItemByID retrieves a single exit note item
func (r *GormExitNoteRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*document.ExitNoteItem, error) {
	var item document.ExitNoteItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByMaterialRequest retrieves the exit note issued for a material request
func (r *GormExitNoteRepository) FindByMaterialRequest(ctx context.Context, requestID uuid.UUID) (*document.ExitNote, error) {
	var note document.ExitNote
	err := r.db.WithContext(ctx).Preload("Items").First(&note, "material_request_id = ?", requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindByWarehouse retrieves exit notes of a warehouse
func (r *GormExitNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ExitNote, error) {
	var notes []document.ExitNote
	query := r.db.WithContext(ctx).Model(&document.ExitNote{}).
		Preload("Items").
		Where("warehouse_id = ?", warehouseID)
	err := applyFilter(query, filter, DocumentSortFields).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Save persists an exit note and its items
func (r *GormExitNoteRepository) Save(ctx context.Context, note *document.ExitNote) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(note).Error
}

var _ document.ExitNoteRepository = (*GormExitNoteRepository)(nil)
