package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

// GormEntryNoteRepository implements document.EntryNoteRepository using GORM
type GormEntryNoteRepository struct {
	db *gorm.DB
}

// NewGormEntryNoteRepository creates a new GormEntryNoteRepository
func NewGormEntryNoteRepository(db *gorm.DB) *GormEntryNoteRepository {
	return &GormEntryNoteRepository{db: db}
}

// FindByID retrieves an entry note with its items
func (r *GormEntryNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.EntryNote, error) {
	var note document.EntryNote
	err := r.db.WithContext(ctx).Preload("Items").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindByWarehouse retrieves entry notes of a warehouse
func (r *GormEntryNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.EntryNote, error) {
	var notes []document.EntryNote
	query := r.db.WithContext(ctx).Model(&document.EntryNote{}).
		Preload("Items").
		Where("warehouse_id = ?", warehouseID)
	err := applyFilter(query, filter, DocumentSortFields).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Save persists an entry note and its items
func (r *GormEntryNoteRepository) Save(ctx context.Context, note *document.EntryNote) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(note).Error
}

var _ document.EntryNoteRepository = (*GormEntryNoteRepository)(nil)
