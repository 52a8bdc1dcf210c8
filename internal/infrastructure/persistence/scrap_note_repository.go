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

// GormScrapNoteRepository implements document.ScrapNoteRepository using GORM
type GormScrapNoteRepository struct {
	db *gorm.DB
}

// NewGormScrapNoteRepository creates a new GormScrapNoteRepository
func NewGormScrapNoteRepository(db *gorm.DB) *GormScrapNoteRepository {
	return &GormScrapNoteRepository{db: db}
}

// FindByID retrieves a scrap note with its items
func (r *GormScrapNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ScrapNote, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDForUpdate retrieves a scrap note under a row lock so concurrent
// approvals serialize
func (r *GormScrapNoteRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.ScrapNote, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "scrap_notes"}}), id)
}

// FindByWarehouse retrieves scrap notes of a warehouse
func (r *GormScrapNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ScrapNote, error) {
	var notes []document.ScrapNote
	query := r.db.WithContext(ctx).Model(&document.ScrapNote{}).
		Preload("Items").
		Where("warehouse_id = ?", warehouseID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	err := applyFilter(query, filter, DocumentSortFields).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Save persists a scrap note and its items
func (r *GormScrapNoteRepository) Save(ctx context.Context, note *document.ScrapNote) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(note).Error
}

func (r *GormScrapNoteRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*document.ScrapNote, error) {
	var note document.ScrapNote
	err := db.WithContext(ctx).Preload("Items").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

var _ document.ScrapNoteRepository = (*GormScrapNoteRepository)(nil)
