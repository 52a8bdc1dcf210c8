package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wms/backend/internal/domain/warehouse"
)

// GormDocumentSequenceRepository implements warehouse.DocumentSequenceRepository
// using GORM. NextValue must run inside the transaction of the document being
// numbered: the row lock it takes is what serializes concurrent serial minting.
type GormDocumentSequenceRepository struct {
	db *gorm.DB
}

// NewGormDocumentSequenceRepository creates a new GormDocumentSequenceRepository
func NewGormDocumentSequenceRepository(db *gorm.DB) *GormDocumentSequenceRepository {
	return &GormDocumentSequenceRepository{db: db}
}

// NextValue locks the (documentType, year) counter row, increments it and
// returns the new value. The row is created on first use.
func (r *GormDocumentSequenceRepository) NextValue(ctx context.Context, documentType string, year int) (int64, error) {
	var sequence warehouse.DocumentSequence
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sequence, "document_type = ? AND year = ?", documentType, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh, err := warehouse.NewDocumentSequence(documentType, year)
		if err != nil {
			return 0, err
		}
		err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(fresh).Error
		if err != nil {
			return 0, err
		}
		// Re-read under lock: a concurrent transaction may have won the insert.
		err = r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sequence, "document_type = ? AND year = ?", documentType, year).Error
		if err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	next := sequence.Next()
	if err := r.db.WithContext(ctx).Save(&sequence).Error; err != nil {
		return 0, err
	}
	return next, nil
}

var _ warehouse.DocumentSequenceRepository = (*GormDocumentSequenceRepository)(nil)
