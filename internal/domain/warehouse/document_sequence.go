package warehouse

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// serialFolderSize is how many serials share a folder before the folder
// number advances.
const serialFolderSize = 50

// DocumentSequence is a per-(document type, calendar year) counter used for
// serial number generation. The counter is incremented under a row lock in
// the same transaction as the note it numbers, so concurrent creations can
// never mint duplicate serials.
type DocumentSequence struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	DocumentType string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_document_sequence,priority:1"`
	Year         int       `gorm:"not null;uniqueIndex:idx_document_sequence,priority:2"`
	Counter      int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequence) TableName() string {
	return "document_sequences"
}

// NewDocumentSequence creates a zeroed counter for a document type and year
func NewDocumentSequence(documentType string, year int) (*DocumentSequence, error) {
	if documentType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Document type cannot be empty")
	}
	if year <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Year must be positive")
	}
	now := time.Now()
	return &DocumentSequence{
		ID:           uuid.New(),
		DocumentType: documentType,
		Year:         year,
		Counter:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Next advances the counter and returns the new value
func (s *DocumentSequence) Next() int64 {
	s.Counter++
	s.UpdatedAt = time.Now()
	return s.Counter
}

// SerialNumber derives the "(folder/sequence)" serial for the nth document of
// the year. The folder advances every 50th document.
func SerialNumber(n int64) string {
	folder := (n-1)/serialFolderSize + 1
	sequence := (n-1)%serialFolderSize + 1
	return fmt.Sprintf("(%d/%d)", folder, sequence)
}
