package note

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/warehouse"
)

// mintSerial draws the next serial number for a document type from the
// per-year counter. Must be called inside the issuing transaction so the
// counter row stays locked until the note commits.
func mintSerial(ctx context.Context, sequences warehouse.DocumentSequenceRepository, documentType string) (string, error) {
	n, err := sequences.NextValue(ctx, documentType, time.Now().Year())
	if err != nil {
		return "", err
	}
	return warehouse.SerialNumber(n), nil
}
