package note

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// EntryNoteService issues entry notes. One transaction mints the serial,
// inserts the note and increments the ledger per item.
type EntryNoteService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewEntryNoteService creates a new EntryNoteService
func NewEntryNoteService(txScope TransactionScope, logger *zap.Logger) *EntryNoteService {
	return &EntryNoteService{txScope: txScope, logger: logger}
}

// Create issues an entry note and applies its stock increments
func (s *EntryNoteService) Create(ctx context.Context, actor shared.Actor, input CreateEntryNoteInput) (*EntryNoteResponse, error) {
	var note *document.EntryNote

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		serial, err := mintSerial(ctx, repos.SequenceRepo(), document.DocTypeEntryNote)
		if err != nil {
			return err
		}

		lines := make([]document.NoteLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, document.NoteLine{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		note, err = document.NewEntryNote(serial, input.WarehouseID, actor.ID, input.Remark, lines)
		if err != nil {
			return err
		}
		if err := repos.EntryNoteRepo().Save(ctx, note); err != nil {
			return err
		}

		for _, item := range note.Items {
			err := inventory.IncreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				note.WarehouseID, item.ProductID, item.Quantity,
				warehouse.MovementTypeEntry, document.DocTypeEntryNote, note.ID, actor,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("entry note issued",
		zap.String("note_id", note.ID.String()),
		zap.String("serial", note.SerialNumber),
		zap.String("warehouse_id", note.WarehouseID.String()),
		zap.Int("items", len(note.Items)),
	)

	response := ToEntryNoteResponse(note)
	return &response, nil
}

// Get retrieves an entry note by ID
func (s *EntryNoteService) Get(ctx context.Context, noteID uuid.UUID) (*EntryNoteResponse, error) {
	var note *document.EntryNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.EntryNoteRepo().FindByID(ctx, noteID)
		if err != nil {
			return err
		}
		note = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToEntryNoteResponse(note)
	return &response, nil
}

// ListByWarehouse retrieves the entry notes of a warehouse
func (s *EntryNoteService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]EntryNoteResponse, error) {
	var notes []document.EntryNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.EntryNoteRepo().FindByWarehouse(ctx, warehouseID, filter)
		if err != nil {
			return err
		}
		notes = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToEntryNoteResponses(notes), nil
}
