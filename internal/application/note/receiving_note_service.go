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

// ReceivingNoteService issues receiving notes for purchased material. Items
// carry unit prices and keep an unassigned quantity consumed later by the
// location tracker.
type ReceivingNoteService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewReceivingNoteService creates a new ReceivingNoteService
func NewReceivingNoteService(txScope TransactionScope, logger *zap.Logger) *ReceivingNoteService {
	return &ReceivingNoteService{txScope: txScope, logger: logger}
}

// Create issues a receiving note and applies its stock increments
func (s *ReceivingNoteService) Create(ctx context.Context, actor shared.Actor, input CreateReceivingNoteInput) (*ReceivingNoteResponse, error) {
	var note *document.ReceivingNote

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		serial, err := mintSerial(ctx, repos.SequenceRepo(), document.DocTypeReceivingNote)
		if err != nil {
			return err
		}

		lines := make([]document.ReceivingLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, document.ReceivingLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		note, err = document.NewReceivingNote(serial, input.WarehouseID, actor.ID, input.SupplierRef, lines)
		if err != nil {
			return err
		}
		if err := repos.ReceivingNoteRepo().Save(ctx, note); err != nil {
			return err
		}

		for _, item := range note.Items {
			err := inventory.IncreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				note.WarehouseID, item.ProductID, item.Quantity,
				warehouse.MovementTypeReceive, document.DocTypeReceivingNote, note.ID, actor,
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

	s.logger.Info("receiving note issued",
		zap.String("note_id", note.ID.String()),
		zap.String("serial", note.SerialNumber),
		zap.String("warehouse_id", note.WarehouseID.String()),
		zap.String("total", note.Total.String()),
	)

	response := ToReceivingNoteResponse(note)
	return &response, nil
}

// Get retrieves a receiving note by ID
func (s *ReceivingNoteService) Get(ctx context.Context, noteID uuid.UUID) (*ReceivingNoteResponse, error) {
	var note *document.ReceivingNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ReceivingNoteRepo().FindByID(ctx, noteID)
		if err != nil {
			return err
		}
		note = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToReceivingNoteResponse(note)
	return &response, nil
}

// ListByWarehouse retrieves the receiving notes of a warehouse
func (s *ReceivingNoteService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ReceivingNoteResponse, error) {
	var notes []document.ReceivingNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ReceivingNoteRepo().FindByWarehouse(ctx, warehouseID, filter)
		if err != nil {
			return err
		}
		notes = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToReceivingNoteResponses(notes), nil
}
