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

// ExitNoteService issues exit notes that fulfill approved material requests.
// The request row is locked for the whole transaction: quantity checks
// against the approval, ledger decrements, the note insert and the flip to
// delivered are all-or-nothing.
type ExitNoteService struct {
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewExitNoteService creates a new ExitNoteService
func NewExitNoteService(txScope TransactionScope, eventPublisher shared.EventPublisher, logger *zap.Logger) *ExitNoteService {
	return &ExitNoteService{txScope: txScope, eventPublisher: eventPublisher, logger: logger}
}

// Create issues an exit note for an approved material request. The acting
// keeper must be the one assigned to the request; every line must stay
// within its approved quantity and within live stock.
func (s *ExitNoteService) Create(ctx context.Context, actor shared.Actor, input CreateExitNoteInput) (*ExitNoteResponse, error) {
	var (
		note *document.ExitNote
		req  *document.MaterialRequest
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.MaterialRequestRepo().FindByIDForUpdate(ctx, input.MaterialRequestID)
		if err != nil {
			return err
		}
		req = found

		if req.KeeperID != actor.ID {
			return shared.ErrForbidden
		}
		if req.Status != document.MaterialRequestStatusApproved {
			return shared.ErrInvalidState
		}
		if len(input.Items) == 0 {
			return shared.NewDomainError("EMPTY_ITEMS", "An exit note needs at least one item")
		}

		lines := make([]document.NoteLine, 0, len(input.Items))
		seen := make(map[uuid.UUID]struct{}, len(input.Items))
		for _, item := range input.Items {
			// The approval check is per product, so split lines for one
			// product could each pass while exceeding it in sum.
			if _, dup := seen[item.ProductID]; dup {
				return shared.NewDomainError("DUPLICATE_PRODUCT", "An exit note lists each product at most once")
			}
			seen[item.ProductID] = struct{}{}

			reqItem := req.ItemByProduct(item.ProductID)
			if reqItem == nil {
				return shared.NewDomainError("PRODUCT_NOT_REQUESTED", "Product is not part of the material request")
			}
			if item.Quantity.GreaterThan(reqItem.ApprovedQuantity) {
				return shared.ErrInsufficientApprovedQuantity
			}
			lines = append(lines, document.NoteLine{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		serial, err := mintSerial(ctx, repos.SequenceRepo(), document.DocTypeExitNote)
		if err != nil {
			return err
		}

		note, err = document.NewExitNote(serial, req.WarehouseID, req.ID, actor.ID, lines)
		if err != nil {
			return err
		}
		if err := repos.ExitNoteRepo().Save(ctx, note); err != nil {
			return err
		}

		for _, item := range note.Items {
			err := inventory.DecreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				note.WarehouseID, item.ProductID, item.Quantity,
				warehouse.MovementTypeExit, document.DocTypeExitNote, note.ID, actor,
			)
			if err != nil {
				return err
			}
		}

		if err := req.MarkDelivered(); err != nil {
			return err
		}
		return repos.MaterialRequestRepo().Save(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, req)

	s.logger.Info("exit note issued",
		zap.String("note_id", note.ID.String()),
		zap.String("serial", note.SerialNumber),
		zap.String("request_id", req.ID.String()),
		zap.Int("items", len(note.Items)),
	)

	response := ToExitNoteResponse(note)
	return &response, nil
}

// Get retrieves an exit note by ID
func (s *ExitNoteService) Get(ctx context.Context, noteID uuid.UUID) (*ExitNoteResponse, error) {
	var note *document.ExitNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ExitNoteRepo().FindByID(ctx, noteID)
		if err != nil {
			return err
		}
		note = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToExitNoteResponse(note)
	return &response, nil
}

// GetByMaterialRequest retrieves the exit note that fulfilled a request
func (s *ExitNoteService) GetByMaterialRequest(ctx context.Context, requestID uuid.UUID) (*ExitNoteResponse, error) {
	var note *document.ExitNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ExitNoteRepo().FindByMaterialRequest(ctx, requestID)
		if err != nil {
			return err
		}
		note = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToExitNoteResponse(note)
	return &response, nil
}

// ListByWarehouse retrieves the exit notes of a warehouse
func (s *ExitNoteService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ExitNoteResponse, error) {
	var notes []document.ExitNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ExitNoteRepo().FindByWarehouse(ctx, warehouseID, filter)
		if err != nil {
			return err
		}
		notes = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToExitNoteResponses(notes), nil
}

func (s *ExitNoteService) publishDomainEvents(ctx context.Context, req *document.MaterialRequest) {
	if s.eventPublisher == nil || req == nil {
		return
	}
	events := req.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	req.ClearDomainEvents()
}
