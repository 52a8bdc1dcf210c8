package custody

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

// CustodyService creates and reads custody records. A custody is bookkeeping
// for material that already left the warehouse through an exit note; creating
// one never touches the stock ledger.
type CustodyService struct {
	exitNoteRepo document.ExitNoteRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewCustodyService creates a new CustodyService
func NewCustodyService(
	exitNoteRepo document.ExitNoteRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *CustodyService {
	return &CustodyService{
		exitNoteRepo: exitNoteRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Create records a custody for a user. Every line is sourced from an exit
// note item and carries that item's product, source warehouse and full
// quantity.
func (s *CustodyService) Create(ctx context.Context, actor shared.Actor, input CreateCustodyInput) (*CustodyResponse, error) {
	if len(input.ExitNoteItemIDs) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A custody needs at least one item")
	}

	lines := make([]custody.CustodyLine, 0, len(input.ExitNoteItemIDs))
	for _, itemID := range input.ExitNoteItemIDs {
		item, err := s.exitNoteRepo.FindItemByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		note, err := s.exitNoteRepo.FindByID(ctx, item.NoteID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, custody.CustodyLine{
			ExitNoteItemID: item.ID,
			ProductID:      item.ProductID,
			WarehouseID:    note.WarehouseID,
			Quantity:       item.Quantity,
		})
	}

	record, err := custody.NewCustody(input.UserID, input.Room, lines)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.CustodyRepo().Save(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("custody created",
		zap.String("custody_id", record.ID.String()),
		zap.String("user_id", record.UserID.String()),
		zap.String("created_by", actor.ID.String()),
		zap.Int("items", len(record.Items)),
	)

	response := ToCustodyResponse(record)
	return &response, nil
}

// Get retrieves a custody visible to the actor. Users only see their own;
// keepers and managers see all.
func (s *CustodyService) Get(ctx context.Context, actor shared.Actor, custodyID uuid.UUID) (*CustodyResponse, error) {
	var record *custody.Custody
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.CustodyRepo().FindByID(ctx, custodyID)
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if actor.Is(shared.RoleUser) && record.UserID != actor.ID {
		return nil, shared.ErrForbidden
	}

	response := ToCustodyResponse(record)
	return &response, nil
}

// ListByUser retrieves a user's custodies
func (s *CustodyService) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, filter shared.Filter) ([]CustodyResponse, error) {
	if actor.Is(shared.RoleUser) && userID != actor.ID {
		return nil, shared.ErrForbidden
	}

	var records []custody.Custody
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.CustodyRepo().FindByUser(ctx, userID, filter)
		if err != nil {
			return err
		}
		records = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToCustodyResponses(records), nil
}
