package custody

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// CustodyReturnService drives the return workflow: a user claims items back,
// a warehouse keeper adjudicates each item, and accepted quantities flow back
// into the ledger of the custody item's source warehouse.
type CustodyReturnService struct {
	productRepo catalog.ProductRepository
	txScope     TransactionScope
	logger      *zap.Logger
}

// NewCustodyReturnService creates a new CustodyReturnService
func NewCustodyReturnService(
	productRepo catalog.ProductRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *CustodyReturnService {
	return &CustodyReturnService{
		productRepo: productRepo,
		txScope:     txScope,
		logger:      logger,
	}
}

// CreateReturn opens a return batch for the acting user. Every claimed item
// must belong to the user, be non-consumable, have no other return still in
// review, and stay within the quantity not yet accepted back.
func (s *CustodyReturnService) CreateReturn(ctx context.Context, actor shared.Actor, input CreateReturnInput) (*ReturnResponse, error) {
	if len(input.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "A custody return needs at least one item")
	}

	var ret *custody.CustodyReturn

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		lines := make([]custody.CustodyReturnLine, 0, len(input.Items))
		seen := make(map[uuid.UUID]struct{}, len(input.Items))

		for _, line := range input.Items {
			// Lines are validated against repo state before any row is
			// written, so repeating an item inside one batch would slip
			// past the pending-review and returnable-quantity checks.
			if _, dup := seen[line.CustodyItemID]; dup {
				return shared.NewDomainError("DUPLICATE_ITEM", "A custody return lists each item at most once")
			}
			seen[line.CustodyItemID] = struct{}{}

			item, err := repos.CustodyRepo().FindItemByID(ctx, line.CustodyItemID)
			if err != nil {
				return err
			}

			parent, err := repos.CustodyRepo().FindByID(ctx, item.CustodyID)
			if err != nil {
				return err
			}
			if parent.UserID != actor.ID {
				return shared.ErrForbidden
			}

			product, err := s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Consumable {
				return shared.NewDomainError("CONSUMABLE_NOT_RETURNABLE", "Consumable products cannot be returned")
			}

			pending, err := repos.CustodyReturnRepo().HasPendingReviewForCustodyItem(ctx, item.ID)
			if err != nil {
				return err
			}
			if pending {
				return shared.NewDomainError("RETURN_ALREADY_PENDING", "Another return for this item is still under review")
			}

			accepted, err := repos.CustodyReturnRepo().SumAcceptedForCustodyItem(ctx, item.ID)
			if err != nil {
				return err
			}
			returnable := item.Quantity.Sub(accepted)
			if line.ReturnedQuantity.GreaterThan(returnable) {
				return shared.NewDomainError("INSUFFICIENT_RETURNABLE_QUANTITY", "Returned quantity exceeds what is still out on custody")
			}

			lines = append(lines, custody.CustodyReturnLine{
				CustodyItemID:    item.ID,
				ReturnedQuantity: line.ReturnedQuantity,
			})
		}

		created, err := custody.NewCustodyReturn(actor.ID, lines)
		if err != nil {
			return err
		}
		if err := repos.CustodyReturnRepo().Save(ctx, created); err != nil {
			return err
		}
		ret = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("custody return opened",
		zap.String("return_id", ret.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.Int("items", len(ret.Items)),
	)

	response := ToReturnResponse(ret)
	return &response, nil
}

// ProcessItem adjudicates one return item as the acting keeper. Acceptance
// restocks the accepted quantity at the custody item's source warehouse and
// appends the movement record; all other outcomes only record the decision.
// The parent batch status is recomputed in the same transaction.
func (s *CustodyReturnService) ProcessItem(ctx context.Context, actor shared.Actor, input ProcessReturnItemInput) (*ReturnResponse, error) {
	outcome := custody.CustodyReturnItemStatus(input.Outcome)
	if !outcome.IsTerminal() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown adjudication outcome")
	}

	var ret *custody.CustodyReturn

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.CustodyReturnRepo().FindByIDForUpdate(ctx, input.ReturnID)
		if err != nil {
			return err
		}
		ret = found

		item := ret.ItemByID(input.ItemID)
		if item == nil {
			return shared.ErrNotFound
		}

		custodyItem, err := repos.CustodyRepo().FindItemByID(ctx, item.CustodyItemID)
		if err != nil {
			return err
		}

		if outcome == custody.CustodyReturnItemStatusAccepted {
			accepted, err := repos.CustodyReturnRepo().SumAcceptedForCustodyItem(ctx, item.CustodyItemID)
			if err != nil {
				return err
			}
			if accepted.Add(input.AcceptedQuantity).GreaterThan(custodyItem.Quantity) {
				return shared.NewDomainError("INSUFFICIENT_RETURNABLE_QUANTITY", "Accepted quantity exceeds what is still out on custody")
			}

			if err := item.Accept(input.AcceptedQuantity, actor.ID); err != nil {
				return err
			}

			err = inventory.IncreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				custodyItem.WarehouseID, custodyItem.ProductID, input.AcceptedQuantity,
				warehouse.MovementTypeReturn, document.DocTypeCustodyReturn, ret.ID, actor,
			)
			if err != nil {
				return err
			}
		} else {
			if err := item.Decline(outcome, actor.ID); err != nil {
				return err
			}
		}

		ret.RecomputeStatus()
		return repos.CustodyReturnRepo().Save(ctx, ret)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("custody return item processed",
		zap.String("return_id", ret.ID.String()),
		zap.String("item_id", input.ItemID.String()),
		zap.String("outcome", input.Outcome),
		zap.String("processed_by", actor.ID.String()),
	)

	response := ToReturnResponse(ret)
	return &response, nil
}

// GetReturn retrieves a return batch visible to the actor
func (s *CustodyReturnService) GetReturn(ctx context.Context, actor shared.Actor, returnID uuid.UUID) (*ReturnResponse, error) {
	var ret *custody.CustodyReturn
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.CustodyReturnRepo().FindByID(ctx, returnID)
		if err != nil {
			return err
		}
		ret = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if actor.Is(shared.RoleUser) && ret.UserID != actor.ID {
		return nil, shared.ErrForbidden
	}

	response := ToReturnResponse(ret)
	return &response, nil
}

// ListByUser retrieves a user's return batches
func (s *CustodyReturnService) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, filter shared.Filter) ([]ReturnResponse, error) {
	if actor.Is(shared.RoleUser) && userID != actor.ID {
		return nil, shared.ErrForbidden
	}

	var returns []custody.CustodyReturn
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.CustodyReturnRepo().FindByUser(ctx, userID, filter)
		if err != nil {
			return err
		}
		returns = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToReturnResponses(returns), nil
}
