package request

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// PurchaseRequestService drives the purchase request workflow: creation by a
// warehouse keeper, full approval or rejection by the manager resolved
// through keeper -> warehouse -> department.
type PurchaseRequestService struct {
	userRepo       identity.UserRepository
	warehouseRepo  warehouse.WarehouseRepository
	departmentRepo identity.DepartmentRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPurchaseRequestService creates a new PurchaseRequestService
func NewPurchaseRequestService(
	userRepo identity.UserRepository,
	warehouseRepo warehouse.WarehouseRepository,
	departmentRepo identity.DepartmentRepository,
	txScope TransactionScope,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *PurchaseRequestService {
	return &PurchaseRequestService{
		userRepo:       userRepo,
		warehouseRepo:  warehouseRepo,
		departmentRepo: departmentRepo,
		txScope:        txScope,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// resolveManager walks keeper -> warehouse -> department -> manager. Any nil
// link fails with the manager-not-found error before any row is written.
func (s *PurchaseRequestService) resolveManager(ctx context.Context, keeper *identity.User) (warehouseID, managerID uuid.UUID, err error) {
	if keeper.WarehouseID == nil {
		return uuid.Nil, uuid.Nil, shared.ErrManagerNotFound
	}
	wh, err := s.warehouseRepo.FindByID(ctx, *keeper.WarehouseID)
	if err != nil {
		return uuid.Nil, uuid.Nil, shared.ErrManagerNotFound
	}
	if wh.DepartmentID == nil {
		return uuid.Nil, uuid.Nil, shared.ErrManagerNotFound
	}
	department, err := s.departmentRepo.FindByID(ctx, *wh.DepartmentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, shared.ErrManagerNotFound
	}
	if !department.HasManager() {
		return uuid.Nil, uuid.Nil, shared.ErrManagerNotFound
	}
	return wh.ID, *department.ManagerID, nil
}

// Create creates a pending purchase request for the acting keeper
func (s *PurchaseRequestService) Create(ctx context.Context, actor shared.Actor, input CreatePurchaseRequestInput) (*PurchaseRequestResponse, error) {
	keeper, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	warehouseID, managerID, err := s.resolveManager(ctx, keeper)
	if err != nil {
		return nil, err
	}

	lines := make([]document.PurchaseRequestLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, document.PurchaseRequestLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	req, err := document.NewPurchaseRequest(keeper.ID, warehouseID, managerID, input.Reason, lines)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.PurchaseRequestRepo().Save(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, req)

	s.logger.Info("purchase request created",
		zap.String("request_id", req.ID.String()),
		zap.String("keeper_id", keeper.ID.String()),
		zap.String("manager_id", managerID.String()),
	)

	response := ToPurchaseRequestResponse(req)
	return &response, nil
}

// Approve approves a pending request; every requested quantity is copied to
// the approved quantity.
func (s *PurchaseRequestService) Approve(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PurchaseRequestResponse, error) {
	return s.decide(ctx, requestID, func(req *document.PurchaseRequest) error {
		return req.Approve(actor.ID)
	})
}

// Reject rejects a pending request
func (s *PurchaseRequestService) Reject(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PurchaseRequestResponse, error) {
	return s.decide(ctx, requestID, func(req *document.PurchaseRequest) error {
		return req.Reject(actor.ID)
	})
}

func (s *PurchaseRequestService) decide(ctx context.Context, requestID uuid.UUID, transition func(*document.PurchaseRequest) error) (*PurchaseRequestResponse, error) {
	var req *document.PurchaseRequest

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseRequestRepo().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := transition(found); err != nil {
			return err
		}
		if err := repos.PurchaseRequestRepo().Save(ctx, found); err != nil {
			return err
		}
		req = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, req)

	response := ToPurchaseRequestResponse(req)
	return &response, nil
}

// Get retrieves a purchase request visible to the actor
func (s *PurchaseRequestService) Get(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*PurchaseRequestResponse, error) {
	var req *document.PurchaseRequest
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.PurchaseRequestRepo().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		req = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.KeeperID != actor.ID && req.ManagerID != actor.ID {
		return nil, shared.ErrForbidden
	}

	response := ToPurchaseRequestResponse(req)
	return &response, nil
}

// ListForActor lists the requests the actor participates in, by role
func (s *PurchaseRequestService) ListForActor(ctx context.Context, actor shared.Actor, filter shared.Filter) ([]PurchaseRequestResponse, error) {
	var requests []document.PurchaseRequest
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if actor.Is(shared.RoleManager) {
			requests, err = repos.PurchaseRequestRepo().FindByManager(ctx, actor.ID, filter)
		} else {
			requests, err = repos.PurchaseRequestRepo().FindByKeeper(ctx, actor.ID, filter)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToPurchaseRequestResponses(requests), nil
}

func (s *PurchaseRequestService) publishDomainEvents(ctx context.Context, req *document.PurchaseRequest) {
	if s.eventPublisher == nil {
		return
	}
	events := req.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	req.ClearDomainEvents()
}
