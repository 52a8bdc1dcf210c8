package request

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/shared"
)

// MaterialRequestService drives the material request workflow: creation by a
// requester, approval or rejection by the manager of the requester's
// department, and queries per participant. Fulfillment lives in the note
// package because it issues the exit note.
type MaterialRequestService struct {
	userRepo       identity.UserRepository
	departmentRepo identity.DepartmentRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewMaterialRequestService creates a new MaterialRequestService
func NewMaterialRequestService(
	userRepo identity.UserRepository,
	departmentRepo identity.DepartmentRepository,
	txScope TransactionScope,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *MaterialRequestService {
	return &MaterialRequestService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		txScope:        txScope,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// resolveManager walks requester -> department -> manager. Any broken link
// fails with the manager-not-found error before anything is persisted.
func (s *MaterialRequestService) resolveManager(ctx context.Context, requester *identity.User) (uuid.UUID, error) {
	if requester.DepartmentID == nil {
		return uuid.Nil, shared.ErrManagerNotFound
	}
	department, err := s.departmentRepo.FindByID(ctx, *requester.DepartmentID)
	if err != nil {
		return uuid.Nil, shared.ErrManagerNotFound
	}
	if !department.HasManager() {
		return uuid.Nil, shared.ErrManagerNotFound
	}
	return *department.ManagerID, nil
}

// Create creates a pending material request for the acting user
func (s *MaterialRequestService) Create(ctx context.Context, actor shared.Actor, input CreateMaterialRequestInput) (*MaterialRequestResponse, error) {
	requester, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	managerID, err := s.resolveManager(ctx, requester)
	if err != nil {
		return nil, err
	}

	keeper, err := s.userRepo.FindKeeperByWarehouse(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}

	lines := make([]document.MaterialRequestLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, document.MaterialRequestLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	req, err := document.NewMaterialRequest(requester.ID, managerID, keeper.ID, input.WarehouseID, input.Reason, lines)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.MaterialRequestRepo().Save(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, req)

	s.logger.Info("material request created",
		zap.String("request_id", req.ID.String()),
		zap.String("requester_id", requester.ID.String()),
		zap.String("manager_id", managerID.String()),
	)

	response := ToMaterialRequestResponse(req)
	return &response, nil
}

// Approve fully approves a pending request as the acting manager
func (s *MaterialRequestService) Approve(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*MaterialRequestResponse, error) {
	return s.decide(ctx, requestID, func(req *document.MaterialRequest) error {
		return req.Approve(actor.ID)
	})
}

// ApproveWithQuantities approves a pending request with edited per-item
// quantities. An edited quantity above the requested one fails the whole
// approval.
func (s *MaterialRequestService) ApproveWithQuantities(ctx context.Context, actor shared.Actor, input ApproveMaterialRequestInput) (*MaterialRequestResponse, error) {
	return s.decide(ctx, input.RequestID, func(req *document.MaterialRequest) error {
		return req.ApproveWithQuantities(actor.ID, input.Quantities)
	})
}

// Reject rejects a pending request as the acting manager
func (s *MaterialRequestService) Reject(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*MaterialRequestResponse, error) {
	return s.decide(ctx, requestID, func(req *document.MaterialRequest) error {
		return req.Reject(actor.ID)
	})
}

// decide locks the request row, applies the transition and saves. The row
// lock serializes concurrent decisions; the loser sees the new state and
// fails in the domain.
func (s *MaterialRequestService) decide(ctx context.Context, requestID uuid.UUID, transition func(*document.MaterialRequest) error) (*MaterialRequestResponse, error) {
	var req *document.MaterialRequest

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.MaterialRequestRepo().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := transition(found); err != nil {
			return err
		}
		if err := repos.MaterialRequestRepo().Save(ctx, found); err != nil {
			return err
		}
		req = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, req)

	response := ToMaterialRequestResponse(req)
	return &response, nil
}

// Get retrieves a material request visible to the actor
func (s *MaterialRequestService) Get(ctx context.Context, actor shared.Actor, requestID uuid.UUID) (*MaterialRequestResponse, error) {
	var req *document.MaterialRequest
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.MaterialRequestRepo().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		req = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.RequesterID != actor.ID && req.ManagerID != actor.ID && req.KeeperID != actor.ID {
		return nil, shared.ErrForbidden
	}

	response := ToMaterialRequestResponse(req)
	return &response, nil
}

// ListForActor lists the requests the actor participates in, by role
func (s *MaterialRequestService) ListForActor(ctx context.Context, actor shared.Actor, filter shared.Filter) ([]MaterialRequestResponse, error) {
	var requests []document.MaterialRequest
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		switch actor.Role {
		case shared.RoleManager:
			requests, err = repos.MaterialRequestRepo().FindByManager(ctx, actor.ID, filter)
		case shared.RoleWarehouseKeeper:
			requests, err = repos.MaterialRequestRepo().FindByKeeper(ctx, actor.ID, filter)
		default:
			requests, err = repos.MaterialRequestRepo().FindByRequester(ctx, actor.ID, filter)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToMaterialRequestResponses(requests), nil
}

// publishDomainEvents publishes pending events; failures are logged by the
// event bus and never propagate to the caller.
func (s *MaterialRequestService) publishDomainEvents(ctx context.Context, req *document.MaterialRequest) {
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
