package inventory

import (
	"context"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// LocationService handles location capacity tracking: directory operations,
// the availability search used when placing received goods, and the atomic
// assignment that consumes a receiving note item's unassigned quantity.
type LocationService struct {
	locationRepo warehouse.LocationRepository
	productRepo  catalog.ProductRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewLocationService creates a new LocationService
func NewLocationService(
	locationRepo warehouse.LocationRepository,
	productRepo catalog.ProductRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		productRepo:  productRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Create creates a location inside a warehouse
func (s *LocationService) Create(ctx context.Context, input CreateLocationInput) (*LocationResponse, error) {
	location, err := warehouse.NewLocation(input.WarehouseID, input.Name, input.CapacityUnits, input.CapacityUnitType)
	if err != nil {
		return nil, err
	}
	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// Get retrieves a location by ID
func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// ListByWarehouse retrieves the locations of a warehouse
func (s *LocationService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]LocationResponse, error) {
	locations, err := s.locationRepo.FindByWarehouse(ctx, warehouseID, filter)
	if err != nil {
		return nil, err
	}
	return ToLocationResponses(locations), nil
}

// FindAvailable returns locations that can hold the quantity of the product.
// Candidates must match the product's unit and have enough remaining
// capacity. When an eligible preferred location is given it short-circuits
// the search and is returned alone.
func (s *LocationService) FindAvailable(ctx context.Context, input FindAvailableInput) ([]LocationResponse, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.PreferredLocationID != nil {
		preferred, err := s.locationRepo.FindByID(ctx, *input.PreferredLocationID)
		if err == nil &&
			preferred.WarehouseID == input.WarehouseID &&
			preferred.AcceptsUnit(product.Unit) &&
			preferred.CanHold(input.Quantity) {
			return []LocationResponse{ToLocationResponse(preferred)}, nil
		}
		// Ineligible preferred location falls through to the full search.
	}

	locations, err := s.locationRepo.FindAvailable(ctx, input.WarehouseID, product.Unit, input.Quantity)
	if err != nil {
		return nil, err
	}
	return ToLocationResponses(locations), nil
}

// Assign places a quantity of a receiving note item into a location. The
// placement upsert, the item's unassigned decrement and the capacity
// increment happen in one transaction with the location row locked.
func (s *LocationService) Assign(ctx context.Context, actor shared.Actor, input AssignLocationInput) (*LocationResponse, error) {
	var response LocationResponse

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.ReceivingNoteRepo().FindItemForUpdate(ctx, input.ReceivingNoteItemID)
		if err != nil {
			return err
		}

		location, err := repos.LocationRepo().FindByIDForUpdate(ctx, input.LocationID)
		if err != nil {
			return err
		}

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if !product.FitsUnitType(location.CapacityUnitType) {
			return shared.ErrUnitMismatch
		}

		if err := item.Assign(input.Quantity); err != nil {
			return err
		}
		if err := location.Allocate(input.Quantity); err != nil {
			return err
		}

		placement, err := repos.ProductLocationRepo().GetOrCreateForUpdate(ctx, item.ProductID, location.ID)
		if err != nil {
			return err
		}
		if err := placement.Add(input.Quantity); err != nil {
			return err
		}

		if err := repos.ReceivingNoteRepo().SaveItem(ctx, item); err != nil {
			return err
		}
		if err := repos.ProductLocationRepo().Save(ctx, placement); err != nil {
			return err
		}
		if err := repos.LocationRepo().Save(ctx, location); err != nil {
			return err
		}

		response = ToLocationResponse(location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("receiving note item assigned to location",
		zap.String("item_id", input.ReceivingNoteItemID.String()),
		zap.String("location_id", input.LocationID.String()),
		zap.String("quantity", input.Quantity.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return &response, nil
}

// Withdraw removes a placed quantity from a location, releasing capacity.
// Used by exit flows that pull specific goods out of a slot.
func (s *LocationService) Withdraw(ctx context.Context, actor shared.Actor, input WithdrawLocationInput) (*LocationResponse, error) {
	var response LocationResponse

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		location, err := repos.LocationRepo().FindByIDForUpdate(ctx, input.LocationID)
		if err != nil {
			return err
		}

		placement, err := repos.ProductLocationRepo().GetOrCreateForUpdate(ctx, input.ProductID, location.ID)
		if err != nil {
			return err
		}
		if err := placement.Remove(input.Quantity); err != nil {
			return err
		}
		if err := location.Release(input.Quantity); err != nil {
			return err
		}

		if err := repos.ProductLocationRepo().Save(ctx, placement); err != nil {
			return err
		}
		if err := repos.LocationRepo().Save(ctx, location); err != nil {
			return err
		}

		response = ToLocationResponse(location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("placement withdrawn from location",
		zap.String("product_id", input.ProductID.String()),
		zap.String("location_id", input.LocationID.String()),
		zap.String("quantity", input.Quantity.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return &response, nil
}
