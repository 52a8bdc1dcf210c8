package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

type locationFixture struct {
	locationRepo  *MockLocationRepository
	productRepo   *MockProductRepository
	placementRepo *MockProductLocationRepository
	receivingRepo *MockReceivingNoteRepository
	service       *LocationService
}

func newLocationFixture() *locationFixture {
	f := &locationFixture{
		locationRepo:  new(MockLocationRepository),
		productRepo:   new(MockProductRepository),
		placementRepo: new(MockProductLocationRepository),
		receivingRepo: new(MockReceivingNoteRepository),
	}
	scope := NewNoOpTransactionScope(
		new(MockStockRepository), f.locationRepo, f.placementRepo,
		new(MockMovementRepository), f.receivingRepo,
	)
	f.service = NewLocationService(f.locationRepo, f.productRepo, scope, zap.NewNop())
	return f
}

// newReceivedItem builds a receiving note item with 10 units still unplaced
func newReceivedItem(t *testing.T, warehouseID, productID uuid.UUID) *document.ReceivingNoteItem {
	t.Helper()
	note, err := document.NewReceivingNote("(1/1)", warehouseID, uuid.New(), "",
		[]document.ReceivingLine{{ProductID: productID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(2)}})
	require.NoError(t, err)
	return &note.Items[0]
}

func TestLocationService_Create(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()
	warehouseID := uuid.New()

	f.locationRepo.On("Save", ctx, mock.AnythingOfType("*warehouse.Location")).Return(nil)

	resp, err := f.service.Create(ctx, CreateLocationInput{
		WarehouseID:      warehouseID,
		Name:             "A-1",
		CapacityUnits:    decimal.NewFromInt(100),
		CapacityUnitType: "piece",
	})
	require.NoError(t, err)

	assert.Equal(t, warehouseID, resp.WarehouseID)
	assert.Equal(t, "A-1", resp.Name)
	assert.True(t, resp.RemainingCapacity.Equal(decimal.NewFromInt(100)))
}

func TestLocationService_FindAvailable_PreferredShortCircuits(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "piece", true)
	require.NoError(t, err)
	preferred, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(50), "piece")
	require.NoError(t, err)

	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	f.locationRepo.On("FindByID", ctx, preferred.ID).Return(preferred, nil)

	resp, err := f.service.FindAvailable(ctx, FindAvailableInput{
		WarehouseID:         warehouseID,
		ProductID:           product.ID,
		Quantity:            decimal.NewFromInt(20),
		PreferredLocationID: &preferred.ID,
	})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, preferred.ID, resp[0].ID)
	f.locationRepo.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_FindAvailable_IneligiblePreferredFallsThrough(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "meter", true)
	require.NoError(t, err)
	// Unit mismatch: the preferred slot counts pieces, the product is metered.
	preferred, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(50), "piece")
	require.NoError(t, err)
	candidate, err := warehouse.NewLocation(warehouseID, "B-2", decimal.NewFromInt(500), "meter")
	require.NoError(t, err)

	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	f.locationRepo.On("FindByID", ctx, preferred.ID).Return(preferred, nil)
	f.locationRepo.On("FindAvailable", ctx, warehouseID, "meter", decimal.NewFromInt(20)).
		Return([]warehouse.Location{*candidate}, nil)

	resp, err := f.service.FindAvailable(ctx, FindAvailableInput{
		WarehouseID:         warehouseID,
		ProductID:           product.ID,
		Quantity:            decimal.NewFromInt(20),
		PreferredLocationID: &preferred.ID,
	})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, candidate.ID, resp[0].ID)
}

func TestLocationService_Assign(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "piece", true)
	require.NoError(t, err)
	item := newReceivedItem(t, warehouseID, product.ID)
	location, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(30), "piece")
	require.NoError(t, err)
	placement, err := warehouse.NewProductLocation(product.ID, location.ID)
	require.NoError(t, err)

	f.receivingRepo.On("FindItemForUpdate", ctx, item.ID).Return(item, nil)
	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	f.placementRepo.On("GetOrCreateForUpdate", ctx, product.ID, location.ID).Return(placement, nil)
	f.receivingRepo.On("SaveItem", ctx, item).Return(nil)
	f.placementRepo.On("Save", ctx, placement).Return(nil)
	f.locationRepo.On("Save", ctx, location).Return(nil)

	resp, err := f.service.Assign(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), AssignLocationInput{
		ReceivingNoteItemID: item.ID,
		LocationID:          location.ID,
		Quantity:            decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	assert.True(t, resp.UsedCapacityUnits.Equal(decimal.NewFromInt(6)))
	assert.True(t, resp.RemainingCapacity.Equal(decimal.NewFromInt(24)))
	assert.True(t, item.UnassignedQuantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, placement.Quantity.Equal(decimal.NewFromInt(6)))
}

func TestLocationService_Assign_UnitMismatch(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "meter", true)
	require.NoError(t, err)
	item := newReceivedItem(t, warehouseID, product.ID)
	location, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(30), "piece")
	require.NoError(t, err)

	f.receivingRepo.On("FindItemForUpdate", ctx, item.ID).Return(item, nil)
	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err = f.service.Assign(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), AssignLocationInput{
		ReceivingNoteItemID: item.ID,
		LocationID:          location.ID,
		Quantity:            decimal.NewFromInt(6),
	})
	assert.ErrorIs(t, err, shared.ErrUnitMismatch)
	f.locationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLocationService_Assign_ExceedsUnassigned(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "piece", true)
	require.NoError(t, err)
	item := newReceivedItem(t, warehouseID, product.ID)
	location, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(100), "piece")
	require.NoError(t, err)

	f.receivingRepo.On("FindItemForUpdate", ctx, item.ID).Return(item, nil)
	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err = f.service.Assign(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), AssignLocationInput{
		ReceivingNoteItemID: item.ID,
		LocationID:          location.ID,
		Quantity:            decimal.NewFromInt(11),
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientSourceQuantity)
}

func TestLocationService_Assign_ExceedsCapacity(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	product, err := catalog.NewProduct("Cable", "CAB-001", "piece", true)
	require.NoError(t, err)
	item := newReceivedItem(t, warehouseID, product.ID)
	location, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(5), "piece")
	require.NoError(t, err)

	f.receivingRepo.On("FindItemForUpdate", ctx, item.ID).Return(item, nil)
	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err = f.service.Assign(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), AssignLocationInput{
		ReceivingNoteItemID: item.ID,
		LocationID:          location.ID,
		Quantity:            decimal.NewFromInt(8),
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientCapacity)
}

func TestLocationService_Withdraw(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()
	location, err := warehouse.NewLocation(warehouseID, "A-1", decimal.NewFromInt(30), "piece")
	require.NoError(t, err)
	require.NoError(t, location.Allocate(decimal.NewFromInt(10)))
	placement, err := warehouse.NewProductLocation(productID, location.ID)
	require.NoError(t, err)
	require.NoError(t, placement.Add(decimal.NewFromInt(10)))

	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.placementRepo.On("GetOrCreateForUpdate", ctx, productID, location.ID).Return(placement, nil)
	f.placementRepo.On("Save", ctx, placement).Return(nil)
	f.locationRepo.On("Save", ctx, location).Return(nil)

	resp, err := f.service.Withdraw(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), WithdrawLocationInput{
		ProductID:  productID,
		LocationID: location.ID,
		Quantity:   decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	assert.True(t, resp.UsedCapacityUnits.Equal(decimal.NewFromInt(6)))
	assert.True(t, placement.Quantity.Equal(decimal.NewFromInt(6)))
}

func TestLocationService_Withdraw_MoreThanPlaced(t *testing.T) {
	f := newLocationFixture()
	ctx := context.Background()

	productID := uuid.New()
	location, err := warehouse.NewLocation(uuid.New(), "A-1", decimal.NewFromInt(30), "piece")
	require.NoError(t, err)
	require.NoError(t, location.Allocate(decimal.NewFromInt(2)))
	placement, err := warehouse.NewProductLocation(productID, location.ID)
	require.NoError(t, err)
	require.NoError(t, placement.Add(decimal.NewFromInt(2)))

	f.locationRepo.On("FindByIDForUpdate", ctx, location.ID).Return(location, nil)
	f.placementRepo.On("GetOrCreateForUpdate", ctx, productID, location.ID).Return(placement, nil)

	_, err = f.service.Withdraw(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), WithdrawLocationInput{
		ProductID:  productID,
		LocationID: location.ID,
		Quantity:   decimal.NewFromInt(5),
	})
	assert.Error(t, err)
}
