package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

func TestIncreaseStock_RecordsBeforeAndAfter(t *testing.T) {
	stockRepo := new(MockStockRepository)
	movementRepo := new(MockMovementRepository)
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()
	documentID := uuid.New()
	actor := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)

	stock, err := warehouse.NewStock(warehouseID, productID)
	require.NoError(t, err)
	require.NoError(t, stock.Increase(decimal.NewFromInt(4)))

	var recorded *warehouse.ProductMovement
	stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)
	stockRepo.On("Save", ctx, stock).Return(nil)
	movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*warehouse.ProductMovement)
		}).
		Return(nil)

	err = IncreaseStock(ctx, stockRepo, movementRepo,
		warehouseID, productID, decimal.NewFromInt(6),
		warehouse.MovementTypeEntry, document.DocTypeEntryNote, documentID, actor)
	require.NoError(t, err)

	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, recorded)
	assert.True(t, recorded.QuantityBefore.Equal(decimal.NewFromInt(4)))
	assert.True(t, recorded.QuantityAfter.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, warehouse.MovementTypeEntry, recorded.Type)
	assert.Equal(t, documentID, recorded.DocumentID)
	assert.Equal(t, actor.ID, recorded.ActorID)
}

func TestDecreaseStock_InsufficientLeavesNoTrace(t *testing.T) {
	stockRepo := new(MockStockRepository)
	movementRepo := new(MockMovementRepository)
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()

	stock, err := warehouse.NewStock(warehouseID, productID)
	require.NoError(t, err)
	require.NoError(t, stock.Increase(decimal.NewFromInt(2)))

	stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)

	err = DecreaseStock(ctx, stockRepo, movementRepo,
		warehouseID, productID, decimal.NewFromInt(5),
		warehouse.MovementTypeExit, document.DocTypeExitNote, uuid.New(),
		shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper))
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(2)))
	stockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	movementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDecreaseStock(t *testing.T) {
	stockRepo := new(MockStockRepository)
	movementRepo := new(MockMovementRepository)
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()

	stock, err := warehouse.NewStock(warehouseID, productID)
	require.NoError(t, err)
	require.NoError(t, stock.Increase(decimal.NewFromInt(8)))

	stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)
	stockRepo.On("Save", ctx, stock).Return(nil)
	movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).Return(nil)

	err = DecreaseStock(ctx, stockRepo, movementRepo,
		warehouseID, productID, decimal.NewFromInt(8),
		warehouse.MovementTypeScrap, document.DocTypeScrapNote, uuid.New(),
		shared.NewActor(uuid.New(), shared.RoleManager))
	require.NoError(t, err)

	assert.True(t, stock.Quantity.IsZero(), "draining to exactly zero is allowed")
}
