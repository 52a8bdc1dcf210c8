package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

func TestStockService_Get(t *testing.T) {
	stockRepo := new(MockStockRepository)
	service := NewStockService(stockRepo, new(MockMovementRepository))
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()
	stock, err := warehouse.NewStock(warehouseID, productID)
	require.NoError(t, err)
	require.NoError(t, stock.Increase(decimal.NewFromInt(12)))

	stockRepo.On("FindByWarehouseAndProduct", ctx, warehouseID, productID).Return(stock, nil)

	resp, err := service.Get(ctx, warehouseID, productID)
	require.NoError(t, err)
	assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(12)))

	missing := uuid.New()
	stockRepo.On("FindByWarehouseAndProduct", ctx, warehouseID, missing).Return(nil, shared.ErrNotFound)
	_, err = service.Get(ctx, warehouseID, missing)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStockService_ListByWarehouse(t *testing.T) {
	stockRepo := new(MockStockRepository)
	service := NewStockService(stockRepo, new(MockMovementRepository))
	ctx := context.Background()

	warehouseID := uuid.New()
	filter := shared.DefaultFilter()
	first, err := warehouse.NewStock(warehouseID, uuid.New())
	require.NoError(t, err)
	second, err := warehouse.NewStock(warehouseID, uuid.New())
	require.NoError(t, err)

	stockRepo.On("FindByWarehouse", ctx, warehouseID, filter).Return([]warehouse.Stock{*first, *second}, nil)

	resp, err := service.ListByWarehouse(ctx, warehouseID, filter)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestStockService_ListMovementsByDocument(t *testing.T) {
	movementRepo := new(MockMovementRepository)
	service := NewStockService(new(MockStockRepository), movementRepo)
	ctx := context.Background()

	documentID := uuid.New()
	actor := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	movement, err := warehouse.NewProductMovement(
		uuid.New(), uuid.New(), warehouse.MovementTypeEntry, document.DocTypeEntryNote, documentID,
		decimal.NewFromInt(5), decimal.Zero, decimal.NewFromInt(5), actor,
	)
	require.NoError(t, err)

	movementRepo.On("FindByDocument", ctx, document.DocTypeEntryNote, documentID).
		Return([]warehouse.ProductMovement{*movement}, nil)

	resp, err := service.ListMovementsByDocument(ctx, document.DocTypeEntryNote, documentID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "entry", resp[0].Type)
	assert.True(t, resp[0].QuantityAfter.Equal(decimal.NewFromInt(5)))
}
