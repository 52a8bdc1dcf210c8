package note

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

func TestReceivingNoteService_Create(t *testing.T) {
	f := newNoteFixture()
	service := NewReceivingNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	warehouseID := uuid.New()
	cableID := uuid.New()
	switchID := uuid.New()
	cableStock := stubStock(warehouseID, cableID, 0)
	switchStock := stubStock(warehouseID, switchID, 5)

	f.sequenceRepo.On("NextValue", ctx, document.DocTypeReceivingNote, time.Now().Year()).Return(int64(2), nil)
	f.receivingRepo.On("Save", ctx, mock.AnythingOfType("*document.ReceivingNote")).Return(nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, cableID).Return(cableStock, nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, switchID).Return(switchStock, nil)
	f.stockRepo.On("Save", ctx, mock.AnythingOfType("*warehouse.Stock")).Return(nil)
	f.movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).Return(nil)

	resp, err := service.Create(ctx, keeper, CreateReceivingNoteInput{
		WarehouseID: warehouseID,
		SupplierRef: "PO-7731",
		Items: []ReceivingLineInput{
			{ProductID: cableID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(2.5)},
			{ProductID: switchID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "(1/2)", resp.SerialNumber)
	assert.Equal(t, "PO-7731", resp.SupplierRef)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(325)), "10x2.5 + 3x100")
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].UnassignedQuantity.Equal(decimal.NewFromInt(10)),
		"nothing is placed on a location yet")

	assert.True(t, cableStock.Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, switchStock.Quantity.Equal(decimal.NewFromInt(8)))
	f.movementRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestReceivingNoteService_Create_NegativePrice(t *testing.T) {
	f := newNoteFixture()
	service := NewReceivingNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	f.sequenceRepo.On("NextValue", ctx, document.DocTypeReceivingNote, time.Now().Year()).Return(int64(1), nil)

	_, err := service.Create(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), CreateReceivingNoteInput{
		WarehouseID: uuid.New(),
		Items: []ReceivingLineInput{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-5)},
		},
	})
	assert.Error(t, err)
	f.receivingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReceivingNoteService_Get(t *testing.T) {
	f := newNoteFixture()
	service := NewReceivingNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	note, err := document.NewReceivingNote("(1/8)", uuid.New(), uuid.New(), "",
		[]document.ReceivingLine{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(9)}})
	require.NoError(t, err)

	f.receivingRepo.On("FindByID", ctx, note.ID).Return(note, nil)

	resp, err := service.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(36)))
}

func TestReceivingNoteService_ListByWarehouse(t *testing.T) {
	f := newNoteFixture()
	service := NewReceivingNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	warehouseID := uuid.New()
	filter := shared.DefaultFilter()
	f.receivingRepo.On("FindByWarehouse", ctx, warehouseID, filter).Return([]document.ReceivingNote{}, nil)

	notes, err := service.ListByWarehouse(ctx, warehouseID, filter)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
