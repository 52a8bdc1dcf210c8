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
	"github.com/wms/backend/internal/domain/warehouse"
)

func TestEntryNoteService_Create(t *testing.T) {
	f := newNoteFixture()
	service := NewEntryNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	warehouseID := uuid.New()
	productID := uuid.New()
	stock := stubStock(warehouseID, productID, 0)

	f.sequenceRepo.On("NextValue", ctx, document.DocTypeEntryNote, time.Now().Year()).Return(int64(1), nil)
	f.entryRepo.On("Save", ctx, mock.AnythingOfType("*document.EntryNote")).Return(nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)
	f.stockRepo.On("Save", ctx, stock).Return(nil)
	f.movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).Return(nil)

	resp, err := service.Create(ctx, keeper, CreateEntryNoteInput{
		WarehouseID: warehouseID,
		Remark:      "returned tools",
		Items:       []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(7)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "(1/1)", resp.SerialNumber)
	assert.Equal(t, warehouseID, resp.WarehouseID)
	assert.Equal(t, keeper.ID, resp.CreatedByID)
	require.Len(t, resp.Items, 1)

	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(7)), "ledger should carry the entered quantity")
	f.movementRepo.AssertNumberOfCalls(t, "Create", 1)
	f.entryRepo.AssertExpectations(t)
}

func TestEntryNoteService_Create_EmptyItems(t *testing.T) {
	f := newNoteFixture()
	service := NewEntryNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	f.sequenceRepo.On("NextValue", ctx, document.DocTypeEntryNote, time.Now().Year()).Return(int64(1), nil)

	_, err := service.Create(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), CreateEntryNoteInput{
		WarehouseID: uuid.New(),
	})
	assert.Error(t, err)
	f.entryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEntryNoteService_Get(t *testing.T) {
	f := newNoteFixture()
	service := NewEntryNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	note, err := document.NewEntryNote("(1/3)", uuid.New(), uuid.New(), "",
		[]document.NoteLine{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)}})
	require.NoError(t, err)

	f.entryRepo.On("FindByID", ctx, note.ID).Return(note, nil)

	resp, err := service.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "(1/3)", resp.SerialNumber)

	missing := uuid.New()
	f.entryRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
	_, err = service.Get(ctx, missing)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEntryNoteService_ListByWarehouse(t *testing.T) {
	f := newNoteFixture()
	service := NewEntryNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	warehouseID := uuid.New()
	filter := shared.DefaultFilter()
	f.entryRepo.On("FindByWarehouse", ctx, warehouseID, filter).Return([]document.EntryNote{}, nil)

	notes, err := service.ListByWarehouse(ctx, warehouseID, filter)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestEntryNoteService_Create_SerialFolders(t *testing.T) {
	f := newNoteFixture()
	service := NewEntryNoteService(f.scope, zap.NewNop())
	ctx := context.Background()

	warehouseID := uuid.New()
	productID := uuid.New()
	stock := stubStock(warehouseID, productID, 0)

	// Counter 51 rolls into the second folder of the year.
	f.sequenceRepo.On("NextValue", ctx, document.DocTypeEntryNote, time.Now().Year()).Return(int64(51), nil)
	f.entryRepo.On("Save", ctx, mock.AnythingOfType("*document.EntryNote")).Return(nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)
	f.stockRepo.On("Save", ctx, stock).Return(nil)
	f.movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).Return(nil)

	resp, err := service.Create(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), CreateEntryNoteInput{
		WarehouseID: warehouseID,
		Items:       []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, warehouse.SerialNumber(51), resp.SerialNumber)
	assert.Equal(t, "(2/1)", resp.SerialNumber)
}
