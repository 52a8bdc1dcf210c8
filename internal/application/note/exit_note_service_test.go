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

// newApprovedRequest builds a material request already approved for 10 units
func newApprovedRequest(t *testing.T, keeperID, warehouseID, productID uuid.UUID) *document.MaterialRequest {
	t.Helper()
	managerID := uuid.New()
	req, err := document.NewMaterialRequest(
		uuid.New(), managerID, keeperID, warehouseID, "",
		[]document.MaterialRequestLine{{ProductID: productID, Quantity: decimal.NewFromInt(10)}},
	)
	require.NoError(t, err)
	require.NoError(t, req.Approve(managerID))
	req.ClearDomainEvents()
	return req
}

func TestExitNoteService_Create(t *testing.T) {
	f := newNoteFixture()
	publisher := &capturingPublisher{}
	service := NewExitNoteService(f.scope, publisher, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	warehouseID := uuid.New()
	productID := uuid.New()
	req := newApprovedRequest(t, keeper.ID, warehouseID, productID)
	stock := stubStock(warehouseID, productID, 25)

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)
	f.sequenceRepo.On("NextValue", ctx, document.DocTypeExitNote, time.Now().Year()).Return(int64(4), nil)
	f.exitRepo.On("Save", ctx, mock.AnythingOfType("*document.ExitNote")).Return(nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)
	f.stockRepo.On("Save", ctx, stock).Return(nil)
	f.movementRepo.On("Create", ctx, mock.AnythingOfType("*warehouse.ProductMovement")).Return(nil)
	f.requestRepo.On("Save", ctx, req).Return(nil)

	resp, err := service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "(1/4)", resp.SerialNumber)
	assert.Equal(t, req.ID, resp.MaterialRequestID)
	assert.Equal(t, document.MaterialRequestStatusDelivered, req.Status)
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(15)))
	assert.NotEmpty(t, publisher.events, "delivery should notify the requester")
}

func TestExitNoteService_Create_WrongKeeper(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	req := newApprovedRequest(t, uuid.New(), uuid.New(), uuid.New())
	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)

	_, err := service.Create(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)
	f.exitRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExitNoteService_Create_PendingRequest(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	productID := uuid.New()
	req, err := document.NewMaterialRequest(
		uuid.New(), uuid.New(), keeper.ID, uuid.New(), "",
		[]document.MaterialRequestLine{{ProductID: productID, Quantity: decimal.NewFromInt(5)}},
	)
	require.NoError(t, err)

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)

	_, err = service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestExitNoteService_Create_ExceedsApproved(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	productID := uuid.New()
	req := newApprovedRequest(t, keeper.ID, uuid.New(), productID)

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)

	_, err := service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(11)}},
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientApprovedQuantity)
}

func TestExitNoteService_Create_SplitLinesForOneProduct(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	productID := uuid.New()
	req := newApprovedRequest(t, keeper.ID, uuid.New(), productID)

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)

	// Two lines of 6 against an approval of 10 would each pass a per-line
	// check while draining 12 in sum.
	_, err := service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items: []NoteLineInput{
			{ProductID: productID, Quantity: decimal.NewFromInt(6)},
			{ProductID: productID, Quantity: decimal.NewFromInt(6)},
		},
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_PRODUCT", domainErr.Code)
	assert.Equal(t, document.MaterialRequestStatusApproved, req.Status)
	f.stockRepo.AssertNotCalled(t, "GetOrCreateForUpdate", mock.Anything, mock.Anything, mock.Anything)
	f.exitRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExitNoteService_Create_ProductNotRequested(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	req := newApprovedRequest(t, keeper.ID, uuid.New(), uuid.New())

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)

	_, err := service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)}},
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_REQUESTED", domainErr.Code)
}

func TestExitNoteService_Create_InsufficientStock(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	warehouseID := uuid.New()
	productID := uuid.New()
	req := newApprovedRequest(t, keeper.ID, warehouseID, productID)
	stock := stubStock(warehouseID, productID, 3)

	f.requestRepo.On("FindByIDForUpdate", ctx, req.ID).Return(req, nil)
	f.sequenceRepo.On("NextValue", ctx, document.DocTypeExitNote, time.Now().Year()).Return(int64(1), nil)
	f.exitRepo.On("Save", ctx, mock.AnythingOfType("*document.ExitNote")).Return(nil)
	f.stockRepo.On("GetOrCreateForUpdate", ctx, warehouseID, productID).Return(stock, nil)

	_, err := service.Create(ctx, keeper, CreateExitNoteInput{
		MaterialRequestID: req.ID,
		Items:             []NoteLineInput{{ProductID: productID, Quantity: decimal.NewFromInt(10)}},
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
}

func TestExitNoteService_GetByMaterialRequest(t *testing.T) {
	f := newNoteFixture()
	service := NewExitNoteService(f.scope, nil, zap.NewNop())
	ctx := context.Background()

	requestID := uuid.New()
	note, err := document.NewExitNote("(1/9)", uuid.New(), requestID, uuid.New(),
		[]document.NoteLine{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(2)}})
	require.NoError(t, err)

	f.exitRepo.On("FindByMaterialRequest", ctx, requestID).Return(note, nil)

	resp, err := service.GetByMaterialRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, resp.MaterialRequestID)
}
