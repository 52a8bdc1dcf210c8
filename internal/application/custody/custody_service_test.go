package custody

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// MockCustodyRepository is a mock implementation of custody.CustodyRepository
type MockCustodyRepository struct {
	mock.Mock
}

func (m *MockCustodyRepository) FindByID(ctx context.Context, id uuid.UUID) (*custody.Custody, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custody.Custody), args.Error(1)
}

func (m *MockCustodyRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*custody.CustodyItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custody.CustodyItem), args.Error(1)
}

func (m *MockCustodyRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]custody.Custody, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]custody.Custody), args.Error(1)
}

func (m *MockCustodyRepository) Save(ctx context.Context, c *custody.Custody) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockCustodyReturnRepository is a mock implementation of custody.CustodyReturnRepository
type MockCustodyReturnRepository struct {
	mock.Mock
}

func (m *MockCustodyReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*custody.CustodyReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custody.CustodyReturn), args.Error(1)
}

func (m *MockCustodyReturnRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*custody.CustodyReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*custody.CustodyReturn), args.Error(1)
}

func (m *MockCustodyReturnRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]custody.CustodyReturn, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]custody.CustodyReturn), args.Error(1)
}

func (m *MockCustodyReturnRepository) HasPendingReviewForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, custodyItemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustodyReturnRepository) SumAcceptedForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, custodyItemID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCustodyReturnRepository) Save(ctx context.Context, r *custody.CustodyReturn) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockExitNoteRepository is a mock implementation of document.ExitNoteRepository
type MockExitNoteRepository struct {
	mock.Mock
}

func (m *MockExitNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ExitNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ExitNote), args.Error(1)
}

func (m *MockExitNoteRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*document.ExitNoteItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ExitNoteItem), args.Error(1)
}

func (m *MockExitNoteRepository) FindByMaterialRequest(ctx context.Context, requestID uuid.UUID) (*document.ExitNote, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ExitNote), args.Error(1)
}

func (m *MockExitNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ExitNote, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]document.ExitNote), args.Error(1)
}

func (m *MockExitNoteRepository) Save(ctx context.Context, note *document.ExitNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockStockRepository is a mock implementation of warehouse.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Stock), args.Error(1)
}

func (m *MockStockRepository) FindForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Stock), args.Error(1)
}

func (m *MockStockRepository) GetOrCreate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Stock), args.Error(1)
}

func (m *MockStockRepository) GetOrCreateForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*warehouse.Stock, error) {
	args := m.Called(ctx, warehouseID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]warehouse.Stock, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]warehouse.Stock), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, stock *warehouse.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

// MockMovementRepository is a mock implementation of warehouse.ProductMovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *warehouse.ProductMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]warehouse.ProductMovement, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]warehouse.ProductMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByDocument(ctx context.Context, documentType string, documentID uuid.UUID) ([]warehouse.ProductMovement, error) {
	args := m.Called(ctx, documentType, documentID)
	return args.Get(0).([]warehouse.ProductMovement), args.Error(1)
}

type custodyFixture struct {
	custodyRepo  *MockCustodyRepository
	returnRepo   *MockCustodyReturnRepository
	exitRepo     *MockExitNoteRepository
	stockRepo    *MockStockRepository
	movementRepo *MockMovementRepository
	scope        *NoOpTransactionScope
}

func newCustodyFixture() *custodyFixture {
	f := &custodyFixture{
		custodyRepo:  new(MockCustodyRepository),
		returnRepo:   new(MockCustodyReturnRepository),
		exitRepo:     new(MockExitNoteRepository),
		stockRepo:    new(MockStockRepository),
		movementRepo: new(MockMovementRepository),
	}
	f.scope = NewNoOpTransactionScope(f.custodyRepo, f.returnRepo, f.stockRepo, f.movementRepo)
	return f
}

func TestCustodyService_Create(t *testing.T) {
	f := newCustodyFixture()
	service := NewCustodyService(f.exitRepo, f.scope, zap.NewNop())
	ctx := context.Background()

	keeper := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	userID := uuid.New()
	warehouseID := uuid.New()
	productID := uuid.New()

	note, err := document.NewExitNote("(1/1)", warehouseID, uuid.New(), keeper.ID,
		[]document.NoteLine{{ProductID: productID, Quantity: decimal.NewFromInt(3)}})
	require.NoError(t, err)
	item := &note.Items[0]

	f.exitRepo.On("FindItemByID", ctx, item.ID).Return(item, nil)
	f.exitRepo.On("FindByID", ctx, note.ID).Return(note, nil)
	f.custodyRepo.On("Save", ctx, mock.AnythingOfType("*custody.Custody")).Return(nil)

	resp, err := service.Create(ctx, keeper, CreateCustodyInput{
		UserID:          userID,
		Room:            "B-214",
		ExitNoteItemIDs: []uuid.UUID{item.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "B-214", resp.Room)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, item.ID, resp.Items[0].ExitNoteItemID)
	assert.Equal(t, warehouseID, resp.Items[0].WarehouseID)
	assert.True(t, resp.Items[0].Quantity.Equal(decimal.NewFromInt(3)),
		"the full exit note quantity goes on custody")

	// Custody is bookkeeping only.
	f.stockRepo.AssertNotCalled(t, "GetOrCreateForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustodyService_Create_EmptyItems(t *testing.T) {
	f := newCustodyFixture()
	service := NewCustodyService(f.exitRepo, f.scope, zap.NewNop())

	_, err := service.Create(context.Background(), shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), CreateCustodyInput{
		UserID: uuid.New(),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_ITEMS", domainErr.Code)
}

func TestCustodyService_Get_Visibility(t *testing.T) {
	f := newCustodyFixture()
	service := NewCustodyService(f.exitRepo, f.scope, zap.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	record, err := custody.NewCustody(userID, "", []custody.CustodyLine{
		{ExitNoteItemID: uuid.New(), ProductID: uuid.New(), WarehouseID: uuid.New(), Quantity: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	f.custodyRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	_, err = service.Get(ctx, shared.NewActor(userID, shared.RoleUser), record.ID)
	assert.NoError(t, err)

	_, err = service.Get(ctx, shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper), record.ID)
	assert.NoError(t, err, "keepers see every custody")

	_, err = service.Get(ctx, shared.NewActor(uuid.New(), shared.RoleUser), record.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestCustodyService_ListByUser(t *testing.T) {
	f := newCustodyFixture()
	service := NewCustodyService(f.exitRepo, f.scope, zap.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	filter := shared.DefaultFilter()
	f.custodyRepo.On("FindByUser", ctx, userID, filter).Return([]custody.Custody{}, nil)

	_, err := service.ListByUser(ctx, shared.NewActor(userID, shared.RoleUser), userID, filter)
	assert.NoError(t, err)

	_, err = service.ListByUser(ctx, shared.NewActor(uuid.New(), shared.RoleUser), userID, filter)
	assert.ErrorIs(t, err, shared.ErrForbidden, "users cannot browse another user's custodies")

	_, err = service.ListByUser(ctx, shared.NewActor(uuid.New(), shared.RoleManager), userID, filter)
	assert.NoError(t, err)
}
