package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// MockWarehouseRepository is a mock implementation of warehouse.WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]warehouse.Warehouse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, wh *warehouse.Warehouse) error {
	args := m.Called(ctx, wh)
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

// MockLocationRepository is a mock implementation of warehouse.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*warehouse.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*warehouse.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAvailable(ctx context.Context, warehouseID uuid.UUID, unitType string, quantity decimal.Decimal) ([]warehouse.Location, error) {
	args := m.Called(ctx, warehouseID, unitType, quantity)
	return args.Get(0).([]warehouse.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]warehouse.Location, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]warehouse.Location), args.Error(1)
}

func (m *MockLocationRepository) Save(ctx context.Context, location *warehouse.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

// MockProductLocationRepository is a mock implementation of warehouse.ProductLocationRepository
type MockProductLocationRepository struct {
	mock.Mock
}

func (m *MockProductLocationRepository) FindByProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) (*warehouse.ProductLocation, error) {
	args := m.Called(ctx, productID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.ProductLocation), args.Error(1)
}

func (m *MockProductLocationRepository) GetOrCreateForUpdate(ctx context.Context, productID, locationID uuid.UUID) (*warehouse.ProductLocation, error) {
	args := m.Called(ctx, productID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.ProductLocation), args.Error(1)
}

func (m *MockProductLocationRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]warehouse.ProductLocation, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]warehouse.ProductLocation), args.Error(1)
}

func (m *MockProductLocationRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]warehouse.ProductLocation, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]warehouse.ProductLocation), args.Error(1)
}

func (m *MockProductLocationRepository) Save(ctx context.Context, placement *warehouse.ProductLocation) error {
	args := m.Called(ctx, placement)
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

// MockReceivingNoteRepository is a mock implementation of document.ReceivingNoteRepository
type MockReceivingNoteRepository struct {
	mock.Mock
}

func (m *MockReceivingNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ReceivingNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ReceivingNote), args.Error(1)
}

func (m *MockReceivingNoteRepository) FindItemForUpdate(ctx context.Context, itemID uuid.UUID) (*document.ReceivingNoteItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ReceivingNoteItem), args.Error(1)
}

func (m *MockReceivingNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ReceivingNote, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]document.ReceivingNote), args.Error(1)
}

func (m *MockReceivingNoteRepository) Save(ctx context.Context, note *document.ReceivingNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockReceivingNoteRepository) SaveItem(ctx context.Context, item *document.ReceivingNoteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
