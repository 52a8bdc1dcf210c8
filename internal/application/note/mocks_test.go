package note

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

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

// MockSequenceRepository is a mock implementation of warehouse.DocumentSequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextValue(ctx context.Context, documentType string, year int) (int64, error) {
	args := m.Called(ctx, documentType, year)
	return args.Get(0).(int64), args.Error(1)
}

// MockEntryNoteRepository is a mock implementation of document.EntryNoteRepository
type MockEntryNoteRepository struct {
	mock.Mock
}

func (m *MockEntryNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.EntryNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.EntryNote), args.Error(1)
}

func (m *MockEntryNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.EntryNote, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]document.EntryNote), args.Error(1)
}

func (m *MockEntryNoteRepository) Save(ctx context.Context, note *document.EntryNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
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

// MockScrapNoteRepository is a mock implementation of document.ScrapNoteRepository
type MockScrapNoteRepository struct {
	mock.Mock
}

func (m *MockScrapNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.ScrapNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ScrapNote), args.Error(1)
}

func (m *MockScrapNoteRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.ScrapNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.ScrapNote), args.Error(1)
}

func (m *MockScrapNoteRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.ScrapNote, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]document.ScrapNote), args.Error(1)
}

func (m *MockScrapNoteRepository) Save(ctx context.Context, note *document.ScrapNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockInstallationReportRepository is a mock implementation of document.InstallationReportRepository
type MockInstallationReportRepository struct {
	mock.Mock
}

func (m *MockInstallationReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.InstallationReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.InstallationReport), args.Error(1)
}

func (m *MockInstallationReportRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.InstallationReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.InstallationReport), args.Error(1)
}

func (m *MockInstallationReportRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]document.InstallationReport, error) {
	args := m.Called(ctx, warehouseID, filter)
	return args.Get(0).([]document.InstallationReport), args.Error(1)
}

func (m *MockInstallationReportRepository) Save(ctx context.Context, report *document.InstallationReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// MockMaterialRequestRepository is a mock implementation of document.MaterialRequestRepository
type MockMaterialRequestRepository struct {
	mock.Mock
}

func (m *MockMaterialRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.MaterialRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*document.MaterialRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	args := m.Called(ctx, requesterID, filter)
	return args.Get(0).([]document.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) FindByManager(ctx context.Context, managerID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	args := m.Called(ctx, managerID, filter)
	return args.Get(0).([]document.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) FindByKeeper(ctx context.Context, keeperID uuid.UUID, filter shared.Filter) ([]document.MaterialRequest, error) {
	args := m.Called(ctx, keeperID, filter)
	return args.Get(0).([]document.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) Save(ctx context.Context, request *document.MaterialRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// capturingPublisher records every event it sees
type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

// noteFixture wires every note repository mock into one no-op scope
type noteFixture struct {
	stockRepo     *MockStockRepository
	movementRepo  *MockMovementRepository
	sequenceRepo  *MockSequenceRepository
	entryRepo     *MockEntryNoteRepository
	receivingRepo *MockReceivingNoteRepository
	exitRepo      *MockExitNoteRepository
	scrapRepo     *MockScrapNoteRepository
	reportRepo    *MockInstallationReportRepository
	requestRepo   *MockMaterialRequestRepository
	scope         *NoOpTransactionScope
}

func newNoteFixture() *noteFixture {
	f := &noteFixture{
		stockRepo:     new(MockStockRepository),
		movementRepo:  new(MockMovementRepository),
		sequenceRepo:  new(MockSequenceRepository),
		entryRepo:     new(MockEntryNoteRepository),
		receivingRepo: new(MockReceivingNoteRepository),
		exitRepo:      new(MockExitNoteRepository),
		scrapRepo:     new(MockScrapNoteRepository),
		reportRepo:    new(MockInstallationReportRepository),
		requestRepo:   new(MockMaterialRequestRepository),
	}
	f.scope = NewNoOpTransactionScope(
		f.stockRepo, f.movementRepo, f.sequenceRepo,
		f.entryRepo, f.receivingRepo, f.exitRepo,
		f.scrapRepo, f.reportRepo, f.requestRepo,
	)
	return f
}

// stubStock builds a stock row holding the given quantity
func stubStock(warehouseID, productID uuid.UUID, quantity int64) *warehouse.Stock {
	stock, err := warehouse.NewStock(warehouseID, productID)
	if err != nil {
		panic(err)
	}
	if quantity > 0 {
		if err := stock.Increase(decimal.NewFromInt(quantity)); err != nil {
			panic(err)
		}
	}
	return stock
}
