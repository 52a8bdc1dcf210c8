package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// StockService exposes read access to the stock ledger and its audit trail.
// Mutations never go through here; they are side effects of note issuance,
// scrap approval and custody return processing.
type StockService struct {
	stockRepo    warehouse.StockRepository
	movementRepo warehouse.ProductMovementRepository
}

// NewStockService creates a new StockService
func NewStockService(
	stockRepo warehouse.StockRepository,
	movementRepo warehouse.ProductMovementRepository,
) *StockService {
	return &StockService{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
	}
}

// Get retrieves the ledger row for a warehouse-product combination
func (s *StockService) Get(ctx context.Context, warehouseID, productID uuid.UUID) (*StockResponse, error) {
	stock, err := s.stockRepo.FindByWarehouseAndProduct(ctx, warehouseID, productID)
	if err != nil {
		return nil, err
	}
	response := ToStockResponse(stock)
	return &response, nil
}

// ListByWarehouse retrieves the ledger rows of a warehouse
func (s *StockService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]StockResponse, error) {
	stocks, err := s.stockRepo.FindByWarehouse(ctx, warehouseID, filter)
	if err != nil {
		return nil, err
	}
	return ToStockResponses(stocks), nil
}

// ListMovementsByProduct retrieves the audit trail of a product
func (s *StockService) ListMovementsByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}

// ListMovementsByDocument retrieves the audit records written by one document
func (s *StockService) ListMovementsByDocument(ctx context.Context, documentType string, documentID uuid.UUID) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindByDocument(ctx, documentType, documentID)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}
