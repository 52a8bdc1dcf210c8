package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// WarehouseService handles warehouse directory operations
type WarehouseService struct {
	warehouseRepo warehouse.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo warehouse.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// Create creates a warehouse, optionally attached to a department
func (s *WarehouseService) Create(ctx context.Context, input CreateWarehouseInput) (*WarehouseResponse, error) {
	wh, err := warehouse.NewWarehouse(input.Name, input.Address)
	if err != nil {
		return nil, err
	}
	if input.DepartmentID != nil {
		if err := wh.AssignDepartment(*input.DepartmentID); err != nil {
			return nil, err
		}
	}
	if err := s.warehouseRepo.Save(ctx, wh); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}

// Get retrieves a warehouse by ID
func (s *WarehouseService) Get(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	wh, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}

// List retrieves warehouses
func (s *WarehouseService) List(ctx context.Context, filter shared.Filter) ([]WarehouseResponse, error) {
	warehouses, err := s.warehouseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToWarehouseResponses(warehouses), nil
}

// AssignDepartment attaches an existing warehouse to a department
func (s *WarehouseService) AssignDepartment(ctx context.Context, warehouseID, departmentID uuid.UUID) (*WarehouseResponse, error) {
	wh, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := wh.AssignDepartment(departmentID); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, wh); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}
