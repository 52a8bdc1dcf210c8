package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/shared"
)

// ProductService handles the product directory
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a product
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResponse, error) {
	product, err := catalog.NewProduct(input.Name, input.Code, input.Unit, input.Consumable)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := product.UpdateMetadata(product.Name, input.Description); err != nil {
			return nil, err
		}
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// UpdateMetadata updates a product's descriptive fields; unit, code and the
// consumable flag are fixed for life.
func (s *ProductService) UpdateMetadata(ctx context.Context, productID uuid.UUID, name, description string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := product.UpdateMetadata(name, description); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with a total count for pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize), nil
}
