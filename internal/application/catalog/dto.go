package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/catalog"
)

// CreateProductInput carries the fields for product creation
type CreateProductInput struct {
	Name        string
	Code        string
	Unit        string
	Consumable  bool
	Description string
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Unit        string    `json:"unit"`
	Consumable  bool      `json:"consumable"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToProductResponse converts a Product aggregate to its response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Unit:        p.Unit,
		Consumable:  p.Consumable,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses converts a slice of Product aggregates
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}
