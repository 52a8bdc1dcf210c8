package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/wms/backend/internal/application/catalog"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes on an authenticated group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper, shared.RoleManager), h.Create)
		products.PATCH("/:id", middleware.RequireRole(shared.RoleWarehouseKeeper, shared.RoleManager), h.Update)
	}
}

// CreateProductRequest is the request body for product creation
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Unit        string `json:"unit" binding:"required,min=1,max=30"`
	Consumable  bool   `json:"consumable"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateProductRequest is the request body for metadata updates
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// Create registers a new product in the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductInput{
		Name:        req.Name,
		Code:        req.Code,
		Unit:        req.Unit,
		Consumable:  req.Consumable,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update changes a product's name and description
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateMetadata(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns a page of products
func (h *ProductHandler) List(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if unit := c.Query("unit"); unit != "" {
		filter.Filters["unit"] = unit
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
