package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// StockHandler exposes the stock ledger and its movement history
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RegisterRoutes registers stock routes on an authenticated group
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warehouses/:id/stocks", h.ListByWarehouse)
	rg.GET("/warehouses/:id/stocks/:productId", h.Get)
	rg.GET("/products/:id/movements", h.ListMovementsByProduct)
	rg.GET("/documents/:type/:id/movements", h.ListMovementsByDocument)
}

// Get returns the ledger row of one product in one warehouse
func (h *StockHandler) Get(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
	if !ok {
		return
	}
	productID, ok := h.pathUUID(c, "productId")
	if !ok {
		return
	}

	stock, err := h.stockService.Get(c.Request.Context(), warehouseID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// ListByWarehouse returns the ledger rows of a warehouse
func (h *StockHandler) ListByWarehouse(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	stocks, err := h.stockService.ListByWarehouse(c.Request.Context(), warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stocks)
}

// ListMovementsByProduct returns the movement history of a product
func (h *StockHandler) ListMovementsByProduct(c *gin.Context) {
	productID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if warehouseID := c.Query("warehouse_id"); warehouseID != "" {
		filter.Filters["warehouse_id"] = warehouseID
	}
	if movementType := c.Query("type"); movementType != "" {
		filter.Filters["type"] = movementType
	}

	movements, err := h.stockService.ListMovementsByProduct(c.Request.Context(), productID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// ListMovementsByDocument returns the movements written by one document
func (h *StockHandler) ListMovementsByDocument(c *gin.Context) {
	documentID, ok := h.pathID(c)
	if !ok {
		return
	}
	documentType := c.Param("type")
	if documentType == "" {
		h.BadRequest(c, "Missing document type")
		return
	}

	movements, err := h.stockService.ListMovementsByDocument(c.Request.Context(), documentType, documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}
