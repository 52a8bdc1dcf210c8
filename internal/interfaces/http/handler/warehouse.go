package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// WarehouseHandler handles warehouse API endpoints
type WarehouseHandler struct {
	BaseHandler
	warehouseService *inventoryapp.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouseService *inventoryapp.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// RegisterRoutes registers warehouse routes on an authenticated group
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	warehouses := rg.Group("/warehouses")
	{
		warehouses.GET("", h.List)
		warehouses.GET("/:id", h.Get)
		warehouses.POST("", middleware.RequireRole(shared.RoleManager), h.Create)
		warehouses.PUT("/:id/department", middleware.RequireRole(shared.RoleManager), h.AssignDepartment)
	}
}

// CreateWarehouseRequest is the request body for warehouse creation
type CreateWarehouseRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=120"`
	Address      string  `json:"address" binding:"max=500"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// Create registers a new warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := inventoryapp.CreateWarehouseInput{
		Name:    req.Name,
		Address: req.Address,
	}
	if req.DepartmentID != nil {
		id := uuid.MustParse(*req.DepartmentID)
		input.DepartmentID = &id
	}

	warehouse, err := h.warehouseService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, warehouse)
}

// Get returns one warehouse
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}

// List returns warehouses matching the filter
func (h *WarehouseHandler) List(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	warehouses, err := h.warehouseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouses)
}

// AssignDepartment binds the warehouse to a department
func (h *WarehouseHandler) AssignDepartment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	warehouse, err := h.warehouseService.AssignDepartment(c.Request.Context(), id, uuid.MustParse(req.DepartmentID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, warehouse)
}
