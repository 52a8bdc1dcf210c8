package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// LocationHandler handles storage location API endpoints
type LocationHandler struct {
	BaseHandler
	locationService *inventoryapp.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService *inventoryapp.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// RegisterRoutes registers location routes on an authenticated group
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	locations := rg.Group("/locations")
	{
		locations.GET("/:id", h.Get)
		locations.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper, shared.RoleManager), h.Create)
		locations.GET("/available", middleware.RequireRole(shared.RoleWarehouseKeeper), h.FindAvailable)
		locations.POST("/assign", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Assign)
		locations.POST("/withdraw", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Withdraw)
	}
	rg.GET("/warehouses/:id/locations", h.ListByWarehouse)
}

// CreateLocationRequest is the request body for location creation
type CreateLocationRequest struct {
	WarehouseID      string  `json:"warehouse_id" binding:"required,uuid"`
	Name             string  `json:"name" binding:"required,min=1,max=120"`
	CapacityUnits    float64 `json:"capacity_units" binding:"required,gt=0"`
	CapacityUnitType string  `json:"capacity_unit_type" binding:"required,min=1,max=30"`
}

// FindAvailableRequest narrows the search for locations able to hold a
// pending placement
type FindAvailableRequest struct {
	WarehouseID         string  `form:"warehouse_id" binding:"required,uuid"`
	ProductID           string  `form:"product_id" binding:"required,uuid"`
	Quantity            float64 `form:"quantity" binding:"required,gt=0"`
	PreferredLocationID *string `form:"preferred_location_id" binding:"omitempty,uuid"`
}

// AssignLocationRequest places part of a receiving note item into a location
type AssignLocationRequest struct {
	ReceivingNoteItemID string  `json:"receiving_note_item_id" binding:"required,uuid"`
	LocationID          string  `json:"location_id" binding:"required,uuid"`
	Quantity            float64 `json:"quantity" binding:"required,gt=0"`
}

// WithdrawLocationRequest removes a placed quantity from a location
type WithdrawLocationRequest struct {
	ProductID  string  `json:"product_id" binding:"required,uuid"`
	LocationID string  `json:"location_id" binding:"required,uuid"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// Create registers a new storage location
func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), inventoryapp.CreateLocationInput{
		WarehouseID:      uuid.MustParse(req.WarehouseID),
		Name:             req.Name,
		CapacityUnits:    toDecimal(req.CapacityUnits),
		CapacityUnitType: req.CapacityUnitType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, location)
}

// Get returns one location
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	location, err := h.locationService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}

// ListByWarehouse returns the locations of a warehouse
func (h *LocationHandler) ListByWarehouse(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	locations, err := h.locationService.ListByWarehouse(c.Request.Context(), warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, locations)
}

// FindAvailable suggests locations with enough remaining capacity for a
// placement, best fit first
func (h *LocationHandler) FindAvailable(c *gin.Context) {
	var req FindAvailableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := inventoryapp.FindAvailableInput{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		ProductID:   uuid.MustParse(req.ProductID),
		Quantity:    toDecimal(req.Quantity),
	}
	if req.PreferredLocationID != nil {
		id := uuid.MustParse(*req.PreferredLocationID)
		input.PreferredLocationID = &id
	}

	locations, err := h.locationService.FindAvailable(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, locations)
}

// Assign places a received quantity into a location
func (h *LocationHandler) Assign(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req AssignLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Assign(c.Request.Context(), actor, inventoryapp.AssignLocationInput{
		ReceivingNoteItemID: uuid.MustParse(req.ReceivingNoteItemID),
		LocationID:          uuid.MustParse(req.LocationID),
		Quantity:            toDecimal(req.Quantity),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}

// Withdraw removes a placed quantity from a location
func (h *LocationHandler) Withdraw(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req WithdrawLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Withdraw(c.Request.Context(), actor, inventoryapp.WithdrawLocationInput{
		ProductID:  uuid.MustParse(req.ProductID),
		LocationID: uuid.MustParse(req.LocationID),
		Quantity:   toDecimal(req.Quantity),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}
