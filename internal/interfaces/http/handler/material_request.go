package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	requestapp "github.com/wms/backend/internal/application/request"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// MaterialRequestHandler handles the material request workflow
type MaterialRequestHandler struct {
	BaseHandler
	requestService *requestapp.MaterialRequestService
}

// NewMaterialRequestHandler creates a new MaterialRequestHandler
func NewMaterialRequestHandler(requestService *requestapp.MaterialRequestService) *MaterialRequestHandler {
	return &MaterialRequestHandler{requestService: requestService}
}

// RegisterRoutes registers material request routes on an authenticated group
func (h *MaterialRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/material-requests")
	{
		requests.GET("", h.List)
		requests.GET("/:id", h.Get)
		requests.POST("", h.Create)
		requests.POST("/:id/approve", middleware.RequireRole(shared.RoleManager), h.Approve)
		requests.POST("/:id/reject", middleware.RequireRole(shared.RoleManager), h.Reject)
	}
}

// RequestLine is one requested product line
type RequestLine struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateMaterialRequestRequest is the request body for material request creation
type CreateMaterialRequestRequest struct {
	WarehouseID string        `json:"warehouse_id" binding:"required,uuid"`
	Reason      string        `json:"reason" binding:"max=2000"`
	Items       []RequestLine `json:"items" binding:"required,min=1,dive"`
}

// ApproveMaterialRequestRequest optionally trims per-item approved
// quantities. Items absent from the map keep their requested quantity.
type ApproveMaterialRequestRequest struct {
	Quantities map[string]float64 `json:"quantities"`
}

// Create submits a new material request for approval
func (h *MaterialRequestHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateMaterialRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := requestapp.CreateMaterialRequestInput{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		Reason:      req.Reason,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, requestapp.RequestLineInput{
			ProductID: uuid.MustParse(line.ProductID),
			Quantity:  toDecimal(line.Quantity),
		})
	}

	request, err := h.requestService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, request)
}

// Approve accepts the request, optionally with trimmed quantities
func (h *MaterialRequestHandler) Approve(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req ApproveMaterialRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	if len(req.Quantities) == 0 {
		request, err := h.requestService.Approve(c.Request.Context(), actor, id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, request)
		return
	}

	quantities := make(map[uuid.UUID]decimal.Decimal, len(req.Quantities))
	for itemID, qty := range req.Quantities {
		parsed, err := uuid.Parse(itemID)
		if err != nil {
			h.BadRequest(c, "Invalid item ID in quantities")
			return
		}
		quantities[parsed] = toDecimal(qty)
	}

	request, err := h.requestService.ApproveWithQuantities(c.Request.Context(), actor, requestapp.ApproveMaterialRequestInput{
		RequestID:  id,
		Quantities: quantities,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// Reject declines the request
func (h *MaterialRequestHandler) Reject(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	request, err := h.requestService.Reject(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// Get returns one material request if the actor is a party to it
func (h *MaterialRequestHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	request, err := h.requestService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// List returns the requests visible to the actor in its role
func (h *MaterialRequestHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	requests, err := h.requestService.ListForActor(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, requests)
}
