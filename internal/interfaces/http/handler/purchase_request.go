package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	requestapp "github.com/wms/backend/internal/application/request"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// PurchaseRequestHandler handles the purchase request workflow
type PurchaseRequestHandler struct {
	BaseHandler
	requestService *requestapp.PurchaseRequestService
}

// NewPurchaseRequestHandler creates a new PurchaseRequestHandler
func NewPurchaseRequestHandler(requestService *requestapp.PurchaseRequestService) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{requestService: requestService}
}

// RegisterRoutes registers purchase request routes on an authenticated group
func (h *PurchaseRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/purchase-requests")
	{
		requests.GET("", h.List)
		requests.GET("/:id", h.Get)
		requests.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Create)
		requests.POST("/:id/approve", middleware.RequireRole(shared.RoleManager), h.Approve)
		requests.POST("/:id/reject", middleware.RequireRole(shared.RoleManager), h.Reject)
	}
}

// CreatePurchaseRequestRequest is the request body for purchase request creation
type CreatePurchaseRequestRequest struct {
	Reason string        `json:"reason" binding:"max=2000"`
	Items  []RequestLine `json:"items" binding:"required,min=1,dive"`
}

// Create submits a new purchase request for approval
func (h *PurchaseRequestHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := requestapp.CreatePurchaseRequestInput{Reason: req.Reason}
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

// Approve accepts the purchase request
func (h *PurchaseRequestHandler) Approve(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	request, err := h.requestService.Approve(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// Reject declines the purchase request
func (h *PurchaseRequestHandler) Reject(c *gin.Context) {
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

// Get returns one purchase request if the actor is a party to it
func (h *PurchaseRequestHandler) Get(c *gin.Context) {
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

// List returns the purchase requests visible to the actor in its role
func (h *PurchaseRequestHandler) List(c *gin.Context) {
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
