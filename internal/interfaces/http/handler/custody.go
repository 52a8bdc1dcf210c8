package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	custodyapp "github.com/wms/backend/internal/application/custody"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// CustodyHandler handles custody records and custody returns
type CustodyHandler struct {
	BaseHandler
	custodyService *custodyapp.CustodyService
	returnService  *custodyapp.CustodyReturnService
}

// NewCustodyHandler creates a new CustodyHandler
func NewCustodyHandler(custodyService *custodyapp.CustodyService, returnService *custodyapp.CustodyReturnService) *CustodyHandler {
	return &CustodyHandler{
		custodyService: custodyService,
		returnService:  returnService,
	}
}

// RegisterRoutes registers custody routes on an authenticated group
func (h *CustodyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	custodies := rg.Group("/custodies")
	{
		custodies.GET("/:id", h.Get)
		custodies.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Create)
	}
	returns := rg.Group("/custody-returns")
	{
		returns.GET("/:id", h.GetReturn)
		returns.POST("", h.CreateReturn)
		returns.POST("/:id/items/:itemId/process", middleware.RequireRole(shared.RoleWarehouseKeeper), h.ProcessReturnItem)
	}
	rg.GET("/users/:id/custodies", h.ListByUser)
	rg.GET("/users/:id/custody-returns", h.ListReturnsByUser)
}

// CreateCustodyRequest hands exit note items to a user as a loan
type CreateCustodyRequest struct {
	UserID          string   `json:"user_id" binding:"required,uuid"`
	Room            string   `json:"room" binding:"max=200"`
	ExitNoteItemIDs []string `json:"exit_note_item_ids" binding:"required,min=1,dive,uuid"`
}

// ReturnLine is one claimed return against a custody item
type ReturnLine struct {
	CustodyItemID    string  `json:"custody_item_id" binding:"required,uuid"`
	ReturnedQuantity float64 `json:"returned_quantity" binding:"required,gt=0"`
}

// CreateReturnRequest carries the claimed items of a return batch
type CreateReturnRequest struct {
	Items []ReturnLine `json:"items" binding:"required,min=1,dive"`
}

// ProcessReturnItemRequest adjudicates one return item
type ProcessReturnItemRequest struct {
	Outcome          string  `json:"outcome" binding:"required,oneof=accepted rejected"`
	AcceptedQuantity float64 `json:"accepted_quantity" binding:"omitempty,gt=0"`
}

// Create opens a custody record over delivered exit note items
func (h *CustodyHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := custodyapp.CreateCustodyInput{
		UserID: uuid.MustParse(req.UserID),
		Room:   req.Room,
	}
	for _, itemID := range req.ExitNoteItemIDs {
		input.ExitNoteItemIDs = append(input.ExitNoteItemIDs, uuid.MustParse(itemID))
	}

	record, err := h.custodyService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Get returns one custody record if the actor may see it
func (h *CustodyHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.custodyService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ListByUser returns the custody records held by a user
func (h *CustodyHandler) ListByUser(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	userID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	records, err := h.custodyService.ListByUser(c.Request.Context(), actor, userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// CreateReturn submits a return claim over custody items
func (h *CustodyHandler) CreateReturn(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var input custodyapp.CreateReturnInput
	for _, line := range req.Items {
		input.Items = append(input.Items, custodyapp.ReturnLineInput{
			CustodyItemID:    uuid.MustParse(line.CustodyItemID),
			ReturnedQuantity: toDecimal(line.ReturnedQuantity),
		})
	}

	record, err := h.returnService.CreateReturn(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// ProcessReturnItem adjudicates one item of a return batch. Accepted
// quantities flow back into the source warehouse's ledger.
func (h *CustodyHandler) ProcessReturnItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	returnID, ok := h.pathID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathUUID(c, "itemId")
	if !ok {
		return
	}

	var req ProcessReturnItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.returnService.ProcessItem(c.Request.Context(), actor, custodyapp.ProcessReturnItemInput{
		ReturnID:         returnID,
		ItemID:           itemID,
		Outcome:          req.Outcome,
		AcceptedQuantity: toDecimal(req.AcceptedQuantity),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// GetReturn returns one return batch if the actor may see it
func (h *CustodyHandler) GetReturn(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.returnService.GetReturn(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ListReturnsByUser returns the return batches submitted by a user
func (h *CustodyHandler) ListReturnsByUser(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	userID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	records, err := h.returnService.ListByUser(c.Request.Context(), actor, userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}
