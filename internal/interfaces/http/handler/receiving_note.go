package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	noteapp "github.com/wms/backend/internal/application/note"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// ReceivingNoteHandler handles receiving note API endpoints
type ReceivingNoteHandler struct {
	BaseHandler
	noteService *noteapp.ReceivingNoteService
}

// NewReceivingNoteHandler creates a new ReceivingNoteHandler
func NewReceivingNoteHandler(noteService *noteapp.ReceivingNoteService) *ReceivingNoteHandler {
	return &ReceivingNoteHandler{noteService: noteService}
}

// RegisterRoutes registers receiving note routes on an authenticated group
func (h *ReceivingNoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/receiving-notes")
	{
		notes.GET("/:id", h.Get)
		notes.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Create)
	}
	rg.GET("/warehouses/:id/receiving-notes", h.ListByWarehouse)
}

// ReceivingLine is one received product line with its price
type ReceivingLine struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gte=0"`
}

// CreateReceivingNoteRequest is the request body for receiving note issuance
type CreateReceivingNoteRequest struct {
	WarehouseID string          `json:"warehouse_id" binding:"required,uuid"`
	SupplierRef string          `json:"supplier_ref" binding:"max=200"`
	Items       []ReceivingLine `json:"items" binding:"required,min=1,dive"`
}

// Create issues a receiving note, books the quantities into the ledger and
// leaves every line unassigned until it is placed into a location
func (h *ReceivingNoteHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateReceivingNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := noteapp.CreateReceivingNoteInput{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		SupplierRef: req.SupplierRef,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, noteapp.ReceivingLineInput{
			ProductID: uuid.MustParse(line.ProductID),
			Quantity:  toDecimal(line.Quantity),
			UnitPrice: toDecimal(line.UnitPrice),
		})
	}

	note, err := h.noteService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, note)
}

// Get returns one receiving note
func (h *ReceivingNoteHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	note, err := h.noteService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// ListByWarehouse returns the receiving notes of a warehouse
func (h *ReceivingNoteHandler) ListByWarehouse(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	notes, err := h.noteService.ListByWarehouse(c.Request.Context(), warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}
