package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	noteapp "github.com/wms/backend/internal/application/note"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// EntryNoteHandler handles entry note API endpoints
type EntryNoteHandler struct {
	BaseHandler
	noteService *noteapp.EntryNoteService
}

// NewEntryNoteHandler creates a new EntryNoteHandler
func NewEntryNoteHandler(noteService *noteapp.EntryNoteService) *EntryNoteHandler {
	return &EntryNoteHandler{noteService: noteService}
}

// RegisterRoutes registers entry note routes on an authenticated group
func (h *EntryNoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/entry-notes")
	{
		notes.GET("/:id", h.Get)
		notes.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Create)
	}
	rg.GET("/warehouses/:id/entry-notes", h.ListByWarehouse)
}

// NoteLine is one product line of an entry or exit note
type NoteLine struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateEntryNoteRequest is the request body for entry note issuance
type CreateEntryNoteRequest struct {
	WarehouseID string     `json:"warehouse_id" binding:"required,uuid"`
	Remark      string     `json:"remark" binding:"max=2000"`
	Items       []NoteLine `json:"items" binding:"required,min=1,dive"`
}

// Create issues an entry note and books its quantities into the ledger
func (h *EntryNoteHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateEntryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := noteapp.CreateEntryNoteInput{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		Remark:      req.Remark,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, noteapp.NoteLineInput{
			ProductID: uuid.MustParse(line.ProductID),
			Quantity:  toDecimal(line.Quantity),
		})
	}

	note, err := h.noteService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, note)
}

// Get returns one entry note
func (h *EntryNoteHandler) Get(c *gin.Context) {
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

// ListByWarehouse returns the entry notes of a warehouse
func (h *EntryNoteHandler) ListByWarehouse(c *gin.Context) {
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
