package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	noteapp "github.com/wms/backend/internal/application/note"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// ExitNoteHandler handles exit note API endpoints
type ExitNoteHandler struct {
	BaseHandler
	noteService *noteapp.ExitNoteService
}

// NewExitNoteHandler creates a new ExitNoteHandler
func NewExitNoteHandler(noteService *noteapp.ExitNoteService) *ExitNoteHandler {
	return &ExitNoteHandler{noteService: noteService}
}

// RegisterRoutes registers exit note routes on an authenticated group
func (h *ExitNoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/exit-notes")
	{
		notes.GET("/:id", h.Get)
		notes.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.Create)
	}
	rg.GET("/material-requests/:id/exit-note", h.GetByMaterialRequest)
	rg.GET("/warehouses/:id/exit-notes", h.ListByWarehouse)
}

// CreateExitNoteRequest fulfills an approved material request
type CreateExitNoteRequest struct {
	MaterialRequestID string     `json:"material_request_id" binding:"required,uuid"`
	Items             []NoteLine `json:"items" binding:"required,min=1,dive"`
}

// Create issues an exit note against an approved material request, books
// the quantities out of the ledger and marks the request delivered
func (h *ExitNoteHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateExitNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := noteapp.CreateExitNoteInput{
		MaterialRequestID: uuid.MustParse(req.MaterialRequestID),
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

// Get returns one exit note
func (h *ExitNoteHandler) Get(c *gin.Context) {
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

// GetByMaterialRequest returns the exit note fulfilling a material request
func (h *ExitNoteHandler) GetByMaterialRequest(c *gin.Context) {
	requestID, ok := h.pathID(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetByMaterialRequest(c.Request.Context(), requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// ListByWarehouse returns the exit notes of a warehouse
func (h *ExitNoteHandler) ListByWarehouse(c *gin.Context) {
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
