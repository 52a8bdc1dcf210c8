package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/wms/backend/internal/application/identity"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// DepartmentHandler handles department administration API endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *identityapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *identityapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// RegisterRoutes registers department routes on an authenticated group
func (h *DepartmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	{
		departments.GET("", h.List)
		departments.GET("/:id", h.Get)
		departments.POST("", middleware.RequireRole(shared.RoleManager), h.Create)
		departments.PUT("/:id/manager", middleware.RequireRole(shared.RoleManager), h.AssignManager)
	}
}

// CreateDepartmentRequest is the request body for department creation
type CreateDepartmentRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=120"`
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
}

// AssignManagerRequest is the request body for manager assignment
type AssignManagerRequest struct {
	ManagerID string `json:"manager_id" binding:"required,uuid"`
}

// Create registers a new department
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CreateDepartmentInput{Name: req.Name}
	if req.ManagerID != nil {
		id := uuid.MustParse(*req.ManagerID)
		input.ManagerID = &id
	}

	department, err := h.departmentService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, department)
}

// Get returns one department
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// List returns departments matching the filter
func (h *DepartmentHandler) List(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	departments, err := h.departmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, departments)
}

// AssignManager sets the department's approving manager
func (h *DepartmentHandler) AssignManager(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.departmentService.AssignManager(c.Request.Context(), id, uuid.MustParse(req.ManagerID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}
