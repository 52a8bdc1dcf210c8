package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/wms/backend/internal/application/identity"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// UserHandler handles user administration API endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user routes on an authenticated group
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", middleware.RequireRole(shared.RoleManager), h.List)
		users.GET("/:id", h.Get)
		users.POST("", middleware.RequireRole(shared.RoleManager), h.Create)
		users.PUT("/:id/department", middleware.RequireRole(shared.RoleManager), h.AssignDepartment)
		users.PUT("/:id/warehouse", middleware.RequireRole(shared.RoleManager), h.AssignWarehouse)
		users.DELETE("/:id", middleware.RequireRole(shared.RoleManager), h.Deactivate)
	}
}

// CreateUserRequest is the request body for user creation
type CreateUserRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=120"`
	Email        string  `json:"email" binding:"required,email"`
	Role         string  `json:"role" binding:"required,oneof=user manager warehouse_keeper"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	WarehouseID  *string `json:"warehouse_id" binding:"omitempty,uuid"`
}

// AssignDepartmentRequest is the request body for department assignment
type AssignDepartmentRequest struct {
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

// AssignWarehouseRequest is the request body for warehouse assignment
type AssignWarehouseRequest struct {
	WarehouseID string `json:"warehouse_id" binding:"required,uuid"`
}

// Create registers a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.DepartmentID != nil {
		id := uuid.MustParse(*req.DepartmentID)
		input.DepartmentID = &id
	}
	if req.WarehouseID != nil {
		id := uuid.MustParse(*req.WarehouseID)
		input.WarehouseID = &id
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Get returns one user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// List returns users matching the filter
func (h *UserHandler) List(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if role := c.Query("role"); role != "" {
		filter.Filters["role"] = role
	}

	users, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// AssignDepartment moves a user into a department
func (h *UserHandler) AssignDepartment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.AssignDepartment(c.Request.Context(), id, uuid.MustParse(req.DepartmentID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// AssignWarehouse assigns a warehouse keeper to a warehouse
func (h *UserHandler) AssignWarehouse(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AssignWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.AssignWarehouse(c.Request.Context(), id, uuid.MustParse(req.WarehouseID))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Deactivate disables a user account
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
