package handler

import (
	"github.com/gin-gonic/gin"

	notificationapp "github.com/wms/backend/internal/application/notification"
)

// NotificationHandler exposes the actor's notification inbox
type NotificationHandler struct {
	BaseHandler
	notificationService *notificationapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notificationapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes registers notification routes on an authenticated group
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.CountUnread)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// List returns a page of the actor's notifications
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if unread := c.Query("unread"); unread == "true" {
		filter.Filters["unread"] = true
	}

	page, err := h.notificationService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// CountUnread returns the actor's unread notification count
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"count": count})
}

// MarkRead marks one of the actor's notifications as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
