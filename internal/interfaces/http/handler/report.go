package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	noteapp "github.com/wms/backend/internal/application/note"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/interfaces/http/middleware"
)

// ReportHandler handles scrap notes and installation reports. Both follow
// the same shape: a keeper drafts them, a manager decides, and only an
// approval touches the ledger.
type ReportHandler struct {
	BaseHandler
	reportService *noteapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *noteapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers scrap note and installation report routes on an
// authenticated group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	scrap := rg.Group("/scrap-notes")
	{
		scrap.GET("/:id", h.GetScrapNote)
		scrap.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.CreateScrapNote)
		scrap.POST("/:id/approve", middleware.RequireRole(shared.RoleManager), h.ApproveScrapNote)
		scrap.POST("/:id/reject", middleware.RequireRole(shared.RoleManager), h.RejectScrapNote)
	}
	installation := rg.Group("/installation-reports")
	{
		installation.GET("/:id", h.GetInstallationReport)
		installation.POST("", middleware.RequireRole(shared.RoleWarehouseKeeper), h.CreateInstallationReport)
		installation.POST("/:id/approve", middleware.RequireRole(shared.RoleManager), h.ApproveInstallationReport)
		installation.POST("/:id/reject", middleware.RequireRole(shared.RoleManager), h.RejectInstallationReport)
	}
	rg.GET("/warehouses/:id/scrap-notes", h.ListScrapNotesByWarehouse)
	rg.GET("/warehouses/:id/installation-reports", h.ListInstallationReportsByWarehouse)
}

// ScrapLine is one scrapped product line
type ScrapLine struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Reason    string  `json:"reason" binding:"max=2000"`
}

// CreateScrapNoteRequest is the request body for scrap note creation
type CreateScrapNoteRequest struct {
	WarehouseID string      `json:"warehouse_id" binding:"required,uuid"`
	Items       []ScrapLine `json:"items" binding:"required,min=1,dive"`
}

// InstallationLine is one installed product line
type InstallationLine struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Source    string  `json:"source" binding:"required,oneof=stock purchase"`
}

// CreateInstallationReportRequest is the request body for report creation
type CreateInstallationReportRequest struct {
	WarehouseID string             `json:"warehouse_id" binding:"required,uuid"`
	Site        string             `json:"site" binding:"max=500"`
	Items       []InstallationLine `json:"items" binding:"required,min=1,dive"`
}

// CreateScrapNote drafts a scrap note pending manager approval
func (h *ReportHandler) CreateScrapNote(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateScrapNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := noteapp.CreateScrapNoteInput{WarehouseID: uuid.MustParse(req.WarehouseID)}
	for _, line := range req.Items {
		input.Items = append(input.Items, noteapp.ScrapLineInput{
			ProductID: uuid.MustParse(line.ProductID),
			Quantity:  toDecimal(line.Quantity),
			Reason:    line.Reason,
		})
	}

	note, err := h.reportService.CreateScrapNote(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, note)
}

// ApproveScrapNote approves the scrap note and books the quantities out
func (h *ReportHandler) ApproveScrapNote(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	note, err := h.reportService.ApproveScrapNote(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// RejectScrapNote declines the scrap note without touching the ledger
func (h *ReportHandler) RejectScrapNote(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	note, err := h.reportService.RejectScrapNote(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// GetScrapNote returns one scrap note
func (h *ReportHandler) GetScrapNote(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	note, err := h.reportService.GetScrapNote(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// ListScrapNotesByWarehouse returns the scrap notes of a warehouse
func (h *ReportHandler) ListScrapNotesByWarehouse(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
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

	notes, err := h.reportService.ListScrapNotesByWarehouse(c.Request.Context(), warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}

// CreateInstallationReport drafts an installation report pending approval
func (h *ReportHandler) CreateInstallationReport(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateInstallationReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := noteapp.CreateInstallationReportInput{
		WarehouseID: uuid.MustParse(req.WarehouseID),
		Site:        req.Site,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, noteapp.InstallationLineInput{
			ProductID: uuid.MustParse(line.ProductID),
			Quantity:  toDecimal(line.Quantity),
			Source:    line.Source,
		})
	}

	report, err := h.reportService.CreateInstallationReport(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, report)
}

// ApproveInstallationReport approves the report; stock-sourced lines are
// booked out of the ledger
func (h *ReportHandler) ApproveInstallationReport(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	report, err := h.reportService.ApproveInstallationReport(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// RejectInstallationReport declines the report without touching the ledger
func (h *ReportHandler) RejectInstallationReport(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	report, err := h.reportService.RejectInstallationReport(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// GetInstallationReport returns one installation report
func (h *ReportHandler) GetInstallationReport(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetInstallationReport(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// ListInstallationReportsByWarehouse returns the reports of a warehouse
func (h *ReportHandler) ListInstallationReportsByWarehouse(c *gin.Context) {
	warehouseID, ok := h.pathID(c)
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

	reports, err := h.reportService.ListInstallationReportsByWarehouse(c.Request.Context(), warehouseID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reports)
}
