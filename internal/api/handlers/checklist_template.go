package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChecklistTemplateHandler manages county/permit type checklist templates
type ChecklistTemplateHandler struct {
	templates service.ChecklistTemplateServiceInterface
}

// NewChecklistTemplateHandler creates a new checklist template handler
func NewChecklistTemplateHandler(templates service.ChecklistTemplateServiceInterface) *ChecklistTemplateHandler {
	return &ChecklistTemplateHandler{templates: templates}
}

// GetOptions handles GET /api/checklist-templates/options
// @Summary Supported counties and permit types
// @Tags checklist-templates
// @Produce json
// @Success 200 {object} service.ChecklistOptionsResponse
// @Security BearerAuth
// @Router /checklist-templates/options [get]
func (h *ChecklistTemplateHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.templates.Options())
}

// ListTemplates handles GET /api/checklist-templates
// @Summary List stored checklist templates
// @Tags checklist-templates
// @Produce json
// @Success 200 {array} models.ChecklistTemplate
// @Security BearerAuth
// @Router /checklist-templates [get]
func (h *ChecklistTemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch checklist templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// ResolveTemplate handles POST /api/checklist-templates
// @Summary Get or create the template for a county and permit type
// @Description Creates the template from the built-in defaults on first use
// @Tags checklist-templates
// @Accept json
// @Produce json
// @Param template body service.ResolveTemplateRequest true "County and permit type"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /checklist-templates [post]
func (h *ChecklistTemplateHandler) ResolveTemplate(c *gin.Context) {
	var req service.ResolveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	template, err := h.templates.Resolve(c.Request.Context(), req.County, req.PermitType)
	if err != nil {
		respondError(c, err, "Failed to resolve checklist template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// GetTemplate handles GET /api/checklist-templates/:id
// @Summary Get a checklist template
// @Tags checklist-templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 404 {object} ErrorResponse "Checklist template not found"
// @Security BearerAuth
// @Router /checklist-templates/{id} [get]
func (h *ChecklistTemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	template, err := h.templates.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch checklist template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// AddItem handles POST /api/checklist-templates/:id/items
// @Summary Add a custom item to a template
// @Tags checklist-templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param item body service.AddChecklistItemRequest true "Item"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Item already exists"
// @Security BearerAuth
// @Router /checklist-templates/{id}/items [post]
func (h *ChecklistTemplateHandler) AddItem(c *gin.Context) {
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	var req service.AddChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	template, err := h.templates.AddCustomItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to add checklist item")
		return
	}
	c.JSON(http.StatusOK, template)
}

// RemoveItem handles DELETE /api/checklist-templates/:id/items/:itemId
// @Summary Remove a custom item from a template
// @Description Default items cannot be removed
// @Tags checklist-templates
// @Produce json
// @Param id path int true "Template ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 400 {object} ErrorResponse "Default item"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /checklist-templates/{id}/items/{itemId} [delete]
func (h *ChecklistTemplateHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId", "item")
	if !ok {
		return
	}

	template, err := h.templates.RemoveCustomItem(c.Request.Context(), id, itemID)
	if err != nil {
		respondError(c, err, "Failed to remove checklist item")
		return
	}
	c.JSON(http.StatusOK, template)
}

// ResetTemplate handles POST /api/checklist-templates/:id/reset
// @Summary Drop custom items and restore the default items
// @Tags checklist-templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 404 {object} ErrorResponse "Checklist template not found"
// @Security BearerAuth
// @Router /checklist-templates/{id}/reset [post]
func (h *ChecklistTemplateHandler) ResetTemplate(c *gin.Context) {
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	template, err := h.templates.ResetToDefault(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to reset checklist template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// ExportTemplate handles GET /api/checklist-templates/:id/export
// @Summary Download a template as JSON
// @Tags checklist-templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} service.ChecklistExport
// @Failure 404 {object} ErrorResponse "Checklist template not found"
// @Security BearerAuth
// @Router /checklist-templates/{id}/export [get]
func (h *ChecklistTemplateHandler) ExportTemplate(c *gin.Context) {
	id, ok := parseID(c, "id", "template")
	if !ok {
		return
	}

	export, err := h.templates.Export(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to export checklist template")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName()+`"`)
	c.JSON(http.StatusOK, export)
}

// ImportTemplate handles POST /api/checklist-templates/import
// @Summary Merge an exported template
// @Description Custom items from the document are added to the target template; duplicates are skipped
// @Tags checklist-templates
// @Accept json
// @Produce json
// @Param export body service.ChecklistExport true "Exported template"
// @Success 200 {object} models.ChecklistTemplate
// @Failure 400 {object} ErrorResponse "Invalid export document"
// @Security BearerAuth
// @Router /checklist-templates/import [post]
func (h *ChecklistTemplateHandler) ImportTemplate(c *gin.Context) {
	var export service.ChecklistExport
	if err := c.ShouldBindJSON(&export); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	template, err := h.templates.Import(c.Request.Context(), &export)
	if err != nil {
		respondError(c, err, "Failed to import checklist template")
		return
	}
	c.JSON(http.StatusOK, template)
}
