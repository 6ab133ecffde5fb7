package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler serves the per-package checklist
type ChecklistHandler struct {
	checklists service.PackageChecklistServiceInterface
}

func NewChecklistHandler(checklists service.PackageChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{checklists: checklists}
}

// GetChecklist handles GET /api/permits/:id/checklist
// @Summary Get the checklist of a package
// @Tags checklists
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.PackageChecklist
// @Failure 404 {object} ErrorResponse "Package checklist not found"
// @Security BearerAuth
// @Router /permits/{id}/checklist [get]
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	checklist, err := h.checklists.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// UpdateChecklist handles PUT /api/permits/:id/checklist
// @Summary Mark checklist items complete or incomplete
// @Description Completing an item stamps who and when; un-completing clears both
// @Tags checklists
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param items body service.UpdateChecklistRequest true "Item updates"
// @Success 200 {object} models.PackageChecklist
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Checklist or item not found"
// @Security BearerAuth
// @Router /permits/{id}/checklist [put]
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var req service.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	checklist, err := h.checklists.UpdateItems(c.Request.Context(), id, &req, actorName(c))
	if err != nil {
		respondError(c, err, "Failed to update checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}
