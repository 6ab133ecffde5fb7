package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubcontractorHandler handles the subcontractor registry
type SubcontractorHandler struct {
	subcontractors service.SubcontractorServiceInterface
}

// NewSubcontractorHandler creates a new subcontractor handler
func NewSubcontractorHandler(subcontractors service.SubcontractorServiceInterface) *SubcontractorHandler {
	return &SubcontractorHandler{subcontractors: subcontractors}
}

// ListSubcontractors handles GET /api/subcontractors
// @Summary List subcontractors
// @Tags subcontractors
// @Produce json
// @Success 200 {array} service.SubcontractorResponse
// @Security BearerAuth
// @Router /subcontractors [get]
func (h *SubcontractorHandler) ListSubcontractors(c *gin.Context) {
	subcontractors, err := h.subcontractors.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch subcontractors")
		return
	}
	c.JSON(http.StatusOK, subcontractors)
}

// GetSubcontractor handles GET /api/subcontractors/:id
// @Summary Get a subcontractor
// @Tags subcontractors
// @Produce json
// @Param id path int true "Subcontractor ID"
// @Success 200 {object} service.SubcontractorResponse
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Security BearerAuth
// @Router /subcontractors/{id} [get]
func (h *SubcontractorHandler) GetSubcontractor(c *gin.Context) {
	id, ok := parseID(c, "id", "subcontractor")
	if !ok {
		return
	}

	subcontractor, err := h.subcontractors.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch subcontractor")
		return
	}
	c.JSON(http.StatusOK, subcontractor)
}

// CreateSubcontractor handles POST /api/subcontractors
// @Summary Create a subcontractor
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param subcontractor body service.CreateSubcontractorRequest true "Subcontractor data"
// @Success 201 {object} models.Subcontractor
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /subcontractors [post]
func (h *SubcontractorHandler) CreateSubcontractor(c *gin.Context) {
	var req service.CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	subcontractor, err := h.subcontractors.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create subcontractor")
		return
	}
	c.JSON(http.StatusCreated, subcontractor)
}

// UpdateSubcontractor handles PUT /api/subcontractors/:id
// @Summary Update a subcontractor
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param id path int true "Subcontractor ID"
// @Param subcontractor body service.UpdateSubcontractorRequest true "Fields to change"
// @Success 200 {object} models.Subcontractor
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Security BearerAuth
// @Router /subcontractors/{id} [put]
func (h *SubcontractorHandler) UpdateSubcontractor(c *gin.Context) {
	id, ok := parseID(c, "id", "subcontractor")
	if !ok {
		return
	}

	var req service.UpdateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	subcontractor, err := h.subcontractors.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update subcontractor")
		return
	}
	c.JSON(http.StatusOK, subcontractor)
}

// DeleteSubcontractor handles DELETE /api/subcontractors/:id
// @Summary Delete a subcontractor
// @Description Also removes it from every package it was assigned to
// @Tags subcontractors
// @Produce json
// @Param id path int true "Subcontractor ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Security BearerAuth
// @Router /subcontractors/{id} [delete]
func (h *SubcontractorHandler) DeleteSubcontractor(c *gin.Context) {
	id, ok := parseID(c, "id", "subcontractor")
	if !ok {
		return
	}

	if err := h.subcontractors.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete subcontractor")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Subcontractor deleted successfully"})
}
