package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler attaches subcontractors to packages
type AssignmentHandler struct {
	assignments service.AssignmentServiceInterface
}

func NewAssignmentHandler(assignments service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// ListAssignments handles GET /api/permits/:id/subcontractors
// @Summary List subcontractors assigned to a package
// @Tags permits
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {array} models.PackageSubcontractor
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /permits/{id}/subcontractors [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	assignments, err := h.assignments.ListByPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch package subcontractors")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// AssignSubcontractor handles POST /api/permits/:id/subcontractors
// @Summary Assign a subcontractor to a package
// @Description The trade type defaults to the subcontractor's own
// @Tags permits
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param assignment body service.AssignSubcontractorRequest true "Assignment"
// @Success 201 {object} models.PackageSubcontractor
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Package or subcontractor not found"
// @Failure 409 {object} ErrorResponse "Already assigned"
// @Security BearerAuth
// @Router /permits/{id}/subcontractors [post]
func (h *AssignmentHandler) AssignSubcontractor(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var req service.AssignSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.assignments.Assign(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to assign subcontractor")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// RemoveSubcontractor handles DELETE /api/permits/:id/subcontractors/:subcontractorId
// @Summary Remove a subcontractor from a package
// @Tags permits
// @Produce json
// @Param id path int true "Package ID"
// @Param subcontractorId path int true "Subcontractor ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /permits/{id}/subcontractors/{subcontractorId} [delete]
func (h *AssignmentHandler) RemoveSubcontractor(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}
	subcontractorID, ok := parseID(c, "subcontractorId", "subcontractor")
	if !ok {
		return
	}

	if err := h.assignments.Remove(c.Request.Context(), id, subcontractorID); err != nil {
		respondError(c, err, "Failed to remove subcontractor")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Subcontractor removed from package"})
}
