package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractorHandler handles HTTP requests for contractors
type ContractorHandler struct {
	contractors service.ContractorServiceInterface
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractors service.ContractorServiceInterface) *ContractorHandler {
	return &ContractorHandler{contractors: contractors}
}

// ListContractors handles GET /api/contractors
// @Summary List contractors
// @Description Returns contractors ordered by company name, each with a summary of its packages
// @Tags contractors
// @Produce json
// @Success 200 {array} service.ContractorResponse
// @Failure 500 {object} ErrorResponse "Failed to fetch contractors"
// @Security BearerAuth
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	contractors, err := h.contractors.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch contractors")
		return
	}
	c.JSON(http.StatusOK, contractors)
}

// GetContractor handles GET /api/contractors/:id
// @Summary Get a contractor
// @Tags contractors
// @Produce json
// @Param id path int true "Contractor ID"
// @Success 200 {object} service.ContractorResponse
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [get]
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	id, ok := parseID(c, "id", "contractor")
	if !ok {
		return
	}

	contractor, err := h.contractors.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch contractor")
		return
	}
	c.JSON(http.StatusOK, contractor)
}

// CreateContractor handles POST /api/contractors
// @Summary Create a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param contractor body service.CreateContractorRequest true "Contractor data"
// @Success 201 {object} models.Contractor
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "License number already in use"
// @Security BearerAuth
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req service.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	contractor, err := h.contractors.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create contractor")
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

// UpdateContractor handles PUT /api/contractors/:id
// @Summary Update a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path int true "Contractor ID"
// @Param contractor body service.UpdateContractorRequest true "Fields to change"
// @Success 200 {object} models.Contractor
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Failure 409 {object} ErrorResponse "License number already in use"
// @Security BearerAuth
// @Router /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, ok := parseID(c, "id", "contractor")
	if !ok {
		return
	}

	var req service.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	contractor, err := h.contractors.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update contractor")
		return
	}
	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor handles DELETE /api/contractors/:id
// @Summary Delete a contractor
// @Description Refused while packages are still assigned; the response lists them
// @Tags contractors
// @Produce json
// @Param id path int true "Contractor ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ContractorInUseResponse "Contractor has packages"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	id, ok := parseID(c, "id", "contractor")
	if !ok {
		return
	}

	if err := h.contractors.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete contractor")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Contractor deleted successfully"})
}

// ReassignPackages handles PUT /api/contractors/:id/reassign-packages
// @Summary Move all packages to another contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path int true "Current contractor ID"
// @Param target body service.ReassignPackagesRequest true "Target contractor"
// @Success 200 {object} service.ReassignPackagesResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id}/reassign-packages [put]
func (h *ContractorHandler) ReassignPackages(c *gin.Context) {
	id, ok := parseID(c, "id", "contractor")
	if !ok {
		return
	}

	var req service.ReassignPackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.contractors.ReassignPackages(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to reassign packages")
		return
	}
	c.JSON(http.StatusOK, resp)
}
