package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for permit packages
type PackageHandler struct {
	packages service.PackageServiceInterface
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packages service.PackageServiceInterface) *PackageHandler {
	return &PackageHandler{packages: packages}
}

// ListPackages handles GET /api/permits
// @Summary List permit packages
// @Description Returns every package with documents, contractor, subcontractors and checklist, newest first
// @Tags permits
// @Produce json
// @Success 200 {array} models.Package
// @Failure 500 {object} ErrorResponse "Failed to fetch packages"
// @Security BearerAuth
// @Router /permits [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packages.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch packages")
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetPackage handles GET /api/permits/:id
// @Summary Get a permit package
// @Tags permits
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.Package
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /permits/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	pkg, err := h.packages.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// CreatePackage handles POST /api/permits
// @Summary Create a permit package
// @Description Creates a Draft package and instantiates its checklist from the county/permit type template
// @Tags permits
// @Accept json
// @Produce json
// @Param package body service.CreatePackageRequest true "Package data"
// @Success 201 {object} models.Package
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Failure 500 {object} ErrorResponse "Failed to create package"
// @Security BearerAuth
// @Router /permits [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req service.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	pkg, err := h.packages.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create package")
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage handles PUT /api/permits/:id
// @Summary Update a permit package
// @Description Partial update. Any valid status may follow any other.
// @Tags permits
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param package body service.UpdatePackageRequest true "Fields to change"
// @Success 200 {object} models.Package
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Security BearerAuth
// @Router /permits/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var req service.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	pkg, err := h.packages.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// AssignContractor handles PUT /api/permits/:id/contractor
// @Summary Assign a contractor to a package
// @Tags permits
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param contractor body service.ContractorRef true "Contractor id or license number"
// @Success 200 {object} models.Package
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Package or contractor not found"
// @Security BearerAuth
// @Router /permits/{id}/contractor [put]
func (h *PackageHandler) AssignContractor(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var ref service.ContractorRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	pkg, err := h.packages.AssignContractor(c.Request.Context(), id, ref)
	if err != nil {
		respondError(c, err, "Failed to assign contractor")
		return
	}
	c.JSON(http.StatusOK, pkg)
}
