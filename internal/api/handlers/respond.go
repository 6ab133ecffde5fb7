package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"permitpro-backend/internal/auth"
	apperrors "permitpro-backend/internal/errors"
	"permitpro-backend/internal/logger"
	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"package not found"`
	Field string `json:"field,omitempty" example:"customerName"`
}

// MessageResponse is returned by operations that have nothing else to report
type MessageResponse struct {
	Message string `json:"message" example:"Contractor deleted successfully"`
}

// ContractorInUseResponse is returned when deleting a contractor that still has packages
type ContractorInUseResponse struct {
	Error        string                 `json:"error" example:"Cannot delete contractor with assigned packages"`
	Message      string                 `json:"message"`
	PackageCount int                    `json:"packageCount" example:"2"`
	Packages     []apperrors.PackageRef `json:"packages"`
}

// respondError maps a service error to its HTTP status. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error, failure string) {
	var (
		inUse *apperrors.ContractorInUseError
		verr  *apperrors.ValidationError
	)
	switch {
	case errors.As(err, &inUse):
		c.JSON(http.StatusBadRequest, ContractorInUseResponse{
			Error:        inUse.Error(),
			Message:      inUse.Detail(),
			PackageCount: inUse.PackageCount,
			Packages:     inUse.Packages,
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Field: verr.Field})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error(failure)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failure})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

// actorName names the caller for audit fields, falling back to the default uploader
func actorName(c *gin.Context) string {
	if name, ok := auth.GetUserName(c); ok {
		return name
	}
	if email, ok := auth.GetUserEmail(c); ok && email != "" {
		return email
	}
	return service.DefaultUploaderName
}
