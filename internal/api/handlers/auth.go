package handlers

import (
	"net/http"

	"permitpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login
type AuthHandler struct {
	users service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Finds or creates the user for the email and returns a bearer token. The password is not checked.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Login failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}
