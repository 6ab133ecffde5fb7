package auth

import (
	"net/http"
	"strings"

	"permitpro-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Keys under which the authenticated user is stored on the gin context
const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxName   = "name"
	ctxClaims = "auth_claims"
)

// 401 messages for malformed Authorization headers
const (
	msgMissingHeader = "Authorization header is required"
	msgBadScheme     = "Invalid authorization header format"
)

// AuthMiddleware attaches token holders to the request
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// Protect returns RequireAuth when AUTH_REQUIRED is set and OptionalAuth otherwise
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	if m.service.Required() {
		return m.RequireAuth()
	}
	return m.OptionalAuth()
}

// RequireAuth rejects the request with 401 unless it carries a valid bearer token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, problem := bearerToken(c.GetHeader("Authorization"))
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		claims, err := m.service.ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuth records the user when a valid bearer token is present. Anything else passes anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, problem := bearerToken(c.GetHeader("Authorization")); problem == "" {
			if claims, err := m.service.ValidateJWT(token); err == nil {
				setUserContext(c, claims)
			}
		}
		c.Next()
	}
}

// bearerToken extracts the token, or returns the 401 message describing what is wrong with the header
func bearerToken(header string) (token, problem string) {
	if header == "" {
		return "", msgMissingHeader
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", msgBadScheme
	}
	return token, ""
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxName, claims.Name)
	c.Set(ctxClaims, claims)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email))
}

// GetUserEmail returns the email of the authenticated user
func GetUserEmail(c *gin.Context) (string, bool) {
	return stringKey(c, ctxEmail)
}

// GetUserName returns the display name of the authenticated user; empty names count as absent
func GetUserName(c *gin.Context) (string, bool) {
	return stringKey(c, ctxName)
}

func stringKey(c *gin.Context, key string) (string, bool) {
	s := c.GetString(key)
	return s, s != ""
}
