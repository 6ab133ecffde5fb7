package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"permitpro-backend/internal/database/models"
	"permitpro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: 7},
		Email:     "admin@permitpro.com",
		Name:      "Admin User",
		Role:      models.UserRoleAdministrator,
	}
}

func newTestService(t *testing.T, required bool) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", Required: required})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret"}
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, DefaultTokenTTL, config.ttl())
		assert.Equal(t, "permitpro-backend", config.issuer())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{}
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("negative ttl", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret", TokenTTL: -time.Minute}
		assert.Error(t, config.ValidateConfig())
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{})
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := newTestService(t, false)
	user := testUser()

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "permitpro-backend", claims.Issuer)
}

func TestJWTExpiration(t *testing.T) {
	service := newTestService(t, false)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = service.ValidateJWT(token)
	assert.NoError(t, err)

	service.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsForeignTokens(t *testing.T) {
	service := newTestService(t, false)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other-key"})
		require.NoError(t, err)
		token, err := other.GenerateJWT(testUser())
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{Email: "x@y.z"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func setupRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		name, _ := GetUserName(c)
		c.JSON(http.StatusOK, gin.H{
			"email":      email,
			"name":       name,
			"log_user":   logger.UserFromContext(c.Request.Context()),
			"has_claims": c.Keys["auth_claims"] != nil,
		})
	})
	return router
}

func doRequest(router *gin.Engine, header string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequireAuth(t *testing.T) {
	service := newTestService(t, true)
	router := setupRouter(NewAuthMiddleware(service).Protect())
	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w, body := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authorization header is required", body["error"])
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w, body := doRequest(router, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid authorization header format", body["error"])
	})

	t.Run("invalid token", func(t *testing.T) {
		w, body := doRequest(router, "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", body["error"])
	})

	t.Run("valid token", func(t *testing.T) {
		w, body := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@permitpro.com", body["email"])
		assert.Equal(t, "Admin User", body["name"])
		assert.Equal(t, "admin@permitpro.com", body["log_user"])
		assert.Equal(t, true, body["has_claims"])
	})
}

func TestOptionalAuth(t *testing.T) {
	service := newTestService(t, false)
	router := setupRouter(NewAuthMiddleware(service).Protect())
	token, err := service.GenerateJWT(testUser())
	require.NoError(t, err)

	t.Run("no header passes anonymously", func(t *testing.T) {
		w, body := doRequest(router, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", body["email"])
		assert.Equal(t, false, body["has_claims"])
	})

	t.Run("invalid token passes anonymously", func(t *testing.T) {
		w, body := doRequest(router, "Bearer nope")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", body["email"])
	})

	t.Run("valid token sets user", func(t *testing.T) {
		w, body := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@permitpro.com", body["email"])
	})
}
