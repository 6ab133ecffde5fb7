package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// PingFunc reports whether a dependency is reachable
type PingFunc func(ctx context.Context) error

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	pingDB  PingFunc
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pingDB PingFunc, version string) *HealthHandler {
	return &HealthHandler{pingDB: pingDB, version: version}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// probe pings the database; the map holds the error text per failing dependency
func (h *HealthHandler) probe(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	failures := map[string]error{}
	if err := h.pingDB(ctx); err != nil {
		failures["database"] = err
	}
	return failures
}

func statusCode(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Health handles GET /health
// @Summary Health check
// @Description Overall status including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	failures := h.probe(c.Request.Context())

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"database": "healthy"},
	}
	for name, err := range failures {
		resp.Status = "unhealthy"
		resp.Services[name] = "error: " + err.Error()
	}
	c.JSON(statusCode(len(failures) == 0), resp)
}

// Ready handles GET /health/ready
// @Summary Readiness check
// @Description Whether the service can take traffic
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	failures := h.probe(c.Request.Context())

	resp := ReadyResponse{
		Ready:     len(failures) == 0,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready"},
	}
	for name, err := range failures {
		resp.Services[name] = "not ready: " + err.Error()
	}
	c.JSON(statusCode(resp.Ready), resp)
}

// Live handles GET /health/live. It never touches dependencies.
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
