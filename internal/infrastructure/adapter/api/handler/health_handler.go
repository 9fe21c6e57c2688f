package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Pinger checks that the storage substrate is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and storage readiness
type HealthHandler struct {
	storage Pinger
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(storage Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{storage: storage, logger: logger}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.storage.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "storage": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": "up"})
}
