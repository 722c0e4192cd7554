package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/staff-api/internal/service"
)

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics        *service.MetricsService
	storeAvailable func() bool
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, storeAvailable func() bool) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, storeAvailable: storeAvailable}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness including blob-store reachability. The service
// stays ready in degraded mode; the flag tells operators what is going on.
func (h *MetricsHandler) Ready(c *gin.Context) {
	available := h.storeAvailable == nil || h.storeAvailable()
	c.JSON(http.StatusOK, gin.H{"status": "ready", "storage": available})
}
