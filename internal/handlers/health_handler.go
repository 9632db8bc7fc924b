package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

// Pinger reports whether a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store Pinger
	now   func() time.Time
}

// NewHealthHandler creates a new HealthHandler. store may be nil.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, now: time.Now}
}

// HealthCheck returns the server health status
// @Summary Health check
// @Description Returns the current health status of the server
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Failure 503 {object} models.HealthResponse "Store unreachable"
// @Router /api/health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			observability.WithContext(r.Context()).WithError(err).Warn("Health check failed")
			status = http.StatusServiceUnavailable
			response.Status = "unhealthy"
		}
	}

	respondJSON(w, status, response)
}
