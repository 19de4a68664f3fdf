package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"outagecli/internal/config"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck handles GET /healthz
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":    "healthy",
		"app":       config.AppName,
		"version":   config.AppVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
