package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/figura/internal/interfaces"
)

// HealthHandler reports whether the service can actually run extractions
type HealthHandler struct {
	service interfaces.ExtractionService
	logger  arbor.ILogger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(service interfaces.ExtractionService, logger arbor.ILogger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger,
	}
}

// GetHealthHandler handles GET /health
// Reports degraded (still 200) when the tool JAR is missing, since the
// HTTP layer itself is up even though extractions would fail.
func (h *HealthHandler) GetHealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	exists, path := h.service.JarStatus()

	status := "healthy"
	if !exists {
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     status,
		"jar_exists": exists,
		"jar_path":   path,
	})
}
