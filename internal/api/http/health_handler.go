package http

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"service":   "Fatherhood Initiative API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"message": "Man Up! Inc. Fatherhood Initiative API",
		"version": h.version,
		"endpoints": map[string]string{
			"health":  "GET /health",
			"signup":  "POST /api/fatherhood/signup",
			"signups": "GET /api/fatherhood/signups",
		},
	})
}
