package httpd

import (
	"net/http"
	"time"
)

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "EPIC Test Backend Running",
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "epic-test-backend",
		"timestamp": time.Now().UTC(),
	})
}

// Diagnostics always answers 200; store failures are summarized in the body.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, h.diagnosticsService.Check(ctx))
}
