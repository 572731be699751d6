package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/epic-cs/epic-test-backend/internal/models"
)

func (h *Handler) StudentHistory(w http.ResponseWriter, r *http.Request) {
	npm := chi.URLParam(r, "npm")
	if npm == "" {
		writeError(w, http.StatusBadRequest, "NPM is required")
		return
	}

	ctx := r.Context()
	tests, err := h.testService.History(ctx, npm)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.HistoryResponse{Tests: tests})
}
