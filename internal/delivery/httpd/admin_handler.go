package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/epic-cs/epic-test-backend/internal/models"
)

func (h *Handler) ListPendingPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payments, err := h.paymentService.ListPending(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PendingPaymentsResponse{Payments: payments})
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "payment_id")

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	if err := h.paymentService.Verify(ctx, paymentID, req.Status); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req models.ResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	certificateURL, err := h.testService.SubmitResult(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := models.ResultResponse{OK: true}
	if certificateURL != "" {
		resp.CertificateURL = &certificateURL
	}

	writeJSON(w, http.StatusOK, resp)
}
