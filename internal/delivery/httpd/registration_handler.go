package httpd

import (
	"errors"
	"io"
	"net/http"

	"github.com/epic-cs/epic-test-backend/internal/models"
)

const maxProofSize = 32 << 20 // 32MB

func (h *Handler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	req := &models.RegistrationRequest{
		NPM:   r.FormValue("npm"),
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}

	file, header, err := r.FormFile("payment_proof")
	switch {
	case err == nil:
		defer file.Close()
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read file")
			return
		}
		req.Proof = &models.ProofFile{
			Name:    header.Filename,
			MIME:    header.Header.Get("Content-Type"),
			Content: content,
		}
	case errors.Is(err, http.ErrMissingFile):
		// Registration without a proof is valid.
	default:
		writeError(w, http.StatusBadRequest, "Invalid payment_proof upload")
		return
	}

	ctx := r.Context()
	paymentID, err := h.registrationService.Register(ctx, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.RegistrationResponse{
		Message:   "Registrasi tersimpan",
		PaymentID: paymentID,
	})
}
