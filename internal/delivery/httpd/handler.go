package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/service"
)

type Handler struct {
	registrationService service.RegistrationService
	paymentService      service.PaymentService
	testService         service.TestService
	diagnosticsService  service.DiagnosticsService
	logger              zerolog.Logger
}

func NewHandler(
	registrationService service.RegistrationService,
	paymentService service.PaymentService,
	testService service.TestService,
	diagnosticsService service.DiagnosticsService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		registrationService: registrationService,
		paymentService:      paymentService,
		testService:         testService,
		diagnosticsService:  diagnosticsService,
		logger:              logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Root)
	router.Get("/health", h.HealthCheck)
	router.Get("/test", h.Diagnostics)

	router.Post("/registrations", h.CreateRegistration)

	router.Route("/admin", func(r chi.Router) {
		r.Get("/pending", h.ListPendingPayments)
		r.Post("/verify/{payment_id}", h.VerifyPayment)
		r.Post("/result", h.SubmitResult)
	})

	router.Get("/students/{npm}/history", h.StudentHistory)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIncompleteData),
		errors.Is(err, service.ErrUnsupportedMedia),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidResultStatus),
		errors.Is(err, service.ErrInvalidPaymentID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPaymentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
