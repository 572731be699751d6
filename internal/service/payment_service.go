package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/models"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

type PaymentService interface {
	ListPending(ctx context.Context) ([]models.PendingPayment, error)
	// Verify unconditionally sets the payment status and verification
	// timestamp. There is no transition guard; re-verifying to any valid
	// status succeeds.
	Verify(ctx context.Context, paymentID, status string) error
}

type paymentService struct {
	store  store.Store
	logger zerolog.Logger
}

func NewPaymentService(st store.Store, logger zerolog.Logger) PaymentService {
	return &paymentService{
		store:  st,
		logger: logger,
	}
}

func (s *paymentService) ListPending(ctx context.Context) ([]models.PendingPayment, error) {
	docs, err := s.store.GetDocuments(ctx, store.Collection("payment"), store.Filter{"status": models.PaymentPending})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}

	out := make([]models.PendingPayment, 0, len(docs))
	for _, doc := range docs {
		payment := models.PaymentFromDocument(doc)
		entry := models.PendingPayment{
			ID:    payment.ID,
			NPM:   payment.NPM,
			Name:  payment.Name,
			Email: payment.Email,
		}
		if url := payment.FileURL(); url != "" {
			entry.FileURL = &url
		}
		out = append(out, entry)
	}

	return out, nil
}

func (s *paymentService) Verify(ctx context.Context, paymentID, status string) error {
	if status != models.PaymentApproved && status != models.PaymentRejected {
		return ErrInvalidStatus
	}

	patch := store.Document{
		"status":      status,
		"verified_at": time.Now().UTC(),
	}

	matched, err := s.store.UpdateByID(ctx, store.Collection("payment"), paymentID, patch)
	if errors.Is(err, store.ErrInvalidID) {
		return ErrInvalidPaymentID
	}
	if err != nil {
		return fmt.Errorf("failed to verify payment: %w", err)
	}
	if matched == 0 {
		return ErrPaymentNotFound
	}

	s.logger.Info().
		Str("payment_id", paymentID).
		Str("status", status).
		Msg("Payment verified")

	return nil
}
