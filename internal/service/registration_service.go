package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/models"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

type RegistrationService interface {
	// Register upserts the student, validates and embeds the optional
	// payment proof, and creates a pending payment. Returns the new
	// payment id.
	Register(ctx context.Context, req *models.RegistrationRequest) (string, error)
}

type registrationService struct {
	store  store.Store
	logger zerolog.Logger
}

func NewRegistrationService(st store.Store, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		store:  st,
		logger: logger,
	}
}

func (s *registrationService) Register(ctx context.Context, req *models.RegistrationRequest) (string, error) {
	if req.NPM == "" || req.Name == "" || req.Email == "" {
		return "", ErrIncompleteData
	}

	if err := s.upsertStudent(ctx, req); err != nil {
		return "", err
	}

	payment := &models.Payment{
		NPM:    req.NPM,
		Name:   req.Name,
		Email:  req.Email,
		Status: models.PaymentPending,
	}

	if req.Proof != nil {
		mime := req.Proof.MIME
		if mime == "" {
			mime = "application/octet-stream"
		}
		if !models.IsAllowedProofMIME(mime) {
			return "", ErrUnsupportedMedia
		}
		payment.FileName = req.Proof.Name
		payment.FileMime = mime
		payment.FileDataB64 = base64.StdEncoding.EncodeToString(req.Proof.Content)
	}

	paymentID, err := s.store.CreateDocument(ctx, store.Collection("payment"), payment.ToDocument())
	if err != nil {
		return "", fmt.Errorf("failed to create payment: %w", err)
	}

	s.logger.Info().
		Str("npm", req.NPM).
		Str("payment_id", paymentID).
		Bool("has_proof", req.Proof != nil).
		Msg("Registration stored")

	return paymentID, nil
}

// upsertStudent creates the student on first registration, otherwise
// overwrites name/email and stamps updated_at. Last write wins.
func (s *registrationService) upsertStudent(ctx context.Context, req *models.RegistrationRequest) error {
	existing, err := s.store.GetDocuments(ctx, store.Collection("student"), store.Filter{"npm": req.NPM})
	if err != nil {
		return fmt.Errorf("failed to look up student: %w", err)
	}

	if len(existing) == 0 {
		student := &models.Student{NPM: req.NPM, Name: req.Name, Email: req.Email}
		if _, err := s.store.CreateDocument(ctx, store.Collection("student"), student.ToDocument()); err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}
		return nil
	}

	patch := store.Document{
		"name":       req.Name,
		"email":      req.Email,
		"updated_at": time.Now().UTC(),
	}
	if _, err := s.store.UpdateDocuments(ctx, store.Collection("student"), store.Filter{"npm": req.NPM}, patch); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}
