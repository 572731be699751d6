package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/models"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

type TestService interface {
	// SubmitResult records a test attempt and, on pass, issues a
	// certificate. Returns the certificate link, or "" on fail.
	SubmitResult(ctx context.Context, req *models.ResultRequest) (string, error)
	History(ctx context.Context, npm string) ([]models.HistoryEntry, error)
}

type testService struct {
	store  store.Store
	logger zerolog.Logger
}

func NewTestService(st store.Store, logger zerolog.Logger) TestService {
	return &testService{
		store:  st,
		logger: logger,
	}
}

func (s *testService) SubmitResult(ctx context.Context, req *models.ResultRequest) (string, error) {
	if req.Status != models.ResultPass && req.Status != models.ResultFail {
		return "", ErrInvalidResultStatus
	}

	now := time.Now().UTC()
	score := req.Score
	test := &models.Test{
		NPM:     req.NPM,
		Attempt: req.Attempt,
		Score:   &score,
		Status:  req.Status,
		TakenAt: now,
	}

	// Always a fresh record; duplicate attempt numbers are not reconciled.
	if _, err := s.store.CreateDocument(ctx, store.Collection("test"), test.ToDocument()); err != nil {
		return "", fmt.Errorf("failed to create test: %w", err)
	}

	if req.Status != models.ResultPass {
		return "", nil
	}

	certificate := &models.Certificate{
		NPM:      req.NPM,
		Attempt:  req.Attempt,
		IssuedAt: now,
	}
	if _, err := s.store.CreateDocument(ctx, store.Collection("certificate"), certificate.ToDocument()); err != nil {
		return "", fmt.Errorf("failed to create certificate: %w", err)
	}

	s.logger.Info().
		Str("npm", req.NPM).
		Int("attempt", req.Attempt).
		Msg("Certificate issued")

	return CertificateURL(req.NPM, req.Attempt, req.Score, time.Now()), nil
}

func (s *testService) History(ctx context.Context, npm string) ([]models.HistoryEntry, error) {
	docs, err := s.store.GetDocuments(ctx, store.Collection("test"), store.Filter{"npm": npm})
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}

	tests := make([]*models.Test, 0, len(docs))
	for _, doc := range docs {
		tests = append(tests, models.TestFromDocument(doc))
	}
	// Missing attempt numbers decode as 0 and sort first.
	sort.SliceStable(tests, func(i, j int) bool {
		return tests[i].Attempt < tests[j].Attempt
	})

	entries := make([]models.HistoryEntry, 0, len(tests))
	for _, t := range tests {
		entry := models.HistoryEntry{
			ID:      t.ID,
			Attempt: t.Attempt,
			Score:   t.Score,
			Status:  t.Status,
			TakenAt: t.TakenAt,
		}
		if t.Status == models.ResultPass {
			url, err := s.regenerateCertificate(ctx, npm, t)
			if err != nil {
				return nil, err
			}
			if url != "" {
				entry.CertificateURL = &url
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// regenerateCertificate rebuilds the link for a passed test when an
// issuance record exists. The embedded date is today's, not the original
// issuance date, because rendered content is never stored.
func (s *testService) regenerateCertificate(ctx context.Context, npm string, t *models.Test) (string, error) {
	certs, err := s.store.GetDocuments(ctx, store.Collection("certificate"), store.Filter{
		"npm":     npm,
		"attempt": t.Attempt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up certificate: %w", err)
	}
	if len(certs) == 0 {
		return "", nil
	}

	var score float64
	if t.Score != nil {
		score = *t.Score
	}
	return CertificateURL(npm, t.Attempt, score, time.Now()), nil
}
