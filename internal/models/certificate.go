package models

import (
	"time"

	"github.com/epic-cs/epic-test-backend/internal/store"
)

// Certificate marks issuance for a passed (npm, attempt). The rendered
// content is never persisted; it is regenerated from the Test fields.
type Certificate struct {
	ID       string    `json:"id"`
	NPM      string    `json:"npm"`
	Attempt  int       `json:"attempt"`
	IssuedAt time.Time `json:"issued_at"`
}

func (c *Certificate) ToDocument() store.Document {
	return store.Document{
		"npm":       c.NPM,
		"attempt":   c.Attempt,
		"issued_at": c.IssuedAt,
	}
}

func CertificateFromDocument(doc store.Document) *Certificate {
	return &Certificate{
		ID:       docString(doc, "_id"),
		NPM:      docString(doc, "npm"),
		Attempt:  docInt(doc, "attempt"),
		IssuedAt: docTime(doc, "issued_at"),
	}
}
