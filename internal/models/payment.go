package models

import (
	"time"

	"github.com/epic-cs/epic-test-backend/internal/store"
)

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// allowedProofMIMETypes is the fixed allow-list for uploaded payment proofs.
var allowedProofMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

func IsAllowedProofMIME(mime string) bool {
	return allowedProofMIMETypes[mime]
}

// Payment records one registration submission. A student may have several.
// File fields are empty when no proof was uploaded. Only status and the
// verification stamp mutate after creation.
type Payment struct {
	ID          string     `json:"id"`
	NPM         string     `json:"npm"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	FileName    string     `json:"file_name,omitempty"`
	FileMime    string     `json:"file_mime,omitempty"`
	FileDataB64 string     `json:"file_data_b64,omitempty"`
	Status      string     `json:"status"`
	VerifiedBy  string     `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
}

func (p *Payment) ToDocument() store.Document {
	doc := store.Document{
		"npm":    p.NPM,
		"name":   p.Name,
		"email":  p.Email,
		"status": p.Status,
	}
	if p.FileName != "" {
		doc["file_name"] = p.FileName
	}
	if p.FileMime != "" {
		doc["file_mime"] = p.FileMime
	}
	if p.FileDataB64 != "" {
		doc["file_data_b64"] = p.FileDataB64
	}
	return doc
}

func PaymentFromDocument(doc store.Document) *Payment {
	p := &Payment{
		ID:          docString(doc, "_id"),
		NPM:         docString(doc, "npm"),
		Name:        docString(doc, "name"),
		Email:       docString(doc, "email"),
		FileName:    docString(doc, "file_name"),
		FileMime:    docString(doc, "file_mime"),
		FileDataB64: docString(doc, "file_data_b64"),
		Status:      docString(doc, "status"),
		VerifiedBy:  docString(doc, "verified_by"),
	}
	if t := docTime(doc, "verified_at"); !t.IsZero() {
		p.VerifiedAt = &t
	}
	return p
}

// FileURL synthesizes the inline data link for the stored proof, or ""
// when no file was uploaded.
func (p *Payment) FileURL() string {
	if p.FileDataB64 == "" || p.FileMime == "" {
		return ""
	}
	return "data:" + p.FileMime + ";base64," + p.FileDataB64
}
