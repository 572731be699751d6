package models

import (
	"time"

	"github.com/epic-cs/epic-test-backend/internal/store"
)

// Student is keyed by npm, the registration number. Registration upserts it;
// nothing in this system ever deletes one.
type Student struct {
	ID        string    `json:"id"`
	NPM       string    `json:"npm"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) ToDocument() store.Document {
	return store.Document{
		"npm":   s.NPM,
		"name":  s.Name,
		"email": s.Email,
	}
}

func StudentFromDocument(doc store.Document) *Student {
	return &Student{
		ID:        docString(doc, "_id"),
		NPM:       docString(doc, "npm"),
		Name:      docString(doc, "name"),
		Email:     docString(doc, "email"),
		CreatedAt: docTime(doc, "created_at"),
		UpdatedAt: docTime(doc, "updated_at"),
	}
}
