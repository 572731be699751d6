package models

import (
	"time"

	"github.com/epic-cs/epic-test-backend/internal/store"
)

const (
	ResultPass = "pass"
	ResultFail = "fail"
)

// Test is one (student, attempt) result. Immutable once created; duplicate
// attempt numbers are permitted and not reconciled.
type Test struct {
	ID      string    `json:"id"`
	NPM     string    `json:"npm"`
	Attempt int       `json:"attempt"`
	Score   *float64  `json:"score"`
	Status  string    `json:"status"`
	TakenAt time.Time `json:"taken_at"`
}

func (t *Test) ToDocument() store.Document {
	doc := store.Document{
		"npm":      t.NPM,
		"attempt":  t.Attempt,
		"status":   t.Status,
		"taken_at": t.TakenAt,
	}
	if t.Score != nil {
		doc["score"] = *t.Score
	}
	return doc
}

func TestFromDocument(doc store.Document) *Test {
	t := &Test{
		ID:      docString(doc, "_id"),
		NPM:     docString(doc, "npm"),
		Attempt: docInt(doc, "attempt"),
		Status:  docString(doc, "status"),
		TakenAt: docTime(doc, "taken_at"),
	}
	if score, ok := docFloat(doc, "score"); ok {
		t.Score = &score
	}
	return t
}
