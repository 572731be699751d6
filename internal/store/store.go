package store

import (
	"context"
	"errors"
)

// Document is one flat record as stored in a collection. Reads return the
// identifier under "_id" as a string.
type Document map[string]any

// Filter matches documents by exact field equality.
type Filter map[string]any

// ErrInvalidID is returned when an identifier cannot be parsed into the
// store-native id type.
var ErrInvalidID = errors.New("invalid document id")

// Store is the document database boundary. Implementations must be safe for
// concurrent use; handlers receive an injected Store so tests can substitute
// the in-memory one.
type Store interface {
	// CreateDocument inserts a record, injecting a created_at timestamp,
	// and returns the generated identifier.
	CreateDocument(ctx context.Context, collection string, doc Document) (string, error)

	// GetDocuments returns every document matching the filter in
	// store-native order. An empty filter matches the whole collection.
	GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// UpdateDocuments applies the patch to every matching document and
	// returns the matched count.
	UpdateDocuments(ctx context.Context, collection string, filter Filter, patch Document) (int64, error)

	// UpdateByID applies the patch to the document with the given id and
	// returns the matched count. A malformed id yields ErrInvalidID.
	UpdateByID(ctx context.Context, collection string, id string, patch Document) (int64, error)

	// ListCollections returns the names of existing collections.
	ListCollections(ctx context.Context) ([]string, error)

	// Ping reports store connectivity.
	Ping(ctx context.Context) error
}

// collections maps each record schema to its backing collection name.
// Renaming a collection is a one-line change here.
var collections = map[string]string{
	"student":     "student",
	"payment":     "payment",
	"test":        "test",
	"certificate": "certificate",
}

// Collection resolves a record schema to its collection name. Unknown
// schemas are programmer errors.
func Collection(schema string) string {
	name, ok := collections[schema]
	if !ok {
		panic("store: unknown record schema " + schema)
	}
	return name
}
