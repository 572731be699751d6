package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in memory, preserving insertion order per
// collection. Data is lost on restart. Safe for concurrent use. Used in
// tests as a drop-in for MongoStore.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

// copyDoc returns a shallow copy. Records are flat, so copying the map is
// enough to keep callers from mutating stored state.
func copyDoc(src Document) Document {
	dst := make(Document, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func (m *MemoryStore) CreateDocument(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := copyDoc(doc)
	stored["_id"] = uuid.New().String()
	stored["created_at"] = time.Now().UTC()
	m.collections[collection] = append(m.collections[collection], stored)

	return stored["_id"].(string), nil
}

func (m *MemoryStore) GetDocuments(_ context.Context, collection string, filter Filter) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []Document
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (m *MemoryStore) UpdateDocuments(_ context.Context, collection string, filter Filter, patch Document) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			for k, v := range patch {
				doc[k] = v
			}
			matched++
		}
	}
	return matched, nil
}

func (m *MemoryStore) UpdateByID(_ context.Context, collection string, id string, patch Document) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched int64
	for _, doc := range m.collections[collection] {
		if doc["_id"] == id {
			for k, v := range patch {
				doc[k] = v
			}
			matched++
		}
	}
	return matched, nil
}

func (m *MemoryStore) ListCollections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}
