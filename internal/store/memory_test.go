package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	id, err := m.CreateDocument(ctx, "payment", Document{"npm": "123", "status": "pending"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := m.GetDocuments(ctx, "payment", Filter{"npm": "123"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id, docs[0]["_id"])
	require.Equal(t, "pending", docs[0]["status"])
	require.NotNil(t, docs[0]["created_at"])

	none, err := m.GetDocuments(ctx, "payment", Filter{"npm": "999"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryStoreEmptyFilterReturnsAllInOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	for _, npm := range []string{"a", "b", "c"} {
		_, err := m.CreateDocument(ctx, "student", Document{"npm": npm})
		require.NoError(t, err)
	}

	docs, err := m.GetDocuments(ctx, "student", Filter{})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "a", docs[0]["npm"])
	require.Equal(t, "c", docs[2]["npm"])
}

func TestMemoryStoreUpdateDocuments(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.CreateDocument(ctx, "student", Document{"npm": "123", "name": "Old"})
	require.NoError(t, err)

	matched, err := m.UpdateDocuments(ctx, "student", Filter{"npm": "123"}, Document{"name": "New"})
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	docs, err := m.GetDocuments(ctx, "student", Filter{"npm": "123"})
	require.NoError(t, err)
	require.Equal(t, "New", docs[0]["name"])

	matched, err = m.UpdateDocuments(ctx, "student", Filter{"npm": "999"}, Document{"name": "X"})
	require.NoError(t, err)
	require.Zero(t, matched)
}

func TestMemoryStoreUpdateByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	id, err := m.CreateDocument(ctx, "payment", Document{"status": "pending"})
	require.NoError(t, err)

	matched, err := m.UpdateByID(ctx, "payment", id, Document{"status": "approved"})
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	docs, err := m.GetDocuments(ctx, "payment", Filter{})
	require.NoError(t, err)
	require.Equal(t, "approved", docs[0]["status"])
}

func TestMemoryStoreUpdateByIDMalformed(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.UpdateByID(ctx, "payment", "not-an-id", Document{"status": "approved"})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryStoreUpdateByIDUnknown(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	matched, err := m.UpdateByID(ctx, "payment", "00000000-0000-0000-0000-000000000000", Document{"status": "approved"})
	require.NoError(t, err)
	require.Zero(t, matched)
}

func TestMemoryStoreListCollections(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	names, err := m.ListCollections(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = m.CreateDocument(ctx, "test", Document{"npm": "1"})
	require.NoError(t, err)
	_, err = m.CreateDocument(ctx, "payment", Document{"npm": "1"})
	require.NoError(t, err)

	names, err = m.ListCollections(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"payment", "test"}, names)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.CreateDocument(ctx, "student", Document{"npm": "123", "name": "Budi"})
	require.NoError(t, err)

	docs, err := m.GetDocuments(ctx, "student", Filter{})
	require.NoError(t, err)
	docs[0]["name"] = "mutated"

	again, err := m.GetDocuments(ctx, "student", Filter{})
	require.NoError(t, err)
	require.Equal(t, "Budi", again[0]["name"])
}

func TestCollectionMapping(t *testing.T) {
	require.Equal(t, "payment", Collection("payment"))
	require.Equal(t, "certificate", Collection("certificate"))
	require.Panics(t, func() { Collection("no-such-schema") })
}
