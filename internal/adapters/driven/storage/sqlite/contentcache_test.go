package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

func testCache(t *testing.T) *ContentCache {
	t.Helper()
	cache, err := NewContentCache(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestContentCache_PutAndGet(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	doc := domain.DocumentContent{
		ID:       "doc-1",
		Name:     "Ventas2023",
		MIMEType: "text/plain",
		Content:  "ingresos 500k",
	}
	require.NoError(t, cache.Put(ctx, doc))

	got, err := cache.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, *got)
}

func TestContentCache_GetMiss(t *testing.T) {
	cache := testCache(t)

	_, err := cache.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentCache_PutKeepsFirstEntry(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.DocumentContent{ID: "doc-1", Name: "A", MIMEType: "text/plain", Content: "first"}))
	require.NoError(t, cache.Put(ctx, domain.DocumentContent{ID: "doc-1", Name: "A", MIMEType: "text/plain", Content: "second"}))

	got, err := cache.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
}

func TestContentCache_Len(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, cache.Put(ctx, domain.DocumentContent{ID: "a", Name: "A", MIMEType: "text/plain", Content: "x"}))
	require.NoError(t, cache.Put(ctx, domain.DocumentContent{ID: "b", Name: "B", MIMEType: "text/plain", Content: "y"}))

	n, err = cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestContentCache_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cache, err := NewContentCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, domain.DocumentContent{ID: "a", Name: "A", MIMEType: "text/plain", Content: "persisted"}))
	require.NoError(t, cache.Close())

	reopened, err := NewContentCache(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Content)
}
