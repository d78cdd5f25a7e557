package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docq-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

func loaderFixture(t *testing.T) (*mockConnector, *domain.Catalogue, *Loader) {
	t.Helper()
	conn := newMockConnector()
	cat := domain.NewCatalogue(0)
	for _, id := range []string{"a", "b", "c"} {
		conn.contents[id] = "full content " + id
		require.NoError(t, cat.Add(domain.DocumentMetadata{
			ID:       id,
			Name:     "Doc " + id,
			MIMEType: "text/plain",
			Preview:  "preview " + id,
		}))
	}
	return conn, cat, NewLoader(conn, memory.NewContentCache())
}

func TestLoader_Load_PreservesInputOrder(t *testing.T) {
	_, cat, loader := loaderFixture(t)

	docs := loader.Load(context.Background(), cat, []string{"c", "a", "b"})

	require.Len(t, docs, 3)
	assert.Equal(t, "c", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "b", docs[2].ID)
	assert.Equal(t, "full content c", docs[0].Content)
}

func TestLoader_Load_SecondCallUsesCache(t *testing.T) {
	conn, cat, loader := loaderFixture(t)

	first := loader.Load(context.Background(), cat, []string{"a"})
	second := loader.Load(context.Background(), cat, []string{"a"})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])
	// Exactly one external fetch for the ID.
	assert.Equal(t, 1, conn.readCount("a"))
}

func TestLoader_Load_SkipsUnknownIDs(t *testing.T) {
	conn, cat, loader := loaderFixture(t)

	docs := loader.Load(context.Background(), cat, []string{"a", "stale", "b"})

	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, 0, conn.readCount("stale"))
}

func TestLoader_Load_OmitsFailedFetches(t *testing.T) {
	conn, cat, loader := loaderFixture(t)
	conn.failures["b"] = errors.New("download failed")

	docs := loader.Load(context.Background(), cat, []string{"a", "b", "c"})

	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "c", docs[1].ID)

	// The failure is recorded on the metadata, not raised.
	meta := cat.Get("b")
	require.NotNil(t, meta)
	assert.False(t, meta.FullyLoaded)
	assert.Equal(t, "download failed", meta.LoadError)
}

func TestLoader_Load_MarksLoadedMetadata(t *testing.T) {
	_, cat, loader := loaderFixture(t)

	loader.Load(context.Background(), cat, []string{"a"})

	meta := cat.Get("a")
	require.NotNil(t, meta)
	assert.True(t, meta.FullyLoaded)
	assert.Empty(t, meta.LoadError)
}

func TestLoader_Load_EmptyIDs(t *testing.T) {
	_, cat, loader := loaderFixture(t)

	assert.Empty(t, loader.Load(context.Background(), cat, nil))
}
