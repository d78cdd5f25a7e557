package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_Add_RejectsDuplicates(t *testing.T) {
	cat := NewCatalogue(0)

	require.NoError(t, cat.Add(DocumentMetadata{ID: "a", Name: "First"}))
	err := cat.Add(DocumentMetadata{ID: "a", Name: "Again"})

	require.ErrorIs(t, err, ErrDuplicateDocument)
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, "First", cat.Get("a").Name)
}

func TestCatalogue_Add_EnforcesHardLimit(t *testing.T) {
	cat := NewCatalogue(2)

	require.NoError(t, cat.Add(DocumentMetadata{ID: "a"}))
	require.NoError(t, cat.Add(DocumentMetadata{ID: "b"}))
	err := cat.Add(DocumentMetadata{ID: "c"})

	require.ErrorIs(t, err, ErrCatalogueFull)
	assert.Equal(t, 2, cat.Len())
}

func TestCatalogue_Entries_PreservesInsertionOrder(t *testing.T) {
	cat := NewCatalogue(0)
	for _, id := range []string{"z", "m", "a"} {
		require.NoError(t, cat.Add(DocumentMetadata{ID: id}))
	}

	entries := cat.Entries()

	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].ID)
	assert.Equal(t, "m", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}

func TestCatalogue_Entries_ReturnsCopy(t *testing.T) {
	cat := NewCatalogue(0)
	require.NoError(t, cat.Add(DocumentMetadata{ID: "a", Name: "Original"}))

	entries := cat.Entries()
	entries[0].Name = "Mutated"

	assert.Equal(t, "Original", cat.Get("a").Name)
}

func TestCatalogue_MarkLoaded(t *testing.T) {
	cat := NewCatalogue(0)
	require.NoError(t, cat.Add(DocumentMetadata{ID: "a", LoadError: "old failure"}))

	cat.MarkLoaded("a")

	meta := cat.Get("a")
	assert.True(t, meta.FullyLoaded)
	assert.Empty(t, meta.LoadError)

	// Unknown IDs are a no-op.
	cat.MarkLoaded("missing")
}

func TestCatalogue_MarkLoadError(t *testing.T) {
	cat := NewCatalogue(0)
	require.NoError(t, cat.Add(DocumentMetadata{ID: "a"}))

	cat.MarkLoadError("a", "download failed")

	meta := cat.Get("a")
	assert.False(t, meta.FullyLoaded)
	assert.Equal(t, "download failed", meta.LoadError)
}

func TestCatalogue_Get_UnknownID(t *testing.T) {
	cat := NewCatalogue(0)

	assert.Nil(t, cat.Get("missing"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", TruncateText("abcdef", 3))
	assert.Equal(t, "abc", TruncateText("abc", 10))
	assert.Equal(t, "", TruncateText("abc", 0))
	// Rune-safe: never cuts mid-character.
	assert.Equal(t, "añ", TruncateText("años", 2))
}
