package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

func buildCatalogue(t *testing.T, entries ...domain.DocumentMetadata) *domain.Catalogue {
	t.Helper()
	cat := domain.NewCatalogue(0)
	for _, e := range entries {
		require.NoError(t, cat.Add(e))
	}
	return cat
}

func salesCatalogue(t *testing.T) *domain.Catalogue {
	t.Helper()
	return buildCatalogue(t,
		domain.DocumentMetadata{ID: "1", Name: "Ventas2023", Preview: "ingresos totales 500k"},
		domain.DocumentMetadata{ID: "2", Name: "Notas", Preview: "reunión equipo"},
		domain.DocumentMetadata{ID: "3", Name: "Ventas2024", Preview: "ingresos 600k, crecimiento"},
	)
}

func TestScorer_Score_ExcludesZeroScores(t *testing.T) {
	scorer := NewScorer()
	results := scorer.Score("ventas", salesCatalogue(t))

	require.Len(t, results, 2)
	names := []string{results[0].Metadata.Name, results[1].Metadata.Name}
	assert.ElementsMatch(t, []string{"Ventas2023", "Ventas2024"}, names)
	for _, r := range results {
		assert.Greater(t, r.Score, 0.0)
		assert.Equal(t, domain.SelectionKeywords, r.Method)
	}
}

func TestScorer_Score_SortedNonIncreasing(t *testing.T) {
	cat := buildCatalogue(t,
		domain.DocumentMetadata{ID: "1", Name: "misc", Preview: "budget"},
		domain.DocumentMetadata{ID: "2", Name: "budget report", Preview: "budget budget budget"},
		domain.DocumentMetadata{ID: "3", Name: "notes", Preview: "budget notes"},
	)

	results := NewScorer().Score("budget", cat)

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	// Name matches weigh 5x preview matches.
	assert.Equal(t, "budget report", results[0].Metadata.Name)
}

func TestScorer_Score_TieBreakKeepsInsertionOrder(t *testing.T) {
	cat := buildCatalogue(t,
		domain.DocumentMetadata{ID: "a", Name: "plan alpha", Preview: ""},
		domain.DocumentMetadata{ID: "b", Name: "plan beta", Preview: ""},
		domain.DocumentMetadata{ID: "c", Name: "plan gamma", Preview: ""},
	)

	results := NewScorer().Score("plan", cat)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Metadata.ID)
	assert.Equal(t, "b", results[1].Metadata.ID)
	assert.Equal(t, "c", results[2].Metadata.ID)
}

func TestScorer_Score_Deterministic(t *testing.T) {
	cat := salesCatalogue(t)
	scorer := NewScorer()

	first := scorer.Score("ventas ingresos", cat)
	second := scorer.Score("ventas ingresos", cat)

	assert.Equal(t, first, second)
}

func TestScorer_Score_SubstringMatchesInsideWords(t *testing.T) {
	cat := buildCatalogue(t,
		domain.DocumentMetadata{ID: "1", Name: "ventasclub", Preview: ""},
	)

	results := NewScorer().Score("ventas", cat)

	require.Len(t, results, 1)
	assert.Equal(t, float64(nameMatchWeight), results[0].Score)
}

func TestScorer_Score_CaseInsensitive(t *testing.T) {
	cat := buildCatalogue(t,
		domain.DocumentMetadata{ID: "1", Name: "VENTAS Anual", Preview: "Resumen de Ventas"},
	)

	results := NewScorer().Score("Ventas", cat)

	require.Len(t, results, 1)
	assert.Equal(t, float64(nameMatchWeight+previewMatchWeight), results[0].Score)
}

func TestScorer_Score_EmptyInputs(t *testing.T) {
	scorer := NewScorer()

	assert.Empty(t, scorer.Score("ventas", domain.NewCatalogue(0)))
	assert.Empty(t, scorer.Score("ventas", nil))
	assert.Empty(t, scorer.Score("", salesCatalogue(t)))
	// All tokens too short to be keywords.
	assert.Empty(t, scorer.Score("a of el", salesCatalogue(t)))
}

func TestExtractKeywords(t *testing.T) {
	assert.Equal(t, []string{"ventas", "2023"}, ExtractKeywords("Ventas de 2023"))
	assert.Equal(t, []string{"qué", "pasó"}, ExtractKeywords("¿qué pasó?"))
	assert.Empty(t, ExtractKeywords("a b cd"))
}
