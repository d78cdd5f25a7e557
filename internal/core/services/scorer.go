package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

// Keyword scoring weights. A match in the document name counts five
// times as much as a match in the preview.
const (
	nameMatchWeight    = 5
	previewMatchWeight = 1

	// minKeywordRunes drops short tokens ("a", "of", "el") without a
	// stopword list.
	minKeywordRunes = 3
)

// Scorer ranks catalogue entries against a query by keyword frequency.
// It is a pure component: no I/O, no failure modes, deterministic
// output including tie order.
type Scorer struct{}

// NewScorer creates a lexical scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns candidates with score > 0, sorted descending by score.
// Ties keep catalogue insertion order. Matching is a case-insensitive
// substring count, so a keyword also matches inside longer words.
func (s *Scorer) Score(query string, catalogue *domain.Catalogue) []domain.ScoredCandidate {
	if catalogue == nil || catalogue.Len() == 0 {
		return nil
	}

	keywords := ExtractKeywords(query)
	if len(keywords) == 0 {
		return nil
	}

	var candidates []domain.ScoredCandidate
	for _, meta := range catalogue.Entries() {
		name := strings.ToLower(meta.Name)
		preview := strings.ToLower(meta.Preview)

		score := 0
		for _, kw := range keywords {
			score += nameMatchWeight * strings.Count(name, kw)
			score += previewMatchWeight * strings.Count(preview, kw)
		}

		if score > 0 {
			candidates = append(candidates, domain.ScoredCandidate{
				Metadata: meta,
				Score:    float64(score),
				Method:   domain.SelectionKeywords,
			})
		}
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// ExtractKeywords tokenises a query into lowercase words longer than
// two runes. Splits on anything that is not a letter or digit.
func ExtractKeywords(query string) []string {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= minKeywordRunes {
			keywords = append(keywords, w)
		}
	}
	return keywords
}
