package domain

// SelectionMethod records how a candidate was judged relevant.
type SelectionMethod int

const (
	// SelectionKeywords means pure lexical scoring picked the candidate.
	SelectionKeywords SelectionMethod = iota

	// SelectionModel means the model-assisted ranking call picked the
	// candidate from the full catalogue.
	SelectionModel

	// SelectionModelKeywords means lexical scoring pre-filtered the
	// candidate set before the model-assisted ranking call.
	SelectionModelKeywords
)

// String returns the method name for logs and CLI output.
func (m SelectionMethod) String() string {
	switch m {
	case SelectionKeywords:
		return "keywords"
	case SelectionModel:
		return "model"
	case SelectionModelKeywords:
		return "model+keywords"
	default:
		return "unknown"
	}
}

// ScoredCandidate is an ephemeral per-query ranking entry. Recomputed
// on every selection; never persisted.
type ScoredCandidate struct {
	// Metadata is the catalogue record for the candidate.
	Metadata DocumentMetadata

	// Score is the relevance score. Lexical scores are keyword counts;
	// model-assisted selections carry synthetic descending scores so
	// downstream ordering is preserved.
	Score float64

	// Method records which selection path produced this candidate.
	Method SelectionMethod
}
