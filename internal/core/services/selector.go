package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// noneSentinel is the token the ranking prompt asks for when no
// document is relevant. Matched case-insensitively in the response.
const noneSentinel = "NINGUNO"

// rankingPreviewLength caps the preview shown per candidate in the
// ranking prompt, after flattening newlines.
const rankingPreviewLength = 200

// Synthetic scores assigned to model selections so downstream ordering
// is preserved: 100, 95, 90, ...
const (
	syntheticTopScore  = 100
	syntheticScoreStep = 5
)

// errMalformedRanking indicates the ranking response contained neither
// the none-sentinel nor any parseable index.
var errMalformedRanking = errors.New("ranking response contained no indices")

// Selector decides the final ranked set of relevant documents for a
// query. The lexical scorer is the pre-filter and the fallback; final
// ranking is delegated to the model when one is configured. A failing
// or malformed ranking call never propagates: selection always
// degrades to pure lexical scoring.
type Selector struct {
	scorer   *Scorer
	llm      driven.LLMService
	settings domain.PipelineSettings
}

// NewSelector creates a relevance selector. llm may be nil, in which
// case selection is keyword-only.
func NewSelector(scorer *Scorer, llm driven.LLMService, settings domain.PipelineSettings) *Selector {
	return &Selector{
		scorer:   scorer,
		llm:      llm,
		settings: settings.Normalise(),
	}
}

// Select returns at most TopRelevantDocs candidates, ranked most
// relevant first.
func (s *Selector) Select(ctx context.Context, query string, catalogue *domain.Catalogue) []domain.ScoredCandidate {
	if catalogue == nil || catalogue.Len() == 0 {
		return nil
	}

	if s.llm == nil {
		logger.Debug("No ranking model configured, using keyword scoring")
		return s.cap(s.scorer.Score(query, catalogue))
	}

	candidates := catalogue.Entries()
	method := domain.SelectionModel

	if len(candidates) > s.settings.MaxDocsForModelSelection {
		candidates = s.prefilter(query, catalogue)
		method = domain.SelectionModelKeywords
	}

	selected, err := s.rankWithModel(ctx, query, candidates, method)
	if err != nil {
		if errors.Is(err, errMalformedRanking) {
			logger.Warn("Ranking response unparseable, falling back to keyword scoring")
		} else {
			logger.Warn("Ranking call failed: %v (falling back to keyword scoring)", err)
		}
		return s.cap(s.scorer.Score(query, catalogue))
	}

	return s.cap(selected)
}

// prefilter cuts the candidate set down to the model-selection cap
// using keyword scores. When the scorer matches nothing, the first
// entries in catalogue order are used instead, so the ranking call
// always has candidates.
func (s *Selector) prefilter(query string, catalogue *domain.Catalogue) []domain.DocumentMetadata {
	max := s.settings.MaxDocsForModelSelection

	scored := s.scorer.Score(query, catalogue)
	if len(scored) == 0 {
		logger.Debug("Keyword pre-filter matched nothing, using first %d catalogue entries", max)
		return catalogue.Entries()[:max]
	}

	if len(scored) > max {
		scored = scored[:max]
	}
	logger.Debug("Keyword pre-filter: %d candidates for ranking call", len(scored))

	metas := make([]domain.DocumentMetadata, len(scored))
	for i, c := range scored {
		metas[i] = c.Metadata
	}
	return metas
}

// rankWithModel asks the model for the relevant candidate indices and
// maps them back to candidates in response order.
func (s *Selector) rankWithModel(
	ctx context.Context, query string, candidates []domain.DocumentMetadata, method domain.SelectionMethod,
) ([]domain.ScoredCandidate, error) {
	prompt := s.buildRankingPrompt(query, candidates)

	response, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: 200,
	})
	if err != nil {
		return nil, fmt.Errorf("ranking call: %w", err)
	}

	logger.Debug("Ranking response: %q", response)

	if strings.Contains(strings.ToLower(response), strings.ToLower(noneSentinel)) {
		logger.Info("Ranking model judged no documents relevant")
		return []domain.ScoredCandidate{}, nil
	}

	indices := parseIndices(response, len(candidates))
	if len(indices) == 0 {
		return nil, errMalformedRanking
	}

	selected := make([]domain.ScoredCandidate, len(indices))
	for rank, idx := range indices {
		selected[rank] = domain.ScoredCandidate{
			Metadata: candidates[idx],
			Score:    float64(syntheticTopScore - syntheticScoreStep*rank),
			Method:   method,
		}
	}
	return selected, nil
}

// buildRankingPrompt enumerates each candidate on one line with a
// flattened, truncated preview.
func (s *Selector) buildRankingPrompt(query string, candidates []domain.DocumentMetadata) string {
	var sb strings.Builder
	sb.WriteString("You are selecting which documents could answer a question.\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(query)
	sb.WriteString("\n\nDocuments:\n")

	for i, meta := range candidates {
		preview := strings.Join(strings.Fields(meta.Preview), " ")
		preview = domain.TruncateText(preview, rankingPreviewLength)
		fmt.Fprintf(&sb, "%d. %s: %s\n", i, meta.Name, preview)
	}

	fmt.Fprintf(&sb,
		"\nReply with the indices of the relevant documents, separated by commas, "+
			"most relevant first. Select at most %d. "+
			"If none are relevant, reply with exactly %s.\n",
		s.settings.TopRelevantDocs, noneSentinel)

	return sb.String()
}

// parseIndices extracts integer tokens from a response, discards
// out-of-range values, and de-duplicates keeping the first occurrence.
func parseIndices(response string, candidateCount int) []int {
	tokens := strings.FieldsFunc(response, func(r rune) bool {
		return !unicode.IsDigit(r)
	})

	seen := make(map[int]bool)
	var indices []int
	for _, tok := range tokens {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if idx < 0 || idx >= candidateCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices
}

// cap truncates a ranked list to the selection limit.
func (s *Selector) cap(candidates []domain.ScoredCandidate) []domain.ScoredCandidate {
	if len(candidates) > s.settings.TopRelevantDocs {
		return candidates[:s.settings.TopRelevantDocs]
	}
	return candidates
}
