package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// answerPrompt frames the budgeted documents and the question for the
// answering model.
const answerPrompt = `Answer the question using only the documents below.
If the documents do not contain the answer, say so plainly.

Question: %s

%s

Answer:`

// answerMaxTokens bounds the answering completion.
const answerMaxTokens = 1024

// AskService orchestrates the pipeline: select relevant documents,
// load their content, fit them to the context budget, and ask the
// answering model. The only failures that propagate are a missing
// answering capability and a classified answering-call failure;
// everything upstream degrades or returns partial results.
type AskService struct {
	indexer  *Indexer
	selector *Selector
	loader   *Loader
	budgeter *Budgeter
	llm      driven.LLMService
}

// NewAskService creates the ask orchestrator. llm may be nil; Select
// still works and Ask reports an actionable configuration error.
func NewAskService(
	indexer *Indexer,
	selector *Selector,
	loader *Loader,
	budgeter *Budgeter,
	llm driven.LLMService,
) *AskService {
	return &AskService{
		indexer:  indexer,
		selector: selector,
		loader:   loader,
		budgeter: budgeter,
		llm:      llm,
	}
}

// Select returns the ranked relevant documents for a query.
func (a *AskService) Select(ctx context.Context, query string) ([]domain.ScoredCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return a.selector.Select(ctx, query, a.indexer.Catalogue()), nil
}

// Ask answers a question from the indexed corpus.
func (a *AskService) Ask(ctx context.Context, query string) (*domain.Answer, error) {
	logger.Section("Ask Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return &domain.Answer{NoMatches: true}, nil
	}

	if a.llm == nil {
		return nil, fmt.Errorf(
			"%w: set an LLM provider with 'docq config set llm.provider'", domain.ErrLLMUnavailable)
	}

	catalogue := a.indexer.Catalogue()
	candidates := a.selector.Select(ctx, query, catalogue)
	if len(candidates) == 0 {
		logger.Info("No relevant documents for query")
		return &domain.Answer{Query: query, NoMatches: true}, nil
	}
	logger.Info("Selected %d documents via %s", len(candidates), candidates[0].Method)

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.Metadata.ID
	}

	docs := a.loader.Load(ctx, catalogue, ids)
	if len(docs) == 0 {
		logger.Warn("All selected documents failed to load")
		return &domain.Answer{Query: query, Method: candidates[0].Method, NoMatches: true}, nil
	}

	bundle := a.budgeter.Build(docs)
	logger.Debug("Context bundle: %d documents, %d chars, %d omitted",
		len(bundle.Documents), bundle.TotalChars, bundle.Omitted)

	prompt := fmt.Sprintf(answerPrompt, query, bundle.Render())
	text, err := a.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: answerMaxTokens,
	})
	if err != nil {
		return nil, domain.NewAnswerError(err)
	}

	sources := make([]domain.SourceRef, len(bundle.Documents))
	for i, doc := range bundle.Documents {
		sources[i] = domain.SourceRef{
			ID:        doc.ID,
			Name:      doc.Name,
			Truncated: doc.Truncated,
		}
	}

	return &domain.Answer{
		Query:   query,
		Text:    strings.TrimSpace(text),
		Method:  candidates[0].Method,
		Sources: sources,
	}, nil
}
