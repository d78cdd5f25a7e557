package driving

import (
	"context"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

// IndexResult summarises an indexing run.
type IndexResult struct {
	// RunID identifies the indexing run.
	RunID string

	// Indexed is the number of documents added to the catalogue.
	Indexed int

	// Failures lists per-document indexing failures. A non-empty list
	// does not make the run a failure.
	Failures []IndexFailure

	// Truncated is the number of descriptors rejected because the
	// catalogue hard limit was reached.
	Truncated int

	// Cancelled is true when the run stopped at a batch boundary
	// because the context was cancelled. Indexed reflects progress up
	// to that point.
	Cancelled bool
}

// IndexFailure records one document that could not be indexed.
type IndexFailure struct {
	// Name is the document name from the file descriptor.
	Name string

	// Err is the failure message, opaque for display.
	Err string
}

// IndexService builds and owns the document catalogue.
type IndexService interface {
	// Index replaces the catalogue with records for the given files.
	// Per-file failures are collected, not fatal; only an entirely
	// empty catalogue is an error. Cancellation is honoured at batch
	// boundaries.
	Index(ctx context.Context, files []domain.FileDescriptor) (*IndexResult, error)

	// Catalogue returns the current catalogue.
	Catalogue() *domain.Catalogue
}

// AskService answers natural-language questions from the corpus.
type AskService interface {
	// Ask selects relevant documents, loads their content within the
	// context budget, and produces an answer. Returns an Answer with
	// NoMatches set when no relevant documents were found. The only
	// propagated failures are a missing answering capability and a
	// classified answering-call failure.
	Ask(ctx context.Context, query string) (*domain.Answer, error)

	// Select returns the ranked relevant documents for a query without
	// loading content or answering. Used by the CLI and MCP tools.
	Select(ctx context.Context, query string) ([]domain.ScoredCandidate, error)
}
