package driven

import (
	"context"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

// CorpusConnector provides access to a remote document corpus.
// Each connector type (drive, filesystem) implements this interface.
type CorpusConnector interface {
	// Type returns the connector type identifier.
	Type() string

	// ListFiles enumerates the documents under a folder reference.
	// Pagination is handled internally; the result is the complete
	// finite listing. folderRef semantics are connector-specific
	// (Drive folder ID, filesystem path).
	ListFiles(ctx context.Context, folderRef string) ([]domain.FileDescriptor, error)

	// ReadDocument extracts the text content of one document.
	// The MIME type selects the extraction strategy (export formats
	// for Workspace files, plain download for text files).
	ReadDocument(ctx context.Context, id, mimeType string) (string, error)

	// Validate checks the connector is properly configured and
	// authenticated. Returns nil if ready, an error describing the
	// problem otherwise.
	Validate(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ContentCache stores full document content for the session.
// An ID present in the cache is never fetched again.
type ContentCache interface {
	// Get returns the cached content for an ID.
	// Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, id string) (*domain.DocumentContent, error)

	// Put stores content. Existing entries are left untouched; content
	// is immutable once created.
	Put(ctx context.Context, content domain.DocumentContent) error

	// Len returns the number of cached entries.
	Len(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
