package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// Indexer builds and owns the document catalogue. Each run replaces
// the catalogue wholesale; overlapping runs are rejected.
type Indexer struct {
	connector driven.CorpusConnector
	settings  domain.PipelineSettings

	mu        sync.Mutex
	running   bool
	catalogue *domain.Catalogue
}

// NewIndexer creates a metadata indexer reading from the connector.
func NewIndexer(connector driven.CorpusConnector, settings domain.PipelineSettings) *Indexer {
	settings = settings.Normalise()
	return &Indexer{
		connector: connector,
		settings:  settings,
		catalogue: domain.NewCatalogue(settings.MaxCatalogueSize),
	}
}

// Index fetches a preview of every file in fixed-size batches and
// builds a fresh catalogue. Within a batch fetches run concurrently;
// results are merged in descriptor order, not completion order.
// Per-file failures are collected without aborting the run.
// Cancellation is checked at batch boundaries only: in-flight fetches
// complete, further batches are not dispatched, and the partial
// catalogue is kept.
func (ix *Indexer) Index(ctx context.Context, files []domain.FileDescriptor) (*driving.IndexResult, error) {
	if !ix.begin() {
		return nil, domain.ErrIndexInProgress
	}
	defer ix.end()

	logger.Section("Metadata Indexing")
	logger.Info("Indexing %d files in batches of %d", len(files), ix.settings.BatchSize)

	result := &driving.IndexResult{RunID: uuid.NewString()}
	catalogue := domain.NewCatalogue(ix.settings.MaxCatalogueSize)

	for start := 0; start < len(files); start += ix.settings.BatchSize {
		if ctx.Err() != nil {
			logger.Warn("Indexing cancelled after %d documents", result.Indexed)
			result.Cancelled = true
			break
		}

		end := start + ix.settings.BatchSize
		if end > len(files) {
			end = len(files)
		}

		previews, errs := ix.fetchBatch(ctx, files[start:end])

		for i, fd := range files[start:end] {
			if errs[i] != nil {
				logger.Debug("Failed to index %q: %v", fd.Name, errs[i])
				result.Failures = append(result.Failures, driving.IndexFailure{
					Name: fd.Name,
					Err:  errs[i].Error(),
				})
				continue
			}

			meta := domain.DocumentMetadata{
				ID:       fd.ID,
				Name:     fd.Name,
				MIMEType: fd.MIMEType,
				Preview:  previews[i],
			}
			if err := catalogue.Add(meta); err != nil {
				if errors.Is(err, domain.ErrCatalogueFull) {
					result.Truncated++
					continue
				}
				result.Failures = append(result.Failures, driving.IndexFailure{
					Name: fd.Name,
					Err:  err.Error(),
				})
				continue
			}
			result.Indexed++
		}
	}

	// The catalogue is replaced even when partial, so a cancelled run
	// still exposes its progress.
	ix.setCatalogue(catalogue)

	if result.Truncated > 0 {
		logger.Warn("Catalogue limit reached: %d documents rejected", result.Truncated)
	}
	logger.Info("Indexed %d documents, %d failures", result.Indexed, len(result.Failures))

	if result.Indexed == 0 && !result.Cancelled {
		return result, domain.ErrEmptyCatalogue
	}
	return result, nil
}

// fetchBatch reads previews for one batch concurrently. Slices are
// positional so descriptor order survives arbitrary completion order.
func (ix *Indexer) fetchBatch(ctx context.Context, batch []domain.FileDescriptor) ([]string, []error) {
	previews := make([]string, len(batch))
	errs := make([]error, len(batch))

	var wg sync.WaitGroup
	for i, fd := range batch {
		wg.Add(1)
		go func(i int, fd domain.FileDescriptor) {
			defer wg.Done()
			text, err := ix.connector.ReadDocument(ctx, fd.ID, fd.MIMEType)
			if err != nil {
				errs[i] = err
				return
			}
			previews[i] = domain.TruncateText(text, ix.settings.PreviewLength)
		}(i, fd)
	}
	wg.Wait()

	return previews, errs
}

// Catalogue returns the current catalogue.
func (ix *Indexer) Catalogue() *domain.Catalogue {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.catalogue
}

func (ix *Indexer) setCatalogue(c *domain.Catalogue) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.catalogue = c
}

func (ix *Indexer) begin() bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.running {
		return false
	}
	ix.running = true
	return true
}

func (ix *Indexer) end() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.running = false
}
