package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docq-cli/internal/logger"
)

// Loader fetches full document content for selected IDs. Content is
// cached for the session; a cached ID is never fetched again.
type Loader struct {
	connector driven.CorpusConnector
	cache     driven.ContentCache
}

// NewLoader creates a content loader.
func NewLoader(connector driven.CorpusConnector, cache driven.ContentCache) *Loader {
	return &Loader{connector: connector, cache: cache}
}

// Load fetches content for each ID concurrently. IDs unknown to the
// catalogue are skipped silently (stale selection). Failed fetches are
// logged and omitted; partial results are acceptable. The returned
// slice preserves input-ID order.
func (l *Loader) Load(ctx context.Context, catalogue *domain.Catalogue, ids []string) []domain.DocumentContent {
	results := make([]*domain.DocumentContent, len(ids))
	loadErrs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		meta := catalogue.Get(id)
		if meta == nil {
			logger.Debug("Skipping unknown document id %q", id)
			continue
		}

		wg.Add(1)
		go func(i int, meta domain.DocumentMetadata) {
			defer wg.Done()
			results[i], loadErrs[i] = l.loadOne(ctx, meta)
		}(i, *meta)
	}
	wg.Wait()

	// Catalogue flags are updated after the workers finish; the
	// catalogue is not safe for concurrent mutation.
	loaded := make([]domain.DocumentContent, 0, len(ids))
	for i, id := range ids {
		switch {
		case results[i] != nil:
			catalogue.MarkLoaded(id)
			loaded = append(loaded, *results[i])
		case loadErrs[i] != nil:
			catalogue.MarkLoadError(id, loadErrs[i].Error())
		}
	}

	logger.Debug("Loaded %d of %d documents", len(loaded), len(ids))
	return loaded
}

// loadOne returns cached content if present, otherwise fetches and
// caches it.
func (l *Loader) loadOne(ctx context.Context, meta domain.DocumentMetadata) (*domain.DocumentContent, error) {
	cached, err := l.cache.Get(ctx, meta.ID)
	if err == nil {
		logger.Debug("Cache hit for %q", meta.Name)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("Content cache read failed for %q: %v", meta.Name, err)
	}

	text, err := l.connector.ReadDocument(ctx, meta.ID, meta.MIMEType)
	if err != nil {
		logger.Warn("Failed to load %q: %v", meta.Name, err)
		return nil, err
	}

	content := domain.DocumentContent{
		ID:       meta.ID,
		Name:     meta.Name,
		MIMEType: meta.MIMEType,
		Content:  text,
	}
	if err := l.cache.Put(ctx, content); err != nil {
		logger.Warn("Content cache write failed for %q: %v", meta.Name, err)
	}
	return &content, nil
}
