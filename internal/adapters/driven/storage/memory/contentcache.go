// Package memory provides in-memory storage adapters.
// Contents live for the process lifetime only.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
	"github.com/custodia-labs/docq-cli/internal/core/ports/driven"
)

// Ensure ContentCache implements the interface.
var _ driven.ContentCache = (*ContentCache)(nil)

// ContentCache is an in-memory implementation of driven.ContentCache.
type ContentCache struct {
	mu       sync.RWMutex
	contents map[string]domain.DocumentContent
}

// NewContentCache creates a new in-memory content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{
		contents: make(map[string]domain.DocumentContent),
	}
}

// Get returns the cached content for an ID, or domain.ErrNotFound.
func (c *ContentCache) Get(_ context.Context, id string) (*domain.DocumentContent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.contents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &content, nil
}

// Put stores content. An existing entry is left untouched.
func (c *ContentCache) Put(_ context.Context, content domain.DocumentContent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.contents[content.ID]; exists {
		return nil
	}
	c.contents[content.ID] = content
	return nil
}

// Len returns the number of cached entries.
func (c *ContentCache) Len(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.contents), nil
}

// Close releases resources.
func (c *ContentCache) Close() error {
	return nil
}
