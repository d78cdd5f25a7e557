package domain

import "fmt"

// Catalogue is the ordered set of document metadata for a session.
// Insertion order is discovery order and is the tie-break order for
// lexical scoring. IDs are unique; duplicates are rejected at Add.
type Catalogue struct {
	entries []DocumentMetadata
	byID    map[string]int
	limit   int
}

// NewCatalogue creates an empty catalogue. limit is the hard cap on
// entries enforced at ingestion; zero or negative means unlimited.
func NewCatalogue(limit int) *Catalogue {
	return &Catalogue{
		byID:  make(map[string]int),
		limit: limit,
	}
}

// Add appends a metadata record. Returns ErrDuplicateDocument if the
// ID is already present, or ErrCatalogueFull when the hard limit is
// reached. Neither failure mutates the catalogue.
func (c *Catalogue) Add(meta DocumentMetadata) error {
	if _, exists := c.byID[meta.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDocument, meta.ID)
	}
	if c.limit > 0 && len(c.entries) >= c.limit {
		return fmt.Errorf("%w: limit %d", ErrCatalogueFull, c.limit)
	}
	c.byID[meta.ID] = len(c.entries)
	c.entries = append(c.entries, meta)
	return nil
}

// Get returns the metadata for an ID, or nil if unknown.
func (c *Catalogue) Get(id string) *DocumentMetadata {
	idx, ok := c.byID[id]
	if !ok {
		return nil
	}
	meta := c.entries[idx]
	return &meta
}

// MarkLoaded flips the FullyLoaded flag for an ID. No-op for unknown IDs.
func (c *Catalogue) MarkLoaded(id string) {
	if idx, ok := c.byID[id]; ok {
		c.entries[idx].FullyLoaded = true
		c.entries[idx].LoadError = ""
	}
}

// MarkLoadError records a content-fetch failure for an ID.
func (c *Catalogue) MarkLoadError(id, message string) {
	if idx, ok := c.byID[id]; ok {
		c.entries[idx].LoadError = message
	}
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.entries)
}

// Entries returns the metadata records in insertion order.
// The returned slice is a copy; mutating it does not affect the catalogue.
func (c *Catalogue) Entries() []DocumentMetadata {
	out := make([]DocumentMetadata, len(c.entries))
	copy(out, c.entries)
	return out
}
