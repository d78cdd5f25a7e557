package mcp

import (
	"github.com/custodia-labs/docq-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions over the indexed corpus and exposes the
	// underlying relevance selection.
	Ask driving.AskService

	// Index provides access to the indexed catalogue.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Index is optional; the catalogue resources read as empty or
	// not found without it.
	return nil
}
