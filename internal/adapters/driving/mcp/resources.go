package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docq resources.
	uriScheme = "docq://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the document catalogue.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalogue",
		Name:        "catalogue",
		Description: "Metadata of all indexed documents",
		MIMEType:    "application/json",
	}, s.handleCatalogueResource)

	// Template for a single document's metadata.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-metadata",
		Description: "Metadata of a specific indexed document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleCatalogueResource returns the metadata of every indexed document.
func (s *Server) handleCatalogueResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Index == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	entries := s.ports.Index.Catalogue().Entries()

	infos := make([]documentInfo, len(entries))
	for i, meta := range entries {
		infos[i] = documentInfo{
			ID:          meta.ID,
			Name:        meta.Name,
			MIMEType:    meta.MIMEType,
			FullyLoaded: meta.FullyLoaded,
			LoadError:   meta.LoadError,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalogue: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource returns the metadata of a single document.
func (s *Server) handleDocumentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Index == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: docq://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	meta := s.ports.Index.Catalogue().Get(docID)
	if meta == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	info := documentInfo{
		ID:          meta.ID,
		Name:        meta.Name,
		MIMEType:    meta.MIMEType,
		Preview:     meta.Preview,
		FullyLoaded: meta.FullyLoaded,
		LoadError:   meta.LoadError,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document metadata: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// documentInfo is the resource representation of a catalogue entry.
type documentInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MIMEType    string `json:"mime_type"`
	Preview     string `json:"preview,omitempty"`
	FullyLoaded bool   `json:"fully_loaded"`
	LoadError   string `json:"load_error,omitempty"`
}

// extractDocumentID extracts the document ID from a URI like docq://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
