package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query string `json:"query" jsonschema:"the natural-language question to answer from the document corpus"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string         `json:"answer"`
	Method    string         `json:"method"`
	NoMatches bool           `json:"no_matches"`
	Sources   []SourceOutput `json:"sources,omitempty"`
}

// SourceOutput identifies a document that contributed to an answer.
type SourceOutput struct {
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
	Truncated  bool   `json:"truncated,omitempty"`
}

// RelevantDocumentsInput is the input schema for the relevant_documents tool.
type RelevantDocumentsInput struct {
	Query string `json:"query" jsonschema:"the question to select relevant documents for"`
}

// RelevantDocumentsOutput is the output schema for the relevant_documents tool.
type RelevantDocumentsOutput struct {
	Documents []RelevantDocumentOutput `json:"documents"`
	Count     int                      `json:"count"`
}

// RelevantDocumentOutput represents a single selected document.
type RelevantDocumentOutput struct {
	DocumentID string  `json:"document_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Method     string  `json:"method"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using the indexed document corpus",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "relevant_documents",
		Description: "List the documents most relevant to a question, without answering it",
	}, s.handleRelevantDocuments)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Query)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:    answer.Text,
		Method:    answer.Method.String(),
		NoMatches: answer.NoMatches,
		Sources:   make([]SourceOutput, len(answer.Sources)),
	}
	for i, src := range answer.Sources {
		output.Sources[i] = SourceOutput{
			DocumentID: src.ID,
			Name:       src.Name,
			Truncated:  src.Truncated,
		}
	}

	return nil, output, nil
}

// handleRelevantDocuments handles the relevant_documents tool invocation.
func (s *Server) handleRelevantDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RelevantDocumentsInput,
) (*mcp.CallToolResult, RelevantDocumentsOutput, error) {
	candidates, err := s.ports.Ask.Select(ctx, input.Query)
	if err != nil {
		return nil, RelevantDocumentsOutput{}, err
	}

	output := RelevantDocumentsOutput{
		Documents: make([]RelevantDocumentOutput, len(candidates)),
		Count:     len(candidates),
	}
	for i, c := range candidates {
		output.Documents[i] = RelevantDocumentOutput{
			DocumentID: c.Metadata.ID,
			Name:       c.Metadata.Name,
			Score:      c.Score,
			Method:     c.Method.String(),
		}
	}

	return nil, output, nil
}
